package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Yogeshjindal/RestaurantApplication/apperr"
)

// respond writes the success envelope {success, message?, data?}
func respond(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// respondList writes the success envelope for collections, with count
func respondList(c *gin.Context, code int, count int, data interface{}) {
	c.JSON(code, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// fail writes the error envelope {status:"error", message} with the status
// code carried by the error; unknown errors collapse to a generic 500.
func fail(c *gin.Context, err error) {
	code := apperr.StatusCode(err)
	message := err.Error()
	if code == 500 {
		message = "Internal server error"
	}
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}
