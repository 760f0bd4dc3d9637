// Package notify delivers reservation status changes to the customer's
// email address and to live dashboard subscribers. Delivery is best-effort
// and fire-and-forget: failures are logged and never reach the caller.
package notify

import (
	"fmt"
	"log"
	"sync"

	"github.com/Yogeshjindal/RestaurantApplication/models"
)

// EventName is the single event emitted on the realtime channel
const EventName = "reservation:updated"

// StatusChange describes one reservation status transition to announce
type StatusChange struct {
	ReservationID uint
	Email         string
	Name          string
	Status        models.ReservationStatus
	Date          string
	Time          string
}

// Event is the realtime payload for a status change
type Event struct {
	ID     uint                     `json:"id"`
	Status models.ReservationStatus `json:"status"`
	Date   string                   `json:"date"`
	Time   string                   `json:"time"`
}

// Mailer sends a single plain-text message
type Mailer interface {
	Send(to, subject, body string) error
}

// Broadcaster pushes a named event to live subscribers
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// Dispatcher drains a queue of status changes with worker goroutines so the
// request path never waits on mail or push delivery.
type Dispatcher struct {
	mailer Mailer
	hub    Broadcaster
	queue  chan StatusChange
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer, hub Broadcaster, workers int) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		hub:    hub,
		queue:  make(chan StatusChange, 100),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// StatusChanged schedules delivery for one status change. Never blocks: if
// the queue is full the event is dropped with a log line.
func (d *Dispatcher) StatusChanged(change StatusChange) {
	select {
	case d.queue <- change:
	default:
		log.Printf("notification queue full, dropping event for reservation %d", change.ReservationID)
	}
}

// Shutdown stops accepting events and waits for in-flight deliveries.
func (d *Dispatcher) Shutdown() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for change := range d.queue {
		d.deliver(change)
	}
}

func (d *Dispatcher) deliver(change StatusChange) {
	if change.Email != "" {
		subject := fmt.Sprintf("Your reservation is %s", change.Status)
		body := fmt.Sprintf("Hello %s,\n\nYour reservation on %s at %s is now %s.\n\nThank you.",
			change.Name, change.Date, change.Time, change.Status)
		if err := d.mailer.Send(change.Email, subject, body); err != nil {
			log.Printf("status email for reservation %d failed: %v", change.ReservationID, err)
		}
	}

	d.hub.Broadcast(EventName, Event{
		ID:     change.ReservationID,
		Status: change.Status,
		Date:   change.Date,
		Time:   change.Time,
	})
}
