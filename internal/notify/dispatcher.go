package notify

import (
	"log"
	"sync"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/models"
	"github.com/workhive/workhive-backend/internal/realtime"
	"gorm.io/gorm"
)

// Notifier accepts pending notifications produced by relationship
// mutations. Delivery is decoupled from the triggering request: a failed
// notification never rolls back or fails the mutation that produced it.
type Notifier interface {
	Dispatch(n models.Notification)
}

// Dispatcher consumes pending notifications on its own goroutine,
// persists each one, and then attempts a realtime push to the
// recipient's room.
type Dispatcher struct {
	db      *gorm.DB
	emitter realtime.Emitter

	queue chan models.Notification
	wg    sync.WaitGroup
}

func NewDispatcher(db *gorm.DB, emitter realtime.Emitter) *Dispatcher {
	return &Dispatcher{
		db:      db,
		emitter: emitter,
		queue:   make(chan models.Notification, 64),
	}
}

// Start launches the consumer goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for n := range d.queue {
			if err := d.Deliver(n); err != nil {
				log.Printf("notify: dropping notification to user %d: %v", n.ToUserID, err)
			}
		}
	}()
}

// Stop drains the queue and waits for the consumer to finish.
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}

// Dispatch enqueues a pending notification. It never blocks the caller;
// if the queue is full the notification is dropped and logged, matching
// the fire-and-forget contract.
func (d *Dispatcher) Dispatch(n models.Notification) {
	select {
	case d.queue <- n:
	default:
		log.Printf("notify: queue full, dropping notification to user %d", n.ToUserID)
	}
}

// Deliver persists the notification and pushes it to the recipient if a
// connection is open. The durable row always exists before the push.
func (d *Dispatcher) Deliver(n models.Notification) error {
	if !n.Validate() {
		return apperr.Validation("notification requires exactly one of job or jobHired")
	}
	if err := d.db.Create(&n).Error; err != nil {
		return err
	}
	d.emitter.EmitToUser(n.ToUserID, "notification", n)
	return nil
}
