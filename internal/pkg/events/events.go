package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EmployeeCreated EventType = "employee.created"
	EmployeeUpdated EventType = "employee.updated"
	EmployeeRemoved EventType = "employee.removed"
	CompanyCreated  EventType = "company.created"
	CompanyUpdated  EventType = "company.updated"
)

// Event is a change notification. It carries business keys only; store ids
// and employee details stay inside the service.
type Event struct {
	ID             uuid.UUID `json:"id"`
	Type           EventType `json:"type"`
	OccurredAt     time.Time `json:"occurredAt"`
	CompanyName    string    `json:"companyName"`
	EmployeeNumber *int      `json:"employeeNumber,omitempty"`
}

func NewCompanyEvent(eventType EventType, companyName string) Event {
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		OccurredAt:  time.Now().UTC(),
		CompanyName: companyName,
	}
}

func NewEmployeeEvent(eventType EventType, companyName string, employeeNumber int) Event {
	e := NewCompanyEvent(eventType, companyName)
	e.EmployeeNumber = &employeeNumber
	return e
}

// Publisher hands events off without blocking the caller. Delivery is best
// effort: a failed publish never fails the write that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

// NoopPublisher discards every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) {}

func (NoopPublisher) Close() error { return nil }
