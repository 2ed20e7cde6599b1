package consumer

import (
	"encoding/json"
	"log"

	"github.com/evently/hotel-booking-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Routing keys published by the registration service.
const (
	KeyEnrollment = "registration.enrollment"
	KeyTicketType = "registration.ticket_type"
	KeyTicket     = "registration.ticket"
)

// RegistrationConsumer keeps the local read copies of enrollments, ticket
// types and tickets in sync with the registration service. The booking core
// only ever reads these rows.
type RegistrationConsumer struct {
	db *gorm.DB
}

func NewRegistrationConsumer(db *gorm.DB) *RegistrationConsumer {
	return &RegistrationConsumer{db: db}
}

// Start listens for messages and upserts registration data into the local DB.
func (rc *RegistrationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			rc.handleMessage(msg)
		}
		log.Println("[RegistrationConsumer] channel closed, stopping consumer")
	}()
}

func (rc *RegistrationConsumer) handleMessage(msg amqp.Delivery) {
	record, updateColumns := recordFor(msg.RoutingKey)
	if record == nil {
		log.Printf("[RegistrationConsumer] ignoring unknown routing key %q", msg.RoutingKey)
		msg.Ack(false)
		return
	}

	if err := json.Unmarshal(msg.Body, record); err != nil {
		log.Printf("[RegistrationConsumer] failed to unmarshal %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return
	}

	// Upsert: insert or update on conflict (same ID from the registration service)
	result := rc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(record)

	if result.Error != nil {
		log.Printf("[RegistrationConsumer] failed to upsert %s: %v", msg.RoutingKey, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[RegistrationConsumer] synced %s", msg.RoutingKey)
	msg.Ack(false)
}

func recordFor(routingKey string) (interface{}, []string) {
	switch routingKey {
	case KeyEnrollment:
		return &models.Enrollment{}, []string{"user_id", "updated_at"}
	case KeyTicketType:
		return &models.TicketType{}, []string{"name", "price", "is_remote", "includes_hotel", "updated_at"}
	case KeyTicket:
		return &models.Ticket{}, []string{"enrollment_id", "ticket_type_id", "status", "updated_at"}
	default:
		return nil, nil
	}
}
