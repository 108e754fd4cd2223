// Package kafka publica los eventos de usuarios invitados durante el onboarding.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

// DefaultInviteTopic tópico por defecto de invitaciones.
const DefaultInviteTopic = "workspace.user-invited"

const eventType = "user.invited"

// MessageWriter subconjunto de *kafka.Writer usado por el publicador.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// InvitePublisher escribe un mensaje por invitado, con la empresa como clave de partición.
type InvitePublisher struct {
	writer MessageWriter
	topic  string
}

var _ onboarding.InvitePublisher = (*InvitePublisher)(nil)

// NewWriter construye el writer de kafka-go para los brokers indicados.
func NewWriter(brokers []string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewInvitePublisher construye el publicador; topic vacío usa DefaultInviteTopic.
func NewInvitePublisher(writer MessageWriter, topic string) *InvitePublisher {
	if topic == "" {
		topic = DefaultInviteTopic
	}
	return &InvitePublisher{writer: writer, topic: topic}
}

// PublishInvited publica todos los eventos en una sola escritura.
func (p *InvitePublisher) PublishInvited(ctx context.Context, events []onboarding.UserInvitedEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("kafka: serializar invitación %s: %w", ev.UserID, err)
		}
		msgs = append(msgs, kafkago.Message{
			Topic: p.topic,
			Key:   []byte(ev.CompanyID),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(eventType)},
				{Key: "company_id", Value: []byte(ev.CompanyID)},
			},
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: publicar %d invitaciones: %w", len(msgs), err)
	}
	return nil
}

// Close cierra el writer.
func (p *InvitePublisher) Close() error { return p.writer.Close() }

// LogPublisher registra las invitaciones en el log cuando no hay brokers configurados.
type LogPublisher struct {
	log *logger.Logger
}

var _ onboarding.InvitePublisher = (*LogPublisher)(nil)

// NewLogPublisher construye el publicador de respaldo.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &LogPublisher{log: log.Component("invites")}
}

// PublishInvited nunca falla.
func (p *LogPublisher) PublishInvited(_ context.Context, events []onboarding.UserInvitedEvent) error {
	for _, ev := range events {
		p.log.Info().
			Str("event_type", eventType).
			Str("company_id", ev.CompanyID).
			Str("user_id", ev.UserID).
			Str("email", ev.Email).
			Str("role", ev.Role).
			Msg("usuario invitado")
	}
	return nil
}
