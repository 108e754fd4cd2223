package kafka_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/infrastructure/kafka"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func events() []onboarding.UserInvitedEvent {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return []onboarding.UserInvitedEvent{
		{UserID: "u-1", CompanyID: "c-1", Email: "ana@acme.test", Role: "admin", OccurredAt: at},
		{UserID: "u-2", CompanyID: "c-1", Email: "luis@acme.test", Role: "member", OccurredAt: at},
	}
}

func TestPublishInvited_UnMensajePorInvitado(t *testing.T) {
	w := &fakeWriter{}
	pub := kafka.NewInvitePublisher(w, "")

	require.NoError(t, pub.PublishInvited(context.Background(), events()))
	require.Len(t, w.msgs, 2)
	assert.Equal(t, kafka.DefaultInviteTopic, w.msgs[0].Topic)
	assert.Equal(t, "c-1", string(w.msgs[0].Key))

	var got onboarding.UserInvitedEvent
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &got))
	assert.Equal(t, "luis@acme.test", got.Email)
	assert.Equal(t, "user.invited", string(w.msgs[1].Headers[0].Value))
}

func TestPublishInvited_SinEventosNoEscribe(t *testing.T) {
	w := &fakeWriter{err: errors.New("no debería llamarse")}
	assert.NoError(t, kafka.NewInvitePublisher(w, "t").PublishInvited(context.Background(), nil))
}

func TestPublishInvited_ErrorDelBroker(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker caído")}
	err := kafka.NewInvitePublisher(w, "t").PublishInvited(context.Background(), events())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker caído")
}

func TestLogPublisher_RegistraInvitaciones(t *testing.T) {
	var buf bytes.Buffer
	pub := kafka.NewLogPublisher(logger.New(logger.Config{Env: "test", Level: "info", Output: &buf}))

	require.NoError(t, pub.PublishInvited(context.Background(), events()))
	assert.Contains(t, buf.String(), "ana@acme.test")
	assert.Contains(t, buf.String(), `"component":"invites"`)
}
