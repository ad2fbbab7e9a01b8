package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *jsonstore.Store) {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Settings().SaveTemplate(ctx, "bookingAccepted",
		"Hi {{name}}, your booking for {{date}} at {{slot}} is confirmed."))

	return NewService(store.Settings(), store.AuditLogs(), nopLogger{}), store
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("Hi {{name}}, see you on {{date}}.", map[string]string{
		"name": "Alice",
		"date": "2026-09-20",
	})
	assert.Equal(t, "Hi Alice, see you on 2026-09-20.", out)

	// Неизвестные плейсхолдеры остаются как есть
	out = RenderTemplate("Hi {{name}}, slot {{slot}}.", map[string]string{"name": "Bob"})
	assert.Equal(t, "Hi Bob, slot {{slot}}.", out)
}

func TestRender(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Render(context.Background(), "bookingAccepted", map[string]string{
		"name": "Alice",
		"date": "2026-09-20",
		"slot": "09:00 AM - 11:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi Alice, your booking for 2026-09-20 at 09:00 AM - 11:00 AM is confirmed.", out)

	_, err = svc.Render(context.Background(), "no_such_template", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, "bookingAccepted", "See you, {{name}}!"))

	templates, err := store.Settings().GetTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "See you, {{name}}!", templates["bookingAccepted"])
}

func TestUpdate_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Опечатка в имени не создает новый шаблон
	err := svc.Update(ctx, "bookingAcepted", "whatever")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	err = svc.Update(ctx, "", "whatever")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(ctx, "bookingAccepted", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
