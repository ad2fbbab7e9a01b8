package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestRun_SeedsEmptyStore(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	seeder := New(store.Slots(), store.Offerings(), store.Settings(), nopLogger{})
	require.NoError(t, seeder.Run(ctx))

	slots, err := store.Slots().List(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, len(domain.DefaultSlots()))

	offerings, err := store.Offerings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, offerings, len(domain.DefaultOfferings()))

	settings, err := store.Settings().GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EKSAM TINT", settings.BusinessName)

	// Пароль хранится как bcrypt-хэш и сходится с секретом по умолчанию
	assert.NotEqual(t, "admin123", settings.AdminPassword)
	err = bcrypt.CompareHashAndPassword([]byte(settings.AdminPassword), []byte("admin123"))
	assert.NoError(t, err)

	templates, err := store.Settings().GetTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, len(domain.DefaultMessageTemplates()))
}

func TestRun_DoesNotTouchExistingData(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Slots().Create(ctx, "Custom Slot", 5)
	require.NoError(t, err)
	require.NoError(t, store.Settings().SaveSettings(ctx, &domain.Settings{
		BusinessName:  "Custom Name",
		Currency:      "$",
		SlotInterval:  60,
		AdminPassword: "$2a$10$existinghash",
	}))

	seeder := New(store.Slots(), store.Offerings(), store.Settings(), nopLogger{})
	require.NoError(t, seeder.Run(ctx))

	slots, err := store.Slots().List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "Custom Slot", slots[0].Label)

	settings, err := store.Settings().GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Custom Name", settings.BusinessName)
	assert.Equal(t, "$2a$10$existinghash", settings.AdminPassword)
}

func TestRun_Idempotent(t *testing.T) {
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	seeder := New(store.Slots(), store.Offerings(), store.Settings(), nopLogger{})
	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	slots, err := store.Slots().List(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, len(domain.DefaultSlots()))

	offerings, err := store.Offerings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, offerings, len(domain.DefaultOfferings()))
}
