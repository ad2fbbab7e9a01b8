// Package seed устанавливает данные по умолчанию в пустое хранилище:
// каталог слотов, каталог услуг, настройки и шаблоны сообщений.
package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	settingsRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/settings"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
	Create(ctx context.Context, label string, capacity int) (*domain.Slot, error)
}

// OfferingRepository интерфейс репозитория услуг
type OfferingRepository interface {
	List(ctx context.Context) ([]*domain.Offering, error)
	Create(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, s *domain.Settings) error
	GetTemplates(ctx context.Context) (map[string]string, error)
	SaveTemplate(ctx context.Context, name, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Seeder наполняет пустое хранилище данными по умолчанию
type Seeder struct {
	slots     SlotRepository
	offerings OfferingRepository
	settings  SettingsRepository
	logger    Logger
}

// New создает новый экземпляр наполнителя
func New(slots SlotRepository, offerings OfferingRepository, settings SettingsRepository, logger Logger) *Seeder {
	return &Seeder{slots: slots, offerings: offerings, settings: settings, logger: logger}
}

// Run устанавливает недостающие коллекции. Не трогает существующие данные.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedSlots(ctx); err != nil {
		return err
	}
	if err := s.seedOfferings(ctx); err != nil {
		return err
	}
	if err := s.seedSettings(ctx); err != nil {
		return err
	}
	return s.seedTemplates(ctx)
}

func (s *Seeder) seedSlots(ctx context.Context) error {
	existing, err := s.slots.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list slots: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, sl := range domain.DefaultSlots() {
		if _, err := s.slots.Create(ctx, sl.Label, sl.Capacity); err != nil {
			return fmt.Errorf("seed: create slot %q: %w", sl.Label, err)
		}
	}
	s.logger.Info("Seed: installed %d default slots", len(domain.DefaultSlots()))
	return nil
}

func (s *Seeder) seedOfferings(ctx context.Context) error {
	existing, err := s.offerings.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list offerings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, o := range domain.DefaultOfferings() {
		if _, err := s.offerings.Create(ctx, o.Name, o.DurationMinutes, o.Price); err != nil {
			return fmt.Errorf("seed: create offering %q: %w", o.Name, err)
		}
	}
	s.logger.Info("Seed: installed %d default offerings", len(domain.DefaultOfferings()))
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	_, err := s.settings.GetSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return fmt.Errorf("seed: get settings: %w", err)
	}

	defaults := domain.DefaultSettings()
	hash, err := bcrypt.GenerateFromPassword([]byte(defaults.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash default admin password: %w", err)
	}
	defaults.AdminPassword = string(hash)

	if err := s.settings.SaveSettings(ctx, defaults); err != nil {
		return fmt.Errorf("seed: save settings: %w", err)
	}
	s.logger.Info("Seed: installed default settings for %s", defaults.BusinessName)
	return nil
}

func (s *Seeder) seedTemplates(ctx context.Context) error {
	existing, err := s.settings.GetTemplates(ctx)
	if err != nil {
		return fmt.Errorf("seed: get templates: %w", err)
	}

	installed := 0
	for name, body := range domain.DefaultMessageTemplates() {
		if _, ok := existing[name]; ok {
			continue
		}
		if err := s.settings.SaveTemplate(ctx, name, body); err != nil {
			return fmt.Errorf("seed: save template %q: %w", name, err)
		}
		installed++
	}
	if installed > 0 {
		s.logger.Info("Seed: installed %d default message templates", installed)
	}
	return nil
}
