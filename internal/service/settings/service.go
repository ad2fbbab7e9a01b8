package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	settingsRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/settings"
)

// Service сервис настроек бизнеса и проверки админ-пароля
type Service struct {
	settingsRepo SettingsRepository
	auditLog     AuditLog
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, auditLog AuditLog, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		auditLog:     auditLog,
		logger:       logger,
	}
}

// Get возвращает текущие настройки. AdminPassword в ответе всегда хеш,
// наружу его не отдают, это забота слоя представления.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings document not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return current, nil
}

// Update применяет частичное обновление настроек. Новый пароль хешируется
// перед сохранением.
func (s *Service) Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if upd.BusinessName != nil {
		name := strings.TrimSpace(*upd.BusinessName)
		if name == "" {
			return nil, fmt.Errorf("%w: business name must not be empty", ErrInvalidInput)
		}
		current.BusinessName = name
	}
	if upd.Currency != nil {
		currency := strings.TrimSpace(*upd.Currency)
		if currency == "" {
			return nil, fmt.Errorf("%w: currency must not be empty", ErrInvalidInput)
		}
		current.Currency = currency
	}
	if upd.SlotInterval != nil {
		if *upd.SlotInterval <= 0 {
			return nil, fmt.Errorf("%w: slot interval must be positive", ErrInvalidInput)
		}
		current.SlotInterval = *upd.SlotInterval
	}
	if upd.AdminPassword != nil {
		if len(*upd.AdminPassword) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		current.AdminPassword = string(hash)
	}

	if err := s.settingsRepo.SaveSettings(ctx, current); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.auditLog.Append(ctx, domain.AuditSettingsUpdate, "Updated business settings"); err != nil {
		s.logger.Warn("Update: failed to append audit log: %v", err)
	}

	s.logger.Info("Update: settings saved")
	return current, nil
}

// CheckPassword сверяет пароль с сохраненным хешем
func (s *Service) CheckPassword(ctx context.Context, password string) error {
	current, err := s.Get(ctx)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.AdminPassword), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrWrongPassword
		}
		s.logger.Error("CheckPassword: compare error: %v", err)
		return fmt.Errorf("%w: CheckPassword - compare: %v", ErrInternal, err)
	}
	return nil
}
