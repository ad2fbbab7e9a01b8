package jsonstore

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
	settingsRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/settings"
)

// SettingsRepo представление настроек и шаблонов поверх документного хранилища
type SettingsRepo struct {
	s *Store
}

// GetSettings возвращает документ настроек
func (r *SettingsRepo) GetSettings(ctx context.Context) (*domain.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	cp := *r.s.settings
	return &cp, nil
}

// SaveSettings перезаписывает документ настроек целиком
func (r *SettingsRepo) SaveSettings(ctx context.Context, s *domain.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev := r.s.settings
	cp := *s
	r.s.settings = &cp
	if err := r.s.saveSettings(); err != nil {
		r.s.settings = prev
		return err
	}
	return nil
}

// GetTemplates возвращает все шаблоны сообщений
func (r *SettingsRepo) GetTemplates(ctx context.Context) (map[string]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make(map[string]string, len(r.s.templates))
	for name, body := range r.s.templates {
		out[name] = body
	}
	return out, nil
}

// SaveTemplate сохраняет текст шаблона по имени
func (r *SettingsRepo) SaveTemplate(ctx context.Context, name, body string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, existed := r.s.templates[name]
	r.s.templates[name] = body
	if err := r.s.saveTemplates(); err != nil {
		if existed {
			r.s.templates[name] = prev
		} else {
			delete(r.s.templates, name)
		}
		return err
	}
	return nil
}
