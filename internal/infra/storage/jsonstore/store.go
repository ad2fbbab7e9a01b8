// Package jsonstore хранит коллекции сервиса как JSON-документы, по одному
// файлу на ключ (slots, bookings, waitlist, auditLogs, settings,
// messageTemplates, services). Бэкенд рассчитан на одиночный процесс и
// используется как встроенное хранилище и в тестах.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// Имена документов
const (
	docSlots     = "slots.json"
	docBookings  = "bookings.json"
	docWaitlist  = "waitlist.json"
	docAuditLogs = "auditLogs.json"
	docSettings  = "settings.json"
	docTemplates = "messageTemplates.json"
	docServices  = "services.json"
)

// Store встроенное документное хранилище. Все коллекции живут в памяти,
// каждая мутация атомарно переписывает соответствующий документ.
type Store struct {
	mu  sync.Mutex
	dir string

	slots     []*domain.Slot
	bookings  []*domain.Booking
	waitlist  []*domain.WaitlistEntry
	auditLogs []*domain.AuditEntry // самые свежие первыми
	offerings []*domain.Offering
	settings  *domain.Settings
	templates map[string]string
}

// Open загружает документы из каталога, создавая каталог при необходимости
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: failed to create data dir: %w", err)
	}

	s := &Store{dir: dir, templates: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Slots возвращает репозиторий каталога слотов
func (s *Store) Slots() *SlotRepo { return &SlotRepo{s: s} }

// Bookings возвращает репозиторий бронирований
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

// Waitlist возвращает репозиторий листа ожидания
func (s *Store) Waitlist() *WaitlistRepo { return &WaitlistRepo{s: s} }

// AuditLogs возвращает репозиторий журнала действий
func (s *Store) AuditLogs() *AuditRepo { return &AuditRepo{s: s} }

// Offerings возвращает репозиторий каталога услуг
func (s *Store) Offerings() *OfferingRepo { return &OfferingRepo{s: s} }

// Settings возвращает репозиторий настроек и шаблонов
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s: s} }

func (s *Store) load() error {
	var slots []slotDoc
	if err := loadDoc(s.path(docSlots), &slots); err != nil {
		return err
	}
	s.slots = make([]*domain.Slot, 0, len(slots))
	for _, d := range slots {
		s.slots = append(s.slots, d.toDomain())
	}

	var bookings []bookingDoc
	if err := loadDoc(s.path(docBookings), &bookings); err != nil {
		return err
	}
	s.bookings = make([]*domain.Booking, 0, len(bookings))
	for _, d := range bookings {
		b, err := d.toDomain()
		if err != nil {
			return fmt.Errorf("jsonstore: %s: %w", docBookings, err)
		}
		s.bookings = append(s.bookings, b)
	}

	var entries []waitlistDoc
	if err := loadDoc(s.path(docWaitlist), &entries); err != nil {
		return err
	}
	s.waitlist = make([]*domain.WaitlistEntry, 0, len(entries))
	for _, d := range entries {
		s.waitlist = append(s.waitlist, d.toDomain())
	}

	var logs []auditDoc
	if err := loadDoc(s.path(docAuditLogs), &logs); err != nil {
		return err
	}
	s.auditLogs = make([]*domain.AuditEntry, 0, len(logs))
	for _, d := range logs {
		s.auditLogs = append(s.auditLogs, &domain.AuditEntry{
			ID: d.ID, Action: d.Action, Details: d.Details, Timestamp: d.Timestamp,
		})
	}

	var offerings []offeringDoc
	if err := loadDoc(s.path(docServices), &offerings); err != nil {
		return err
	}
	s.offerings = make([]*domain.Offering, 0, len(offerings))
	for _, d := range offerings {
		s.offerings = append(s.offerings, d.toDomain())
	}

	if err := loadDoc(s.path(docTemplates), &s.templates); err != nil {
		return err
	}
	if s.templates == nil {
		s.templates = make(map[string]string)
	}

	var settings *settingsDoc
	if err := loadDoc(s.path(docSettings), &settings); err != nil {
		return err
	}
	if settings != nil {
		s.settings = settings.toDomain()
	}

	return nil
}

func (s *Store) path(doc string) string {
	return filepath.Join(s.dir, doc)
}

// loadDoc читает один JSON-документ; отсутствующий файл не ошибка
func loadDoc(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jsonstore: failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("jsonstore: failed to parse %s: %w", path, err)
	}
	return nil
}

// saveDoc атомарно переписывает документ (запись во временный файл + rename)
func (s *Store) saveDoc(doc string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: failed to marshal %s: %w", doc, err)
	}

	path := s.path(doc)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("jsonstore: failed to replace %s: %w", path, err)
	}
	return nil
}

func (s *Store) saveSlots() error {
	docs := make([]slotDoc, 0, len(s.slots))
	for _, sl := range s.slots {
		docs = append(docs, fromDomainSlot(sl))
	}
	return s.saveDoc(docSlots, docs)
}

func (s *Store) saveBookings() error {
	docs := make([]bookingDoc, 0, len(s.bookings))
	for _, b := range s.bookings {
		docs = append(docs, fromDomainBooking(b))
	}
	return s.saveDoc(docBookings, docs)
}

func (s *Store) saveWaitlist() error {
	docs := make([]waitlistDoc, 0, len(s.waitlist))
	for _, e := range s.waitlist {
		docs = append(docs, fromDomainWaitlistEntry(e))
	}
	return s.saveDoc(docWaitlist, docs)
}

func (s *Store) saveAuditLogs() error {
	docs := make([]auditDoc, 0, len(s.auditLogs))
	for _, e := range s.auditLogs {
		docs = append(docs, auditDoc{ID: e.ID, Action: e.Action, Details: e.Details, Timestamp: e.Timestamp})
	}
	return s.saveDoc(docAuditLogs, docs)
}

func (s *Store) saveOfferings() error {
	docs := make([]offeringDoc, 0, len(s.offerings))
	for _, o := range s.offerings {
		docs = append(docs, fromDomainOffering(o))
	}
	return s.saveDoc(docServices, docs)
}

func (s *Store) saveSettings() error {
	return s.saveDoc(docSettings, fromDomainSettings(s.settings))
}

func (s *Store) saveTemplates() error {
	return s.saveDoc(docTemplates, s.templates)
}

// nextID выводит идентификатор из текущего времени (unix-миллисекунды) и
// сдвигает его вперед при коллизии, сохраняя уникальность и монотонность
func nextID(candidate int64, taken func(int64) bool) int64 {
	for taken(candidate) {
		candidate++
	}
	return candidate
}
