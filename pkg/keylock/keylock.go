// Package keylock предоставляет мьютекс с ключом. Используется для
// критической секции "проверить вместимость, затем создать бронирование"
// по каждому slotKey отдельно, чтобы два конкурентных запроса не могли
// одновременно занять последнее свободное место.
package keylock

import "sync"

// KeyLock набор именованных мьютексов с ленивым созданием
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New создает пустой KeyLock
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock захватывает мьютекс для ключа
func (k *KeyLock) Lock(key string) {
	k.get(key).Lock()
}

// Unlock освобождает мьютекс для ключа
func (k *KeyLock) Unlock(key string) {
	k.get(key).Unlock()
}

// Do выполняет fn под мьютексом ключа
func (k *KeyLock) Do(key string, fn func() error) error {
	k.Lock(key)
	defer k.Unlock(key)
	return fn()
}
