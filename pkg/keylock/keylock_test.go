package keylock

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_MutualExclusionPerKey(t *testing.T) {
	kl := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = kl.Do("2026-09-20-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDo_IndependentKeys(t *testing.T) {
	kl := New()

	kl.Lock("2026-09-20-1")
	defer kl.Unlock("2026-09-20-1")

	// Другой ключ не блокируется захваченным
	done := make(chan struct{})
	go func() {
		_ = kl.Do("2026-09-20-2", func() error { return nil })
		close(done)
	}()
	<-done
}

func TestDo_PropagatesError(t *testing.T) {
	kl := New()

	sentinel := errors.New("boom")
	err := kl.Do("key", func() error { return sentinel })
	require.ErrorIs(t, err, sentinel)

	// Мьютекс освобожден после ошибки
	err = kl.Do("key", func() error { return nil })
	assert.NoError(t, err)
}
