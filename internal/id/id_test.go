package id

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	for _, prefix := range []Prefix{Item, Request, User, Volunteer, Donation} {
		t.Run(string(prefix), func(t *testing.T) {
			v, err := Generate(prefix)
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(v, string(prefix)+"-"))

			nanoidPart := strings.TrimPrefix(v, string(prefix)+"-")
			assert.Len(t, nanoidPart, 21)
			for _, char := range nanoidPart {
				assert.True(t,
					(char >= 'A' && char <= 'Z') ||
						(char >= 'a' && char <= 'z') ||
						(char >= '0' && char <= '9') ||
						char == '_' || char == '-',
					"character %c should be URL-safe", char)
			}
		})
	}
}

func TestGenerate_UniqueUnderConcurrency(t *testing.T) {
	const workers, perWorker = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, workers*perWorker)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				v := MustGenerate(Item)
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func BenchmarkGenerate(b *testing.B) {
	for b.Loop() {
		_, _ = Generate(Item)
	}
}
