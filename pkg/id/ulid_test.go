package id_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/pkg/id"
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var crockfordPattern = regexp.MustCompile(`^[0-9A-HJ-NP-TV-Z]+$`)

// decodeBase32 reverses the Crockford encoding so tests can inspect
// the timestamp prefix of a generated identifier.
func decodeBase32(t *testing.T, s string) uint64 {
	t.Helper()

	var v uint64
	for _, c := range s {
		idx := strings.IndexRune(crockford, c)
		require.GreaterOrEqual(t, idx, 0, "character %q outside Crockford alphabet", c)
		v = v<<5 | uint64(idx)
	}
	return v
}

func TestNewULID(t *testing.T) {
	t.Parallel()

	t.Run("is 26 Crockford Base32 characters", func(t *testing.T) {
		t.Parallel()

		ulid := id.NewULID()
		assert.Len(t, ulid, 26)
		assert.True(t, crockfordPattern.MatchString(ulid), "unexpected characters in %q", ulid)
	})

	t.Run("timestamp prefix decodes to generation time", func(t *testing.T) {
		t.Parallel()

		before := time.Now().UnixMilli()
		ulid := id.NewULID()
		after := time.Now().UnixMilli()

		ms := int64(decodeBase32(t, ulid[:10]))
		assert.GreaterOrEqual(t, ms, before)
		assert.LessOrEqual(t, ms, after)
	})

	t.Run("sorts by creation time", func(t *testing.T) {
		t.Parallel()

		const n = 50
		ulids := make([]string, n)
		for i := range n {
			ulids[i] = id.NewULID()
			if i < n-1 {
				time.Sleep(2 * time.Millisecond)
			}
		}

		for i := 1; i < n; i++ {
			assert.Greater(t, ulids[i], ulids[i-1],
				"ULID %d (%s) should sort after %s", i, ulids[i], ulids[i-1])
		}
	})

	t.Run("never repeats in a tight loop", func(t *testing.T) {
		t.Parallel()

		const n = 1000
		seen := make(map[string]struct{}, n)
		for range n {
			ulid := id.NewULID()
			_, dup := seen[ulid]
			require.False(t, dup, "duplicate ULID %s", ulid)
			seen[ulid] = struct{}{}
		}
	})

	t.Run("never repeats under concurrency", func(t *testing.T) {
		t.Parallel()

		const goroutines = 50
		const perGoroutine = 100

		results := make(chan string, goroutines*perGoroutine)
		var wg sync.WaitGroup
		for range goroutines {
			wg.Go(func() {
				for range perGoroutine {
					results <- id.NewULID()
				}
			})
		}
		wg.Wait()
		close(results)

		seen := make(map[string]struct{}, goroutines*perGoroutine)
		for ulid := range results {
			_, dup := seen[ulid]
			require.False(t, dup, "duplicate ULID %s", ulid)
			seen[ulid] = struct{}{}
		}
		assert.Len(t, seen, goroutines*perGoroutine)
	})
}

func BenchmarkNewULID(b *testing.B) {
	b.Run("serial", func(b *testing.B) {
		for b.Loop() {
			_ = id.NewULID()
		}
	})
	b.Run("parallel", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = id.NewULID()
			}
		})
	})
}
