package id_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/pkg/id"
)

func TestNewShortID(t *testing.T) {
	t.Parallel()

	t.Run("is 16 Crockford Base32 characters", func(t *testing.T) {
		t.Parallel()

		sid := id.NewShortID()
		assert.Len(t, sid, 16)
		assert.True(t, crockfordPattern.MatchString(sid), "unexpected characters in %q", sid)
	})

	t.Run("timestamp prefix decodes to the masked clock", func(t *testing.T) {
		t.Parallel()

		const mask = 0x3FFFFFFF
		before := time.Now().UnixMilli() & mask
		sid := id.NewShortID()
		after := time.Now().UnixMilli() & mask

		// Assumes the test run does not straddle a 34-year wrap.
		ms := int64(decodeBase32(t, sid[:6]))
		assert.GreaterOrEqual(t, ms, before)
		assert.LessOrEqual(t, ms, after)
	})

	t.Run("sorts by creation time", func(t *testing.T) {
		t.Parallel()

		const n = 50
		sids := make([]string, n)
		for i := range n {
			sids[i] = id.NewShortID()
			if i < n-1 {
				time.Sleep(2 * time.Millisecond)
			}
		}

		for i := 1; i < n; i++ {
			assert.Greater(t, sids[i], sids[i-1],
				"ShortID %d (%s) should sort after %s", i, sids[i], sids[i-1])
		}
	})

	t.Run("never repeats in a tight loop", func(t *testing.T) {
		t.Parallel()

		const n = 1000
		seen := make(map[string]struct{}, n)
		for range n {
			sid := id.NewShortID()
			_, dup := seen[sid]
			require.False(t, dup, "duplicate ShortID %s", sid)
			seen[sid] = struct{}{}
		}
	})
}

func BenchmarkNewShortID(b *testing.B) {
	b.Run("serial", func(b *testing.B) {
		for b.Loop() {
			_ = id.NewShortID()
		}
	})
	b.Run("parallel", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = id.NewShortID()
			}
		})
	})
}
