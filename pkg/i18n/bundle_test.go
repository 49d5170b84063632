package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/pkg/i18n"
)

func TestNewBundle(t *testing.T) {
	t.Parallel()

	t.Run("parses meta entry", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(map[string]any{
			"meta": map[string]any{"lang": "ar", "dir": "rtl"},
			"nav":  map[string]any{"home": "الرئيسية"},
		})

		require.Equal(t, "ar", b.Meta().Lang)
		require.Equal(t, i18n.DirectionRTL, b.Meta().Dir)
	})

	t.Run("normalizes meta direction case", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(map[string]any{
			"meta": map[string]any{"lang": "ar", "dir": "RTL"},
		})
		require.Equal(t, i18n.DirectionRTL, b.Meta().Dir)
	})

	t.Run("tolerates missing meta", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(map[string]any{"hello": "Hello"})

		require.Equal(t, i18n.Meta{}, b.Meta())
		v, ok := b.String("hello")
		require.True(t, ok)
		require.Equal(t, "Hello", v)
	})

	t.Run("tolerates malformed meta", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(map[string]any{
			"meta":  "not a mapping",
			"hello": "Hello",
		})
		require.Equal(t, i18n.Meta{}, b.Meta())
	})

	t.Run("tolerates nil document", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(nil)
		require.Equal(t, 0, b.Len())

		_, ok := b.Lookup("anything")
		require.False(t, ok)
	})

	t.Run("counts top-level entries including meta", func(t *testing.T) {
		t.Parallel()
		b := i18n.NewBundle(map[string]any{
			"meta":  map[string]any{"lang": "en"},
			"hello": "Hello",
		})
		require.Equal(t, 2, b.Len())
	})
}

func TestBundleLookup(t *testing.T) {
	t.Parallel()

	bundle := i18n.NewBundle(map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": "X",
			},
		},
		"ticker": map[string]any{
			"items": []any{"first", "second"},
		},
		"count": float64(42),
	})

	t.Run("resolves nested path", func(t *testing.T) {
		t.Parallel()
		v, ok := bundle.Lookup("a.b.c")
		require.True(t, ok)
		require.Equal(t, "X", v)
	})

	t.Run("resolves intermediate container", func(t *testing.T) {
		t.Parallel()
		v, ok := bundle.Lookup("a.b")
		require.True(t, ok)
		require.Equal(t, map[string]any{"c": "X"}, v)
	})

	t.Run("reports miss for unknown path", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.Lookup("a.z")
		require.False(t, ok)
	})

	t.Run("reports miss when path continues past a leaf", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.Lookup("a.b.c.d")
		require.False(t, ok)
	})

	t.Run("reports miss for empty key", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.Lookup("")
		require.False(t, ok)
	})

	t.Run("resolves list leaf", func(t *testing.T) {
		t.Parallel()
		v, ok := bundle.Lookup("ticker.items")
		require.True(t, ok)
		require.Equal(t, []any{"first", "second"}, v)
	})
}

func TestBundleString(t *testing.T) {
	t.Parallel()

	bundle := i18n.NewBundle(map[string]any{
		"hero": map[string]any{"title": "Study with us"},
		"nums": map[string]any{"open": float64(7)},
	})

	t.Run("returns string leaf", func(t *testing.T) {
		t.Parallel()
		v, ok := bundle.String("hero.title")
		require.True(t, ok)
		require.Equal(t, "Study with us", v)
	})

	t.Run("rejects non-string leaf", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.String("nums.open")
		require.False(t, ok)
	})

	t.Run("rejects container", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.String("hero")
		require.False(t, ok)
	})

	t.Run("rejects missing path", func(t *testing.T) {
		t.Parallel()
		_, ok := bundle.String("hero.subtitle")
		require.False(t, ok)
	})
}

func TestBundleStrings(t *testing.T) {
	t.Parallel()

	bundle := i18n.NewBundle(map[string]any{
		"ticker": map[string]any{
			"items": []any{"admissions open", float64(3), "deadline soon"},
		},
		"hero": map[string]any{"title": "Study with us"},
	})

	t.Run("returns string items skipping the rest", func(t *testing.T) {
		t.Parallel()
		items := bundle.Strings("ticker.items")
		require.Equal(t, []string{"admissions open", "deadline soon"}, items)
	})

	t.Run("returns nil for non-list value", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, bundle.Strings("hero.title"))
	})

	t.Run("returns nil for missing path", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, bundle.Strings("ticker.missing"))
	})
}
