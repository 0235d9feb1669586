package bimap_test

import (
	"bytes"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ocm.software/open-component-model/bindings/go/bimap"
)

type intStringMap interface {
	Set(int, string) bimap.Pair[int, string]
	Insert(int, string) (bimap.Pair[int, string], bool)
	DeleteKey(int) bool
	DeleteValue(string) bool
	Lookup(int) (bimap.Pair[int, string], bool)
	LookupValue(string) (bimap.Pair[int, string], bool)
	Get(int) (string, bool)
	GetByValue(string) (int, bool)
	ContainsKey(int) bool
	ContainsValue(string) bool
	Len() int
	Clear()
	All() iter.Seq2[int, string]
	Keys() iter.Seq[int]
	Values() iter.Seq[string]
	ByKey() iter.Seq[bimap.Pair[int, string]]
	ByValue() iter.Seq[bimap.Pair[int, string]]
	KeyIterator() *bimap.Iterator[int, string]
	ValueIterator() *bimap.Iterator[int, string]
	Verify() error
}

var variants = []struct {
	name string
	new  func(opts ...bimap.Option) intStringMap
}{
	{"Ordered", func(opts ...bimap.Option) intStringMap { return bimap.MustNewOrdered[int, string](opts...) }},
	{"Unordered", func(opts ...bimap.Option) intStringMap { return bimap.MustNewUnordered[int, string](opts...) }},
	{"Linked", func(opts ...bimap.Option) intStringMap { return bimap.MustNewLinked[int, string](opts...) }},
}

func forEachVariant(t *testing.T, test func(t *testing.T, newMap func(opts ...bimap.Option) intStringMap)) {
	t.Helper()
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			test(t, v.new)
		})
	}
}

func requirePair(r *require.Assertions, p bimap.Pair[int, string], key int, value string) {
	r.Equal(key, p.Key())
	r.Equal(value, p.Value())
}

func TestScenario(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		m := newMap()

		requirePair(r, m.Set(100, "ururu"), 100, "ururu")
		requirePair(r, m.Set(2, "ololo"), 2, "ololo")

		p, ok := m.Insert(3, "tralala")
		r.True(ok)
		requirePair(r, p, 3, "tralala")

		p, ok = m.Insert(4, "ololo")
		r.False(ok)
		requirePair(r, p, 2, "ololo")
		r.False(m.ContainsKey(4))
		r.Equal(3, m.Len())

		p, ok = m.Insert(5, "azaza")
		r.True(ok)
		requirePair(r, p, 5, "azaza")

		v, ok := m.Get(3)
		r.True(ok)
		r.Equal("tralala", v)

		k, ok := m.GetByValue("ololo")
		r.True(ok)
		r.Equal(2, k)

		_, ok = m.Lookup(123)
		r.False(ok)

		r.True(m.DeleteKey(5))
		_, ok = m.LookupValue("azaza")
		r.False(ok)

		r.Equal(3, m.Len())
		r.NoError(m.Verify())
	})
}

func TestSet(t *testing.T) {
	t.Run("evicts two different pairs", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(1, "a")
			m.Set(2, "b")
			r.Equal(2, m.Len())

			requirePair(r, m.Set(1, "b"), 1, "b")

			r.Equal(1, m.Len())
			r.False(m.ContainsKey(2))
			r.False(m.ContainsValue("a"))
			v, ok := m.Get(1)
			r.True(ok)
			r.Equal("b", v)
			k, ok := m.GetByValue("b")
			r.True(ok)
			r.Equal(1, k)
			r.NoError(m.Verify())
		})
	})

	t.Run("evicts the same pair once", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(1, "a")
			m.Set(2, "b")

			requirePair(r, m.Set(1, "a"), 1, "a")

			r.Equal(2, m.Len())
			r.NoError(m.Verify())
		})
	})

	t.Run("overwrites the value of a key", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(1, "a")
			m.Set(1, "b")

			r.Equal(1, m.Len())
			r.False(m.ContainsValue("a"))
			v, ok := m.Get(1)
			r.True(ok)
			r.Equal("b", v)
			r.NoError(m.Verify())
		})
	})

	t.Run("overwrites the key of a value", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(1, "a")
			m.Set(2, "a")

			r.Equal(1, m.Len())
			r.False(m.ContainsKey(1))
			k, ok := m.GetByValue("a")
			r.True(ok)
			r.Equal(2, k)
			r.NoError(m.Verify())
		})
	})
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name      string
		key       int
		value     string
		wantKey   int
		wantValue string
		wantOK    bool
	}{
		{"no conflict", 3, "c", 3, "c", true},
		{"key taken", 1, "c", 1, "a", false},
		{"value taken", 3, "b", 2, "b", false},
		{"both taken by different pairs reports the key side", 1, "b", 1, "a", false},
		{"both taken by the same pair", 2, "b", 2, "b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
				r := require.New(t)
				m := newMap()
				m.Set(1, "a")
				m.Set(2, "b")
				before := slices.Collect(m.ByKey())

				p, ok := m.Insert(tt.key, tt.value)
				r.Equal(tt.wantOK, ok)
				requirePair(r, p, tt.wantKey, tt.wantValue)

				if ok {
					r.Equal(len(before)+1, m.Len())
				} else {
					r.ElementsMatch(before, slices.Collect(m.ByKey()))
				}
				r.NoError(m.Verify())
			})
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("by key", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(7, "seven")
			_, ok := m.Insert(8, "eight")
			r.True(ok)

			r.True(m.DeleteKey(8))
			r.False(m.ContainsKey(8))
			r.False(m.ContainsValue("eight"))
			r.Equal(1, m.Len())

			r.False(m.DeleteKey(8))
			r.Equal(1, m.Len())
			r.NoError(m.Verify())
		})
	})

	t.Run("by value", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			m.Set(7, "seven")
			m.Set(8, "eight")

			r.True(m.DeleteValue("seven"))
			r.False(m.ContainsKey(7))
			r.False(m.ContainsValue("seven"))
			r.Equal(1, m.Len())

			r.False(m.DeleteValue("seven"))
			r.False(m.DeleteValue("missing"))
			r.NoError(m.Verify())
		})
	})

	t.Run("reuses released storage", func(t *testing.T) {
		forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
			r := require.New(t)
			m := newMap()
			for i := range 10 {
				m.Set(i, strings.Repeat("x", i+1))
			}
			for i := 0; i < 10; i += 2 {
				r.True(m.DeleteKey(i))
			}
			for i := 10; i < 15; i++ {
				m.Set(i, strings.Repeat("y", i))
			}
			r.Equal(10, m.Len())
			for i := 1; i < 10; i += 2 {
				v, ok := m.Get(i)
				r.True(ok)
				r.Equal(strings.Repeat("x", i+1), v)
			}
			r.NoError(m.Verify())
		})
	})
}

func TestGetMissing(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		m := newMap()

		_, ok := m.Lookup(1)
		r.False(ok)
		_, ok = m.LookupValue("missing")
		r.False(ok)

		v, ok := m.Get(1)
		r.False(ok)
		r.Empty(v)
		k, ok := m.GetByValue("missing")
		r.False(ok)
		r.Zero(k)
	})
}

func TestClear(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		m := newMap(bimap.WithCapacity(4))
		m.Set(1, "a")
		m.Set(2, "b")
		m.Set(3, "c")

		m.Clear()
		r.Equal(0, m.Len())
		r.Empty(slices.Collect(m.Keys()))
		r.Empty(slices.Collect(m.Values()))
		r.False(m.ContainsKey(1))
		r.False(m.ContainsValue("a"))
		r.NoError(m.Verify())

		_, ok := m.Insert(1, "b")
		r.True(ok)
		r.Equal(1, m.Len())
		r.NoError(m.Verify())
	})
}

func TestIterationVisitsEveryPair(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		m := newMap()
		m.Set(1, "one")
		m.Set(2, "two")
		m.Set(3, "three")

		got := make(map[int]string)
		for k, v := range m.All() {
			got[k] = v
		}
		r.Equal(map[int]string{1: "one", 2: "two", 3: "three"}, got)

		r.ElementsMatch([]int{1, 2, 3}, slices.Collect(m.Keys()))
		r.ElementsMatch([]string{"one", "two", "three"}, slices.Collect(m.Values()))
		r.ElementsMatch(slices.Collect(m.ByKey()), slices.Collect(m.ByValue()))
		r.Len(slices.Collect(m.ByKey()), 3)
	})
}

func TestIterationStopsEarly(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		m := newMap()
		for i := range 5 {
			m.Set(i, strings.Repeat("v", i+1))
		}

		n := 0
		for range m.All() {
			n++
			if n == 2 {
				break
			}
		}
		r.Equal(2, n)

		n = 0
		for range m.ByValue() {
			n++
			break
		}
		r.Equal(1, n)
	})
}

func TestSameTypeIsRejected(t *testing.T) {
	r := require.New(t)

	_, err := bimap.NewOrdered[string, string]()
	r.ErrorIs(err, bimap.ErrSameType)

	_, err = bimap.NewOrderedFunc[int, int](func(a, b int) int { return a - b }, func(a, b int) int { return b - a })
	r.ErrorIs(err, bimap.ErrSameType)

	_, err = bimap.NewUnordered[int, int]()
	r.ErrorIs(err, bimap.ErrSameType)

	_, err = bimap.NewLinked[string, string]()
	r.ErrorIs(err, bimap.ErrSameType)
	r.Contains(err.Error(), "bimap[string, string]")

	r.Panics(func() { bimap.MustNewOrdered[int, int]() })
	r.Panics(func() { bimap.MustNewUnordered[string, string]() })
	r.Panics(func() { bimap.MustNewLinked[float64, float64]() })

	type id string
	_, err = bimap.NewUnordered[id, string]()
	r.NoError(err)
}

func TestSetLogsEvictions(t *testing.T) {
	forEachVariant(t, func(t *testing.T, newMap func(...bimap.Option) intStringMap) {
		r := require.New(t)
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		m := newMap(bimap.WithLogger(logger))

		m.Set(1, "a")
		m.Set(2, "b")
		r.Empty(buf.String())

		m.Set(1, "b")
		r.Equal(2, strings.Count(buf.String(), "evicted conflicting pair"))
		r.Contains(buf.String(), "key=2")
		r.Contains(buf.String(), "value=a")

		buf.Reset()
		m.Clear()
		r.Contains(buf.String(), "cleared bimap")
		r.Contains(buf.String(), "pairs=1")
	})
}

func TestSetDoesNotLogBelowDebug(t *testing.T) {
	r := require.New(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	m := bimap.MustNewUnordered[int, string](bimap.WithLogger(logger))

	m.Set(1, "a")
	m.Set(1, "b")
	m.Clear()
	r.Empty(buf.String())
}

func TestPairString(t *testing.T) {
	m := bimap.MustNewOrdered[int, string]()
	require.Equal(t, "1 => one", m.Set(1, "one").String())
}
