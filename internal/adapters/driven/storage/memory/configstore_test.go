package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
	assert.NoError(t, store.Save())
}

func TestNewConfigStoreWith_CopiesValues(t *testing.T) {
	seed := map[string]any{"dataset.path": "stores.xlsx"}
	store := NewConfigStoreWith(seed)

	seed["dataset.path"] = "changed.xlsx"

	assert.Equal(t, "stores.xlsx", store.GetString("dataset.path"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("geocoder.api_key", "first"))
	require.NoError(t, store.Set("geocoder.api_key", "second"))

	val, ok := store.Get("geocoder.api_key")
	assert.True(t, ok)
	assert.Equal(t, "second", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"s":       "text",
		"i":       7,
		"i64":     int64(8),
		"f":       2.5,
		"b":       true,
		"wrong":   []string{"x"},
		"f_whole": 10.0,
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("s"), "text"},
		{"string of int", store.GetString("i"), ""},
		{"int", store.GetInt("i"), 7},
		{"int64", store.GetInt("i64"), 8},
		{"int of float", store.GetInt("f_whole"), 10},
		{"int of string", store.GetInt("s"), 0},
		{"float", store.GetFloat("f"), 2.5},
		{"float of int", store.GetFloat("i"), 7.0},
		{"float of int64", store.GetFloat("i64"), 8.0},
		{"float of slice", store.GetFloat("wrong"), 0.0},
		{"bool", store.GetBool("b"), true},
		{"bool of string", store.GetBool("s"), false},
		{"missing float", store.GetFloat("nope"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("search.default_radius", float64(i))
			_ = store.GetFloat("search.default_radius")
		}()
	}
	wg.Wait()

	_, ok := store.Get("search.default_radius")
	assert.True(t, ok)
}
