package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Records())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_View_States(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		want    string
	}{
		{"ready", StateReady, "", "Ready"},
		{"ready with message", StateReady, "Coins data collected", "Coins data collected"},
		{"fetching", StateFetching, "25 / 100", "Fetching... 25 / 100"},
		{"saving", StateSaving, "", "Saving..."},
		{"querying", StateQuerying, "", "Running query..."},
		{"warning", StateWarning, "please collect data first", "Warning please collect data first"},
		{"error", StateError, "no such table", "Error: no such table"},
		{"bare error", StateError, "", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(200)
			bar.Set(tt.state, tt.message)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_View_Records(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetRecords(42)

	assert.Contains(t, bar.View(), "42 records in memory")
}

func TestBar_View_Bindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(200)

	assert.Contains(t, bar.View(), "q: quit")

	bar.SetBindings(km.CollectHelp())
	assert.Contains(t, bar.View(), "s: save to SQL")

	bar.SetBindings(nil)
	assert.Contains(t, bar.View(), "esc: back")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.Set(StateError, "boom")
	bar.SetRecords(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 3, bar.Records())
}

func TestBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(5)

	assert.NotPanics(t, func() { _ = bar.View() })
}
