package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func TestSelection_OpenGuard(t *testing.T) {
	s := NewSelection(0)
	assert.Equal(t, DefaultDebounce, s.Debounce())
	assert.Equal(t, Closed, s.State())
	assert.True(t, s.Ready())

	require.True(t, s.RequestOpen())
	assert.Equal(t, Opening, s.State())
	assert.False(t, s.Ready())

	// a second press while opening is ignored
	assert.False(t, s.RequestOpen())

	s.MarkOpen()
	assert.Equal(t, Open, s.State())
	assert.False(t, s.RequestOpen())

	s.Close()
	assert.Equal(t, Closed, s.State())

	// closed but still debouncing
	assert.False(t, s.RequestOpen())

	s.Settle()
	assert.True(t, s.RequestOpen())
}

func TestSelection_SettleWhileOpen(t *testing.T) {
	s := NewSelection(200 * time.Millisecond)
	require.True(t, s.RequestOpen())
	s.MarkOpen()

	s.Settle()
	assert.True(t, s.Ready())
	assert.Equal(t, Open, s.State())
	assert.False(t, s.RequestOpen())

	s.Close()
	assert.True(t, s.RequestOpen())
}

func TestSelection_MarkOpenOnlyFromOpening(t *testing.T) {
	s := NewSelection(time.Second)
	s.MarkOpen()
	assert.Equal(t, Closed, s.State())
	assert.False(t, s.Visible())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "opening", Opening.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestSpinner_FieldNavigation(t *testing.T) {
	s := NewSpinner(now, now, now.AddDate(1, 0, 0), false)
	assert.Equal(t, FieldDate, s.Field())

	s.PrevField()
	assert.Equal(t, FieldMeridiem, s.Field())
	s.NextField()
	assert.Equal(t, FieldDate, s.Field())
	s.NextField()
	assert.Equal(t, FieldHour, s.Field())

	s24 := NewSpinner(now, now, now.AddDate(1, 0, 0), true)
	s24.PrevField()
	assert.Equal(t, FieldMinute, s24.Field())
}

func TestSpinner_Steps(t *testing.T) {
	start := now.Add(time.Hour)
	tests := []struct {
		name  string
		moves int // NextField presses before stepping
		want  time.Time
	}{
		{"date", 0, start.AddDate(0, 0, 1)},
		{"hour", 1, start.Add(time.Hour)},
		{"minute", 2, start.Add(time.Minute)},
		{"meridiem", 3, start.Add(-12 * time.Hour)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpinner(start, time.Time{}, time.Time{}, false)
			for i := 0; i < tc.moves; i++ {
				s.NextField()
			}
			s.Increment()
			assert.Equal(t, tc.want, s.Value())
		})
	}
}

func TestSpinner_Clamp(t *testing.T) {
	max := now.AddDate(1, 0, 0)
	s := NewSpinner(now.Add(time.Minute), now, max, false)

	s.Decrement() // a day back would be in the past
	assert.Equal(t, now, s.Value())

	s = NewSpinner(max.Add(-time.Hour), now, max, false)
	s.Increment()
	assert.Equal(t, max, s.Value())

	s = NewSpinner(now.Add(-time.Hour), now, max, false)
	assert.Equal(t, now, s.Value())
}

func TestSpinner_DropsSeconds(t *testing.T) {
	v := now.Add(5*time.Minute + 42*time.Second)
	s := NewSpinner(v, time.Time{}, time.Time{}, true)
	assert.Zero(t, s.Value().Second())
}

func TestSpinner_Parts(t *testing.T) {
	s := NewSpinner(now, time.Time{}, time.Time{}, false)
	s.NextField()

	parts := s.Parts()
	require.Len(t, parts, 4)
	assert.Equal(t, "Mon Oct 19 2026", parts[0].Text)
	assert.Equal(t, "2", parts[1].Text)
	assert.True(t, parts[1].Active)
	assert.Equal(t, "30", parts[2].Text)
	assert.Equal(t, "PM", parts[3].Text)

	s24 := NewSpinner(now, time.Time{}, time.Time{}, true)
	parts = s24.Parts()
	require.Len(t, parts, 3)
	assert.Equal(t, "14", parts[1].Text)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Mon Oct 19 2026 2:30 PM", Format(now, false))
	assert.Equal(t, "Mon Oct 19 2026 14:30", Format(now, true))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-20 09:15", time.Date(2026, 10, 20, 9, 15, 0, 0, time.UTC)},
		{"2026-10-20 9:15PM", time.Date(2026, 10, 20, 21, 15, 0, 0, time.UTC)},
		{"2026-10-20 9:15 am", time.Date(2026, 10, 20, 9, 15, 0, 0, time.UTC)},
		{"16:00", time.Date(2026, 10, 19, 16, 0, 0, 0, time.UTC)},
		{"4:00pm", time.Date(2026, 10, 19, 16, 0, 0, 0, time.UTC)},
		{"  5PM ", time.Date(2026, 10, 19, 17, 0, 0, 0, time.UTC)},
		{"09:00", time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)},
		{"14:30", time.Date(2026, 10, 20, 14, 30, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "25:00", "2026-13-01 10:00"} {
		_, err := Parse(in, now)
		assert.ErrorIs(t, err, ErrUnrecognized, in)
	}
}
