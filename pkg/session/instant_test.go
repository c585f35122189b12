package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uboraplatform/ubora/pkg/session"
)

type carrier struct{ t time.Time }

func (c carrier) Time() time.Time { return c.t }

func TestToInstantAt(t *testing.T) {
	t.Parallel()

	fallback := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{name: "time value", in: instant, want: instant},
		{name: "time pointer", in: &instant, want: instant},
		{name: "nil time pointer falls back", in: (*time.Time)(nil), want: fallback},
		{name: "carrier", in: carrier{t: instant}, want: instant},
		{name: "rfc3339", in: "2025-06-15T10:30:00Z", want: instant},
		{name: "rfc3339 nano", in: "2025-06-15T10:30:00.000000001Z", want: instant.Add(time.Nanosecond)},
		{name: "date only", in: "2025-06-15", want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "garbage string falls back", in: "not-a-date", want: fallback},
		{name: "epoch seconds", in: int64(1750000200), want: time.Unix(1750000200, 0).UTC()},
		{name: "epoch millis", in: int64(1750000200000), want: time.UnixMilli(1750000200000).UTC()},
		{name: "epoch int", in: int(1750000200), want: time.Unix(1750000200, 0).UTC()},
		{name: "epoch float", in: float64(1750000200), want: time.Unix(1750000200, 0).UTC()},
		{name: "unsupported type falls back", in: struct{}{}, want: fallback},
		{name: "nil falls back", in: nil, want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, session.ToInstantAt(tt.in, fallback))
		})
	}
}

func TestToInstantAt_NonUTCInputNormalized(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2025, 6, 15, 13, 30, 0, 0, loc)

	got := session.ToInstantAt(local, time.Time{})
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))
}
