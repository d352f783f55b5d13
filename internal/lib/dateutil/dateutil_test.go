package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOrFallback(t *testing.T) {
	fallback := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "корректная дата",
			value: "2024-01-02",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "пустая строка - откат на fallback",
			value: "",
			want:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "мусор - откат на fallback",
			value: "not-a-date",
			want:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "неверный формат - откат на fallback",
			value: "02-01-2024",
			want:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrFallback(tt.value, fallback))
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	gotStart, gotEnd := NormalizeRange(b, a)
	assert.Equal(t, a, gotStart)
	assert.Equal(t, b, gotEnd)

	gotStart, gotEnd = NormalizeRange(a, b)
	assert.Equal(t, a, gotStart)
	assert.Equal(t, b, gotEnd)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	b := time.Date(2024, 1, 4, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)
}
