package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDueTomorrow(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)
	// Reference instant: 2025-03-10 10:00 in Dhaka.
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, dhaka)

	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{
			name: "due tomorrow morning",
			due:  time.Date(2025, 3, 11, 8, 0, 0, 0, dhaka),
			want: true,
		},
		{
			name: "due tomorrow just after midnight",
			due:  time.Date(2025, 3, 11, 0, 1, 0, 0, dhaka),
			want: true,
		},
		{
			name: "due tomorrow just before midnight",
			due:  time.Date(2025, 3, 11, 23, 59, 0, 0, dhaka),
			want: true,
		},
		{
			name: "due today",
			due:  time.Date(2025, 3, 10, 23, 59, 0, 0, dhaka),
			want: false,
		},
		{
			name: "due day after tomorrow",
			due:  time.Date(2025, 3, 12, 0, 1, 0, 0, dhaka),
			want: false,
		},
		{
			name: "due yesterday",
			due:  time.Date(2025, 3, 9, 10, 0, 0, 0, dhaka),
			want: false,
		},
		{
			// 2025-03-10 19:30 UTC is already 2025-03-11 01:30 in Dhaka.
			name: "UTC timestamp that crosses midnight in the local zone",
			due:  time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC),
			want: true,
		},
		{
			// 2025-03-11 23:30 UTC is 2025-03-12 05:30 in Dhaka: not tomorrow.
			name: "UTC timestamp that leaves tomorrow in the local zone",
			due:  time.Date(2025, 3, 11, 23, 30, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDueTomorrow(now, tt.due, dhaka))
		})
	}
}

func TestIsDueTomorrowAcrossMonthEnd(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)

	now := time.Date(2025, 1, 31, 10, 0, 0, 0, dhaka)
	due := time.Date(2025, 2, 1, 9, 0, 0, 0, dhaka)
	assert.True(t, IsDueTomorrow(now, due, dhaka))

	now = time.Date(2024, 12, 31, 10, 0, 0, 0, dhaka)
	due = time.Date(2025, 1, 1, 9, 0, 0, 0, dhaka)
	assert.True(t, IsDueTomorrow(now, due, dhaka))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1200", formatAmount(1200))
	assert.Equal(t, "99.5", formatAmount(99.5))
	assert.Equal(t, "0", formatAmount(0))
}
