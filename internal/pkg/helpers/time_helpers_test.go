package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:30", 570},
		{"23:59", 1439},
		{" 10:15 ", 615},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "9", "0900", "24:00", "12:60", "ab:cd", "-1:00", "12:5", "123:00", "+9:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestOverlaps(t *testing.T) {
	// 09:00-10:00 against various candidates
	assert.False(t, Overlaps(540, 600, 600, 660), "abutting after")
	assert.False(t, Overlaps(540, 600, 480, 540), "abutting before")
	assert.True(t, Overlaps(540, 600, 570, 585), "contained")
	assert.True(t, Overlaps(540, 600, 500, 700), "containing")
	assert.True(t, Overlaps(540, 600, 599, 601), "one minute overlap")
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
