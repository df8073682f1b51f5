// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ticks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToUnixMilli(t *testing.T) {
	tests := []struct {
		name  string
		ticks int64
		want  int64
	}{
		{"epoch zero point", 621672192000000000, 0},
		{"one millisecond", 621672192000010000, 1},
		{"sub-millisecond ticks truncate", 621672192000019999, 1},
		{"2017-01-05 15:04:05 UTC", 621672192000000000 + 1483628645000*ticksPerMilli, 1483628645000},
		{"before 1970 passes through", 621672191990000000, -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUnixMilli(tt.ticks))
		})
	}
}

func TestReadableDate(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"single-digit day and hour", 1483628645000, "Jan 5, 2017 3:04:05 PM"},
		{"two-digit day and hour", 1513269245000, "Dec 14, 2017 4:34:05 PM"},
		{"midnight", 1483574400000, "Jan 5, 2017 12:00:00 AM"},
		{"morning", 1483608000000, "Jan 5, 2017 9:20:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadableDate(tt.ms, time.UTC))
		})
	}
}

func TestReadableDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, "Jan 5, 2017 10:04:05 AM", ReadableDate(1483628645000, loc))
}
