// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ticks converts the Verizon Messages CreatedOn encoding into the
// epoch milliseconds and display dates used by SMS Backup documents.
package ticks

import "time"

const (
	// ticksPerMilli is the number of 100ns ticks in one millisecond.
	ticksPerMilli = 10000

	// epochOffsetMilli is the distance from 0000-01-01 to 1970-01-01 in ms.
	epochOffsetMilli = 62167219200000

	// readableLayout renders like "%b %d, %Y %I:%M:%S %p" with single leading
	// zeros dropped from the day and hour.
	readableLayout = "Jan 2, 2006 3:04:05 PM"
)

// ToUnixMilli converts a CreatedOn tick count to milliseconds since the Unix
// epoch. The division truncates; out-of-range input is passed through.
func ToUnixMilli(createdOn int64) int64 {
	return createdOn/ticksPerMilli - epochOffsetMilli
}

// ReadableDate formats a millisecond timestamp for the readable_date
// attribute in loc. A nil loc means time.Local.
func ReadableDate(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc).Format(readableLayout)
}
