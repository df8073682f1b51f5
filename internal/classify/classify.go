// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a stored message was sent or received and
// which counterpart address the backup record should carry.
package classify

import (
	"fmt"

	"github.com/pdiddy/verizon2sms/internal/phone"
	"github.com/pdiddy/verizon2sms/pkg/types"
)

// SenderSet holds normalized numbers that always mark a message as sent.
type SenderSet map[string]struct{}

// NewSenderSet builds a SenderSet from already-normalized numbers.
func NewSenderSet(numbers ...string) SenderSet {
	s := make(SenderSet, len(numbers))
	for _, n := range numbers {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether number is in the set. A nil set contains nothing.
func (s SenderSet) Contains(number string) bool {
	_, ok := s[number]
	return ok
}

// Anomaly flags a recoverable oddity found while classifying a row.
type Anomaly int

const (
	AnomalyNone Anomaly = iota
	// AnomalyUnrecognizedSourceType marks a row whose SourceType was neither
	// received nor sent; it is classified as received.
	AnomalyUnrecognizedSourceType
)

// Result is the outcome of classifying one row.
type Result struct {
	Direction types.Direction
	// Sender is the normalized Sender column.
	Sender string
	// Address is the counterpart: the recipient of a sent message or the
	// sender of a received one.
	Address string
	Anomaly Anomaly
}

// Classifier classifies rows using one normalizer and region for the run.
type Classifier struct {
	Normalizer phone.Normalizer
	Region     string
	Senders    SenderSet
}

// Classify normalizes the row's numbers and picks its direction. Senders
// override SourceType. Normalization failures are returned unchanged so
// callers can inspect *phone.ParseError.
func (c Classifier) Classify(row types.StoredMessage) (Result, error) {
	sender, err := c.Normalizer.Normalize(row.Sender, c.Region)
	if err != nil {
		return Result{}, fmt.Errorf("normalizing sender: %w", err)
	}

	if row.SourceType == types.SourceSent || c.Senders.Contains(sender) {
		to, err := c.Normalizer.Normalize(row.ToAddress, c.Region)
		if err != nil {
			return Result{}, fmt.Errorf("normalizing recipient: %w", err)
		}
		return Result{Direction: types.DirectionSent, Sender: sender, Address: to}, nil
	}

	res := Result{Direction: types.DirectionReceived, Sender: sender, Address: sender}
	if !row.SourceType.Known() {
		res.Anomaly = AnomalyUnrecognizedSourceType
	}
	return res, nil
}
