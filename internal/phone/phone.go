// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phone normalizes phone numbers to E.164 and guesses the default
// region used to interpret national-format numbers.
//
// Two strategies implement Normalizer: LibNormalizer parses numbers with the
// libphonenumber metadata, DigitsNormalizer strips everything but digits.
// The strategy is chosen once with New and passed to every caller.
package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Mode names a normalization strategy.
type Mode string

const (
	ModeLibphonenumber Mode = "libphonenumber"
	ModeDigits         Mode = "digits"
)

// Normalizer converts a free-form phone number into canonical E.164 form.
// region is an ISO 3166 region code used for national-format numbers; an
// empty region requires the number to carry its own country code.
type Normalizer interface {
	Normalize(raw, region string) (string, error)
}

// New returns the Normalizer for mode. An empty mode selects
// ModeLibphonenumber.
func New(mode Mode) (Normalizer, error) {
	switch mode {
	case ModeLibphonenumber, "":
		return LibNormalizer{}, nil
	case ModeDigits:
		return DigitsNormalizer{}, nil
	default:
		return nil, fmt.Errorf("unsupported phone parser %q: use %s or %s", mode, ModeLibphonenumber, ModeDigits)
	}
}

// ParseError reports a number that could not be interpreted for a region.
type ParseError struct {
	Input  string
	Region string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Region == "" {
		return fmt.Sprintf("parsing phone number %q (no region): %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parsing phone number %q for region %s: %v", e.Input, e.Region, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LibNormalizer parses numbers against the region's dialing plan. Numbers
// that parse are formatted as E.164 without a validity check, so carrier
// short codes survive normalization.
type LibNormalizer struct{}

// Normalize implements Normalizer.
func (LibNormalizer) Normalize(raw, region string) (string, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", &ParseError{Input: raw, Region: region, Err: err}
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

var nonDigits = regexp.MustCompile(`[^0-9]+`)

// DigitsNormalizer is the best-effort fallback: it keeps the digits, adds
// the NANP country code to ten-digit US numbers and prefixes "+". It never
// fails and does not know any other region's conventions.
type DigitsNormalizer struct{}

// Normalize implements Normalizer.
func (DigitsNormalizer) Normalize(raw, region string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) == 10 && region == "US" {
		digits = "1" + digits
	}
	return "+" + digits, nil
}

// NormalizeAll normalizes each number in raw, returning the first failure.
func NormalizeAll(n Normalizer, raw []string, region string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		norm, err := n.Normalize(strings.TrimSpace(r), region)
		if err != nil {
			return nil, err
		}
		out = append(out, norm)
	}
	return out, nil
}
