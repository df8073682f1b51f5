// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		want    Normalizer
		wantErr bool
	}{
		{"default is libphonenumber", "", LibNormalizer{}, false},
		{"libphonenumber", ModeLibphonenumber, LibNormalizer{}, false},
		{"digits", ModeDigits, DigitsNormalizer{}, false},
		{"unknown", Mode("regex"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported phone parser")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLibNormalizer(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{"US national with punctuation", "(202) 555-0143", "US", "+12025550143"},
		{"US national digits only", "2025550143", "US", "+12025550143"},
		{"US with trunk prefix", "1-202-555-0143", "US", "+12025550143"},
		{"international without region", "+44 20 7946 0958", "", "+442079460958"},
		{"GB national", "020 7946 0958", "GB", "+442079460958"},
		{"international ignores region", "+33 1 23 45 67 89", "US", "+33123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LibNormalizer{}.Normalize(tt.raw, tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLibNormalizerErrors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
	}{
		{"national number without region", "2025550143", ""},
		{"not a number", "hello", "US"},
		{"empty", "", "US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LibNormalizer{}.Normalize(tt.raw, tt.region)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "error should be a *ParseError")
			assert.Equal(t, tt.raw, perr.Input)
			assert.Equal(t, tt.region, perr.Region)
			assert.NotNil(t, perr.Unwrap())
		})
	}
}

func TestDigitsNormalizer(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{"US ten digits", "(555) 123-4567", "US", "+15551234567"},
		{"US eleven digits", "1 555 123 4567", "US", "+15551234567"},
		{"ten digits without region", "555.123.4567", "", "+5551234567"},
		{"ten digits other region", "0207 946 0958", "GB", "+02079460958"},
		{"already international", "+44 20 7946 0958", "GB", "+442079460958"},
		{"short code", "22395", "US", "+22395"},
		{"empty", "", "US", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DigitsNormalizer{}.Normalize(tt.raw, tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	canonical := []string{"+12025550143", "+15551234567", "+442079460958", "+33123456789", "+61291234567"}

	for _, n := range []Normalizer{LibNormalizer{}, DigitsNormalizer{}} {
		for _, region := range []string{"", "US", "GB"} {
			for _, num := range canonical {
				got, err := n.Normalize(num, region)
				require.NoError(t, err)
				assert.Equal(t, num, got, "%T region=%q", n, region)
			}
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got, err := NormalizeAll(DigitsNormalizer{}, []string{" 555-123-4567 ", "+442079460958"}, "US")
	require.NoError(t, err)
	assert.Equal(t, []string{"+15551234567", "+442079460958"}, got)

	_, err = NormalizeAll(LibNormalizer{}, []string{"+12025550143", "2025550143"}, "")
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
