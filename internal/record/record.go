// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record assembles SMS Backup records from stored message rows.
package record

import (
	"strconv"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/verizon2sms/internal/classify"
	"github.com/pdiddy/verizon2sms/internal/contacts"
	"github.com/pdiddy/verizon2sms/internal/logging"
	"github.com/pdiddy/verizon2sms/internal/ticks"
	"github.com/pdiddy/verizon2sms/pkg/types"
)

// Anomaly is a recoverable problem found while assembling a record. Each
// one is also reported as a warning.
type Anomaly string

const (
	AnomalyUnrecognizedSourceType Anomaly = "unrecognized_source_type"
	AnomalyUnknownContact         Anomaly = "unknown_contact"
)

// Result is an assembled record plus the anomalies found on the way.
type Result struct {
	Record    types.Record
	Anomalies []Anomaly
}

// Assembler turns rows into records. Contacts may be nil, which disables
// contact_name. Location formats readable_date; nil means time.Local.
type Assembler struct {
	Classifier classify.Classifier
	Contacts   *contacts.Table
	Location   *time.Location
	Log        logging.Sink
}

// Assemble builds the record for one row. The only error is a phone number
// that cannot be normalized.
func (a Assembler) Assemble(row types.StoredMessage) (Result, error) {
	log := a.Log
	if log == nil {
		log = logging.Nop()
	}

	cls, err := a.Classifier.Classify(row)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if cls.Anomaly == classify.AnomalyUnrecognizedSourceType {
		log.Warn("Unrecognized SourceType", zap.Int("source_type", int(row.SourceType)))
		res.Anomalies = append(res.Anomalies, AnomalyUnrecognizedSourceType)
	}

	if !xmlSafe(row.Body) {
		log.Debug("Body contains characters not allowed in XML, writing them as U+FFFD",
			zap.Int64("created_on", row.CreatedOn))
	}

	ms := ticks.ToUnixMilli(row.CreatedOn)
	date := strconv.FormatInt(ms, 10)
	res.Record = types.Record{
		Address:      cls.Address,
		Date:         date,
		Type:         cls.Direction,
		Body:         row.Body,
		Read:         strconv.FormatInt(row.IsRead, 10),
		Locked:       strconv.FormatInt(row.IsLocked, 10),
		ReadableDate: ticks.ReadableDate(ms, a.Location),
	}

	if a.Contacts != nil {
		name, ok := a.Contacts.Resolve(cls.Address)
		if !ok {
			log.Warn(cls.Address + " did not match any contacts")
			res.Anomalies = append(res.Anomalies, AnomalyUnknownContact)
			name = types.UnknownContact
		}
		res.Record.ContactName = &name
	}

	return res, nil
}

// xmlSafe reports whether s is valid UTF-8 made only of XML 1.0 characters.
// The document writer replaces anything else with U+FFFD.
func xmlSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
