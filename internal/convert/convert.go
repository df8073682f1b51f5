// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one Verizon Messages to SMS Backup conversion: it
// loads contacts, reads every stored message, assembles the records in row
// order and writes the finished document.
package convert

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/verizon2sms/internal/backup"
	"github.com/pdiddy/verizon2sms/internal/classify"
	"github.com/pdiddy/verizon2sms/internal/contacts"
	"github.com/pdiddy/verizon2sms/internal/logging"
	"github.com/pdiddy/verizon2sms/internal/phone"
	"github.com/pdiddy/verizon2sms/internal/record"
	"github.com/pdiddy/verizon2sms/pkg/types"
)

// Source yields stored message rows. *store.Store implements it.
type Source interface {
	Messages(ctx context.Context) ([]types.StoredMessage, error)
}

// Options configures a conversion run.
type Options struct {
	// Normalizer is the phone strategy; nil selects phone.LibNormalizer.
	Normalizer phone.Normalizer

	// Region interprets national-format numbers. Empty requires numbers to
	// carry a country code.
	Region string

	// Senders are raw numbers always treated as the message owner.
	Senders []string

	// ContactsPath names an optional contacts file. Empty disables
	// contact_name.
	ContactsPath string

	// Location formats readable dates; nil means time.Local.
	Location *time.Location

	// Version is written into the preamble comment.
	Version string

	Builder backup.Builder
	Log     logging.Sink
}

// Summary counts the records of a finished run.
type Summary struct {
	Records  int
	Sent     int
	Received int
	Warnings int
}

// Run converts every row from src and writes the backup document to w. The
// document is written in one call after all rows were assembled; on error
// nothing is written.
func Run(ctx context.Context, src Source, opts Options, w io.Writer) (Summary, error) {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	norm := opts.Normalizer
	if norm == nil {
		norm = phone.LibNormalizer{}
	}

	var table *contacts.Table
	if opts.ContactsPath != "" {
		t, err := contacts.LoadFile(opts.ContactsPath, norm, opts.Region)
		if err != nil {
			return Summary{}, err
		}
		log.Debug("Loaded contacts", zap.Int("count", t.Len()), zap.String("path", opts.ContactsPath))
		table = t
	}

	var senders classify.SenderSet
	if len(opts.Senders) > 0 {
		nums, err := phone.NormalizeAll(norm, opts.Senders, opts.Region)
		if err != nil {
			return Summary{}, fmt.Errorf("normalizing senders: %w", err)
		}
		senders = classify.NewSenderSet(nums...)
	}

	rows, err := src.Messages(ctx)
	if err != nil {
		return Summary{}, err
	}

	asm := record.Assembler{
		Classifier: classify.Classifier{Normalizer: norm, Region: opts.Region, Senders: senders},
		Contacts:   table,
		Location:   opts.Location,
		Log:        log,
	}

	var summary Summary
	records := make([]types.Record, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		res, err := asm.Assemble(row)
		if err != nil {
			return Summary{}, fmt.Errorf("message %d: %w", i+1, err)
		}
		records = append(records, res.Record)
		summary.Warnings += len(res.Anomalies)
		if res.Record.Type == types.DirectionSent {
			summary.Sent++
		} else {
			summary.Received++
		}
	}
	summary.Records = len(records)

	doc := opts.Builder.Build(records)
	created := time.UnixMilli(doc.BackupDate)
	if opts.Location != nil {
		created = created.In(opts.Location)
	}
	if err := doc.Write(w, backup.Preamble{Version: opts.Version, Created: created}); err != nil {
		return Summary{}, err
	}

	log.Info("Wrote SMS backup",
		zap.Int("records", summary.Records),
		zap.Int("sent", summary.Sent),
		zap.Int("received", summary.Received),
		zap.Int("warnings", summary.Warnings))
	return summary, nil
}
