// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backup builds and serializes SMS Backup & Restore documents.
//
// The output mirrors what the Android app writes: a fixed three-line
// preamble followed by a compact smses element holding one self-closing sms
// element per message.
package backup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/verizon2sms/pkg/types"
)

// Generator names the program in the preamble comment.
const Generator = "verizon2sms"

// commentDateLayout matches the C locale "%x %X" rendering.
const commentDateLayout = "01/02/06 15:04:05"

// Document is a complete backup ready to be written.
type Document struct {
	BackupSet  string
	BackupDate int64
	Records    []types.Record
}

// Count returns the number of sms elements.
func (d *Document) Count() int {
	return len(d.Records)
}

// Builder creates Documents. Zero-value fields fall back to the wall clock
// and random UUIDs.
type Builder struct {
	Now   func() time.Time
	NewID func() string
}

// Build wraps records, in order, in a new Document stamped with a fresh
// backup set and the current time.
func (b Builder) Build(records []types.Record) *Document {
	now := b.Now
	if now == nil {
		now = time.Now
	}
	newID := b.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Document{
		BackupSet:  newID(),
		BackupDate: now().UnixMilli(),
		Records:    records,
	}
}

// Preamble parameterizes the generator comment.
type Preamble struct {
	Version string
	Created time.Time
}

// Render serializes the preamble and document as UTF-8.
func (d *Document) Render(p Preamble) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>\n")
	fmt.Fprintf(&buf, "<!--File Created By %s %s on %s -->\n", Generator, p.Version, p.Created.Format(commentDateLayout))
	buf.WriteString("<?xml-stylesheet type=\"text/xsl\" href=\"sms.xsl\"?>\n")

	buf.WriteString("<smses")
	root := []types.Attr{
		{Name: "count", Value: strconv.Itoa(d.Count())},
		{Name: "backup_set", Value: d.BackupSet},
		{Name: "backup_date", Value: strconv.FormatInt(d.BackupDate, 10)},
	}
	if err := writeAttrs(&buf, root); err != nil {
		return nil, err
	}
	if d.Count() == 0 {
		buf.WriteString(" />")
		return buf.Bytes(), nil
	}
	buf.WriteByte('>')

	for i, r := range d.Records {
		buf.WriteString("<sms")
		if err := writeAttrs(&buf, r.Attrs()); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		buf.WriteString(" />")
	}
	buf.WriteString("</smses>")
	return buf.Bytes(), nil
}

// Write renders the document and writes it to w in a single call, so a
// rendering failure leaves w untouched.
func (d *Document) Write(w io.Writer, p Preamble) error {
	data, err := d.Render(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

func writeAttrs(buf *bytes.Buffer, attrs []types.Attr) error {
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return fmt.Errorf("escaping %s: %w", a.Name, err)
		}
		buf.WriteByte('"')
	}
	return nil
}
