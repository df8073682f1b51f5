// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceType is the direction code stored in the Message.SourceType column.
type SourceType int

const (
	SourceReceived SourceType = 2
	SourceSent     SourceType = 3
)

// Known reports whether t is one of the direction codes the store is known
// to use.
func (t SourceType) Known() bool {
	return t == SourceReceived || t == SourceSent
}

// StoredMessage is one row of the Verizon Messages Message table.
type StoredMessage struct {
	// CreatedOn counts 100-nanosecond ticks since midnight 0000-01-01.
	CreatedOn int64

	// Sender and ToAddress are free-form phone numbers as typed or received.
	Sender    string
	ToAddress string

	SourceType SourceType
	Body       string
	IsRead     int64
	IsLocked   int64
}

// Direction is the SMS Backup "type" attribute of a record.
type Direction string

const (
	DirectionReceived Direction = "1"
	DirectionSent     Direction = "2"
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionReceived:
		return "received"
	case DirectionSent:
		return "sent"
	default:
		return "unknown"
	}
}

// Constant attribute values of the SMS Backup schema.
const (
	NullMarker     = "null"
	UnknownContact = "(Unknown)"
	protocolSMS    = "0"
	statusNone     = "-1"
)

// Attr is a single name/value attribute of an sms element.
type Attr struct {
	Name  string
	Value string
}

// Record is one sms element of an SMS Backup document. Every value is kept
// as the string that is written to the document.
type Record struct {
	Address      string
	Date         string
	Type         Direction
	Body         string
	Read         string
	Locked       string
	ReadableDate string

	// ContactName is nil when contact resolution is disabled, in which case
	// the contact_name attribute is omitted.
	ContactName *string
}

// Attrs returns the record's attributes in document order.
func (r Record) Attrs() []Attr {
	attrs := []Attr{
		{"protocol", protocolSMS},
		{"address", r.Address},
		{"date", r.Date},
		{"type", string(r.Type)},
		{"subject", NullMarker},
		{"body", r.Body},
		{"toa", NullMarker},
		{"sc_toa", NullMarker},
		{"service_center", NullMarker},
		{"read", r.Read},
		{"status", statusNone},
		{"locked", r.Locked},
		{"date_sent", r.Date},
		{"readable_date", r.ReadableDate},
	}
	if r.ContactName != nil {
		attrs = append(attrs, Attr{"contact_name", *r.ContactName})
	}
	return attrs
}
