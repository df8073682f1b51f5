// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store reads rows from a Verizon Messages SQLite database.
// The database is opened read-only and is never modified.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/verizon2sms/pkg/types"
)

// DefaultPath returns where the Verizon Messages Windows app keeps its
// database under home.
func DefaultPath(home string) string {
	return filepath.Join(home, "AppData", "Local", "Packages",
		"VerizonWireless.VerizonMessages_40sg4y5zd4vfj",
		"LocalState", "Database", "Verizon.db")
}

const selectMessages = `SELECT CreatedOn, Sender, ToAddress, SourceType, Body, IsRead, IsLocked FROM Message`

// Store is an open, read-only message database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path. The file must already exist; SQLite
// would otherwise create an empty database in its place.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening message database: %w", err)
	}
	f.Close()

	dsn := (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening message database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to message database %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RowError reports a structurally invalid Message row. Row is 1-based in
// result order.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("message row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingCreatedOn  = errors.New("CreatedOn is NULL")
	ErrNegativeCreatedOn = errors.New("CreatedOn is negative")
)

// Messages returns every row of the Message table in the order SQLite
// yields them.
func (s *Store) Messages(ctx context.Context) ([]types.StoredMessage, error) {
	rows, err := s.db.QueryContext(ctx, selectMessages)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []types.StoredMessage
	for n := 1; rows.Next(); n++ {
		var (
			createdOn  sql.NullInt64
			sender     sql.NullString
			toAddress  sql.NullString
			sourceType sql.NullInt64
			body       sql.NullString
			isRead     sql.NullInt64
			isLocked   sql.NullInt64
		)
		if err := rows.Scan(&createdOn, &sender, &toAddress, &sourceType, &body, &isRead, &isLocked); err != nil {
			return nil, &RowError{Row: n, Err: err}
		}
		if !createdOn.Valid {
			return nil, &RowError{Row: n, Err: ErrMissingCreatedOn}
		}
		if createdOn.Int64 < 0 {
			return nil, &RowError{Row: n, Err: ErrNegativeCreatedOn}
		}

		msgs = append(msgs, types.StoredMessage{
			CreatedOn:  createdOn.Int64,
			Sender:     sender.String,
			ToAddress:  toAddress.String,
			SourceType: types.SourceType(sourceType.Int64),
			Body:       body.String,
			IsRead:     isRead.Int64,
			IsLocked:   isLocked.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading messages: %w", err)
	}
	return msgs, nil
}
