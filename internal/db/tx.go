package db

import (
	"database/sql"
)

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// NullFloat64ToPtr converts a sql.NullFloat64 to *float64.
// Returns nil if the value is not valid.
func NullFloat64ToPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return &n.Float64
}

// PtrToNullFloat64 converts a *float64 to sql.NullFloat64.
// A nil pointer maps to the SQL NULL.
func PtrToNullFloat64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// NullStringValue returns the string value or empty string if not valid.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

// EmptyToNullString maps "" to the SQL NULL and anything else to a valid string.
func EmptyToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
