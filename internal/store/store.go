// Package store persists estimates and the admin-editable benchmark table
// in sqlite.
package store

import "database/sql"

// Store wraps the sqlite database with estimate and benchmark queries.
type Store struct {
	db *sql.DB
}

// New returns a Store over an opened database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
