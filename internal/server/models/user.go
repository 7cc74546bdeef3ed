// Package models defines the persisted entities of the lookbook server.
//
// Every entity carries two identifiers: ID is the internal sequential row
// number used only for primary-key joins, and UID is the public opaque
// identifier used in all external references and association tables.
package models

import "time"

// User is a registered account. Email and APIKey are unique across all
// users; the API key is the long-lived credential resolved by the
// authentication gate.
type User struct {
	ID           int64
	UID          string
	Name         string
	Email        string
	PasswordHash string
	APIKey       string
	Status       int
	Birthday     string
	Location     string
	About        string
	UpdatedAt    time.Time
	CreatedAt    time.Time
}
