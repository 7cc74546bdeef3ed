package models

import "time"

// Look is a curated collection of items. Its owner is tracked solely
// through the user_looks association table.
type Look struct {
	ID          int64
	UID         string
	Title       string
	Privacy     Privacy
	NumItems    int
	NumLikes    int
	NumComments int
	NumShares   int
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
