package models

import "time"

// Item belongs to exactly one look via the look_items association table.
// An item whose look is gone is unreachable.
type Item struct {
	ID        int64
	UID       string
	Title     string
	Images    []string
	UpdatedAt time.Time
	CreatedAt time.Time
}
