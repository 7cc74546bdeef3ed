package models

import "time"

// Privacy controls who can see a post or look.
type Privacy int

const (
	PrivacyPublic Privacy = iota
	PrivacyPrivate
	PrivacyFriends
)

// Post is a piece of user-published content. Its owner is tracked solely
// through the user_posts association table.
type Post struct {
	ID          int64
	UID         string
	Content     string
	Privacy     Privacy
	NumLikes    int
	NumComments int
	NumShares   int
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
