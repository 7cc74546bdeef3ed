package models

import "time"

// CommentKind distinguishes top-level comments from answers in a thread.
type CommentKind int

const (
	CommentKindComment CommentKind = iota
	CommentKindAnswer
)

// OwnerKind selects which entity a comment hangs off.
type OwnerKind int

const (
	OwnerPost OwnerKind = iota
	OwnerLook
)

// CommentOwner is the tagged variant naming the entity that owns a comment.
// It is resolved exactly once, at the repository boundary, into a concrete
// association table (post_comments or look_comments).
type CommentOwner struct {
	Kind OwnerKind
	UID  string
}

// PostOwner returns a CommentOwner referring to a post.
func PostOwner(uid string) CommentOwner {
	return CommentOwner{Kind: OwnerPost, UID: uid}
}

// LookOwner returns a CommentOwner referring to a look.
func LookOwner(uid string) CommentOwner {
	return CommentOwner{Kind: OwnerLook, UID: uid}
}

// Comment belongs to exactly one post or look, tracked via the
// kind-specific association table.
type Comment struct {
	ID        int64
	UID       string
	Kind      CommentKind
	Content   string
	NumLikes  int
	UpdatedAt time.Time
	CreatedAt time.Time
}
