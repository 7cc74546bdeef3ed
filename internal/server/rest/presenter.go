package rest

import (
	"time"

	"github.com/okatkov/lookbook/internal/server/models"
)

// envelope is the JSON wrapper every response carries.
type envelope struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	Parameters []any  `json:"parameters"`
}

func okEnvelope(message string) envelope {
	return envelope{Error: false, Message: message, Parameters: []any{}}
}

func errEnvelope(message string) envelope {
	return envelope{Error: true, Message: message, Parameters: []any{}}
}

type userPayload struct {
	envelope
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	Birthday  string    `json:"birthday"`
	Location  string    `json:"location"`
	About     string    `json:"about"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

type postPayload struct {
	UID         string    `json:"uid"`
	Content     string    `json:"content"`
	Privacy     int       `json:"privacy"`
	NumLikes    int       `json:"num_likes"`
	NumComments int       `json:"num_comments"`
	NumShares   int       `json:"num_shares"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func presentPost(p *models.Post) postPayload {
	return postPayload{
		UID:         p.UID,
		Content:     p.Content,
		Privacy:     int(p.Privacy),
		NumLikes:    p.NumLikes,
		NumComments: p.NumComments,
		NumShares:   p.NumShares,
		UpdatedAt:   p.UpdatedAt,
		CreatedAt:   p.CreatedAt,
	}
}

type lookPayload struct {
	UID         string    `json:"uid"`
	Title       string    `json:"title"`
	Privacy     int       `json:"privacy"`
	NumItems    int       `json:"num_items"`
	NumLikes    int       `json:"num_likes"`
	NumComments int       `json:"num_comments"`
	NumShares   int       `json:"num_shares"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func presentLook(l *models.Look) lookPayload {
	return lookPayload{
		UID:         l.UID,
		Title:       l.Title,
		Privacy:     int(l.Privacy),
		NumItems:    l.NumItems,
		NumLikes:    l.NumLikes,
		NumComments: l.NumComments,
		NumShares:   l.NumShares,
		UpdatedAt:   l.UpdatedAt,
		CreatedAt:   l.CreatedAt,
	}
}

type itemPayload struct {
	UID       string    `json:"uid"`
	Title     string    `json:"title"`
	Images    []string  `json:"images"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

func presentItem(i *models.Item) itemPayload {
	return itemPayload{
		UID:       i.UID,
		Title:     i.Title,
		Images:    i.Images,
		UpdatedAt: i.UpdatedAt,
		CreatedAt: i.CreatedAt,
	}
}

type commentPayload struct {
	UID       string    `json:"uid"`
	Kind      int       `json:"kind"`
	Content   string    `json:"content"`
	NumLikes  int       `json:"num_likes"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

func presentComment(c *models.Comment) commentPayload {
	return commentPayload{
		UID:       c.UID,
		Kind:      int(c.Kind),
		Content:   c.Content,
		NumLikes:  c.NumLikes,
		UpdatedAt: c.UpdatedAt,
		CreatedAt: c.CreatedAt,
	}
}
