package repomanager

import (
	"context"
	"database/sql"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/repositories/associations"
	"github.com/okatkov/lookbook/internal/server/repositories/comments"
	"github.com/okatkov/lookbook/internal/server/repositories/items"
	"github.com/okatkov/lookbook/internal/server/repositories/looks"
	"github.com/okatkov/lookbook/internal/server/repositories/posts"
	"github.com/okatkov/lookbook/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so a service
// can run the same repository code against the pool or against an open
// transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Looks(db dbx.DBTX) looks.Repository
	Items(db dbx.DBTX) items.Repository
	Comments(db dbx.DBTX) comments.Repository
	Associations(db dbx.DBTX) associations.Repository
}
