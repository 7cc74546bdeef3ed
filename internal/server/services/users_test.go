package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/passhash"
	"github.com/okatkov/lookbook/internal/server/models"
	associationsrepo "github.com/okatkov/lookbook/internal/server/repositories/associations"
	commentsrepo "github.com/okatkov/lookbook/internal/server/repositories/comments"
	itemsrepo "github.com/okatkov/lookbook/internal/server/repositories/items"
	looksrepo "github.com/okatkov/lookbook/internal/server/repositories/looks"
	postsrepo "github.com/okatkov/lookbook/internal/server/repositories/posts"
	usersrepo "github.com/okatkov/lookbook/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	uidOut string
	uidErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetUIDByAPIKey(ctx context.Context, apiKey string) (string, error) {
	if f.uidErr != nil {
		return "", f.uidErr
	}
	return f.uidOut, nil
}

type fakePostsRepo struct {
	createErr error
	created   []*models.Post

	getOut *models.Post
	getErr error

	listOut []models.Post
	listErr error

	updateOut int64
	updateErr error

	deleteOut   int64
	deleteErr   error
	deleteCalls int
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}
func (f *fakePostsRepo) GetByUID(ctx context.Context, postUID, userUID string) (*models.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakePostsRepo) ListByOwner(ctx context.Context, userUID string) ([]models.Post, error) {
	return f.listOut, f.listErr
}
func (f *fakePostsRepo) Update(ctx context.Context, p *models.Post, userUID string) (int64, error) {
	return f.updateOut, f.updateErr
}
func (f *fakePostsRepo) Delete(ctx context.Context, postUID string) (int64, error) {
	f.deleteCalls++
	return f.deleteOut, f.deleteErr
}

type fakeLooksRepo struct {
	createErr error
	created   []*models.Look

	getOut *models.Look
	getErr error

	deleteOut   int64
	deleteErr   error
	deleteCalls int
}

func (f *fakeLooksRepo) Create(ctx context.Context, l *models.Look) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, l)
	return nil
}
func (f *fakeLooksRepo) GetByUID(ctx context.Context, lookUID, userUID string) (*models.Look, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeLooksRepo) ListByOwner(ctx context.Context, userUID string) ([]models.Look, error) {
	return nil, nil
}
func (f *fakeLooksRepo) Update(ctx context.Context, l *models.Look, userUID string) (int64, error) {
	return 0, nil
}
func (f *fakeLooksRepo) Delete(ctx context.Context, lookUID string) (int64, error) {
	f.deleteCalls++
	return f.deleteOut, f.deleteErr
}

type fakeItemsRepo struct {
	createErr error
	created   []*models.Item

	deleteOut   int64
	deleteErr   error
	deleteCalls int
}

func (f *fakeItemsRepo) Create(ctx context.Context, i *models.Item) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, i)
	return nil
}
func (f *fakeItemsRepo) GetByUID(ctx context.Context, itemUID, lookUID string) (*models.Item, error) {
	return nil, common.ErrorNotFound
}
func (f *fakeItemsRepo) ListByOwner(ctx context.Context, lookUID string) ([]models.Item, error) {
	return nil, nil
}
func (f *fakeItemsRepo) Update(ctx context.Context, i *models.Item, lookUID string) (int64, error) {
	return 0, nil
}
func (f *fakeItemsRepo) Delete(ctx context.Context, itemUID string) (int64, error) {
	f.deleteCalls++
	return f.deleteOut, f.deleteErr
}

type fakeCommentsRepo struct {
	createErr error
	created   []*models.Comment

	deleteOut   int64
	deleteErr   error
	deleteCalls int
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	return nil
}
func (f *fakeCommentsRepo) GetByUID(ctx context.Context, commentUID string, owner models.CommentOwner) (*models.Comment, error) {
	return nil, common.ErrorNotFound
}
func (f *fakeCommentsRepo) ListByOwner(ctx context.Context, owner models.CommentOwner) ([]models.Comment, error) {
	return nil, nil
}
func (f *fakeCommentsRepo) Update(ctx context.Context, c *models.Comment, owner models.CommentOwner) (int64, error) {
	return 0, nil
}
func (f *fakeCommentsRepo) Delete(ctx context.Context, commentUID string) (int64, error) {
	f.deleteCalls++
	return f.deleteOut, f.deleteErr
}

type fakeAssociationsRepo struct {
	linkErr          error
	lastLinkedOwner  string
	lastLinkedOwned  string
	lastCommentOwner models.CommentOwner

	unlinkOut int64
	unlinkErr error
}

func (f *fakeAssociationsRepo) link(ownerUID, ownedUID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.lastLinkedOwner = ownerUID
	f.lastLinkedOwned = ownedUID
	return nil
}

func (f *fakeAssociationsRepo) LinkUserPost(ctx context.Context, userUID, postUID string) error {
	return f.link(userUID, postUID)
}
func (f *fakeAssociationsRepo) UnlinkUserPost(ctx context.Context, userUID, postUID string) (int64, error) {
	return f.unlinkOut, f.unlinkErr
}
func (f *fakeAssociationsRepo) LinkUserLook(ctx context.Context, userUID, lookUID string) error {
	return f.link(userUID, lookUID)
}
func (f *fakeAssociationsRepo) UnlinkUserLook(ctx context.Context, userUID, lookUID string) (int64, error) {
	return f.unlinkOut, f.unlinkErr
}
func (f *fakeAssociationsRepo) LinkLookItem(ctx context.Context, lookUID, itemUID string) error {
	return f.link(lookUID, itemUID)
}
func (f *fakeAssociationsRepo) UnlinkLookItem(ctx context.Context, lookUID, itemUID string) (int64, error) {
	return f.unlinkOut, f.unlinkErr
}
func (f *fakeAssociationsRepo) LinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) error {
	f.lastCommentOwner = owner
	return f.link(owner.UID, commentUID)
}
func (f *fakeAssociationsRepo) UnlinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) (int64, error) {
	return f.unlinkOut, f.unlinkErr
}

type fakeRepoManager struct {
	users    *fakeUsersRepo
	posts    *fakePostsRepo
	looks    *fakeLooksRepo
	items    *fakeItemsRepo
	comments *fakeCommentsRepo
	assoc    *fakeAssociationsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error          { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository               { return m.users }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository               { return m.posts }
func (m *fakeRepoManager) Looks(db dbx.DBTX) looksrepo.Repository               { return m.looks }
func (m *fakeRepoManager) Items(db dbx.DBTX) itemsrepo.Repository               { return m.items }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository         { return m.comments }
func (m *fakeRepoManager) Associations(db dbx.DBTX) associationsrepo.Repository { return m.assoc }

// --- tests ---

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{}}
	s := NewUserService(db, rm)

	u, err := s.Register(context.Background(), "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.UID == "" || u.APIKey == "" {
		t.Fatalf("missing uid or api key: %+v", u)
	}
	if u.UID == u.APIKey {
		t.Fatalf("uid and api key must differ")
	}
	if u.Status != statusActive {
		t.Fatalf("expected active status, got %d", u.Status)
	}
	if !passhash.Verify(u.PasswordHash, "secret") {
		t.Fatalf("stored hash does not verify")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{createErr: common.ErrDuplicateEmail}}
	s := NewUserService(db, rm)

	_, err := s.Register(context.Background(), "alice", "alice@example.com", "secret")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("want common.ErrDuplicateEmail, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := passhash.Hash("secret")
	if err != nil {
		t.Fatalf("passhash.Hash error: %v", err)
	}
	rm := &fakeRepoManager{users: &fakeUsersRepo{
		getOut: &models.User{UID: "u-1", Email: "alice@example.com", PasswordHash: hash, APIKey: "key-1"},
	}}
	s := NewUserService(db, rm)

	u, err := s.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.UID != "u-1" || u.APIKey != "key-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := passhash.Hash("secret")
	if err != nil {
		t.Fatalf("passhash.Hash error: %v", err)
	}
	rm := &fakeRepoManager{users: &fakeUsersRepo{
		getOut: &models.User{UID: "u-1", PasswordHash: hash},
	}}
	s := NewUserService(db, rm)

	_, err = s.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, common.ErrBadCredentials) {
		t.Fatalf("want common.ErrBadCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	s := NewUserService(db, rm)

	_, err := s.Login(context.Background(), "ghost@example.com", "secret")
	if !errors.Is(err, common.ErrBadCredentials) {
		t.Fatalf("want common.ErrBadCredentials, got %v", err)
	}
}
