package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func itemColumns() []string {
	return []string{"id", "uid", "title", "images", "updated_at", "created_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+items\s*\(uid,\s*title,\s*images\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(3))
	mock.ExpectQuery(q).
		WithArgs("i-1", "scarf", []byte(`["a.jpg","b.jpg"]`)).
		WillReturnRows(rows)

	item := &models.Item{UID: "i-1", Title: "scarf", Images: []string{"a.jpg", "b.jpg"}}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.ID != 3 {
		t.Fatalf("unexpected item id: %d", item.ID)
	}
}

func TestCreate_NilImages(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+items`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(4))
	mock.ExpectQuery(q).
		WithArgs("i-2", "hat", []byte(`[]`)).
		WillReturnRows(rows)

	item := &models.Item{UID: "i-2", Title: "hat"}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByUID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+items\s+i\s+JOIN\s+look_items\s+li\s+ON\s+li\.item_uid\s*=\s*i\.uid\s+WHERE\s+i\.uid\s*=\s*\$1\s+AND\s+li\.look_uid\s*=\s*\$2\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(itemColumns()).
		AddRow(int64(3), "i-1", "scarf", []byte(`["a.jpg"]`), now, now)
	mock.ExpectQuery(q).
		WithArgs("i-1", "l-1").
		WillReturnRows(rows)

	got, err := repo.GetByUID(context.Background(), "i-1", "l-1")
	if err != nil {
		t.Fatalf("GetByUID error: %v", err)
	}
	if got.Title != "scarf" || len(got.Images) != 1 || got.Images[0] != "a.jpg" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestGetByUID_WrongLook(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+items\s+i\s+JOIN\s+look_items`

	mock.ExpectQuery(q).
		WithArgs("i-1", "l-other").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUID(context.Background(), "i-1", "l-other")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+items\s+i\s+JOIN\s+look_items\s+li\s+ON\s+li\.item_uid\s*=\s*i\.uid\s+WHERE\s+li\.look_uid\s*=\s*\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(itemColumns()).
		AddRow(int64(1), "i-1", "scarf", []byte(`[]`), now, now).
		AddRow(int64(2), "i-2", "hat", []byte(`["h.jpg"]`), now, now)
	mock.ExpectQuery(q).
		WithArgs("l-1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "l-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[1].Images[0] != "h.jpg" {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestUpdate_Owned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+items\s+i\s+SET\s+.*\s+FROM\s+look_items\s+li\s+WHERE\s+i\.uid\s*=\s*\$3\s+AND\s+li\.item_uid\s*=\s*i\.uid\s+AND\s+li\.look_uid\s*=\s*\$4\s*$`

	mock.ExpectExec(q).
		WithArgs("beanie", []byte(`[]`), "i-1", "l-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.Item{UID: "i-1", Title: "beanie"}
	affected, err := repo.Update(context.Background(), item, "l-1")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+items\s+WHERE\s+uid\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), "i-1")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}
}
