package services

import (
	"context"
	"testing"

	"github.com/okatkov/lookbook/internal/server/models"
)

func TestCommentCreate_LookOwner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	comments := &fakeCommentsRepo{}
	assoc := &fakeAssociationsRepo{}
	rm := &fakeRepoManager{comments: comments, assoc: assoc}
	s := NewCommentService(db, rm)

	c := &models.Comment{Kind: models.CommentKindComment, Content: "nice"}
	uid, err := s.Create(context.Background(), models.LookOwner("l-1"), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if uid == "" || len(comments.created) != 1 {
		t.Fatalf("comment not created: uid=%q created=%d", uid, len(comments.created))
	}
	if assoc.lastCommentOwner.Kind != models.OwnerLook || assoc.lastCommentOwner.UID != "l-1" {
		t.Fatalf("unexpected owner: %+v", assoc.lastCommentOwner)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCommentCreate_PostOwner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	comments := &fakeCommentsRepo{}
	assoc := &fakeAssociationsRepo{}
	rm := &fakeRepoManager{comments: comments, assoc: assoc}
	s := NewCommentService(db, rm)

	c := &models.Comment{Kind: models.CommentKindAnswer, Content: "reply"}
	uid, err := s.Create(context.Background(), models.PostOwner("p-1"), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if assoc.lastCommentOwner.Kind != models.OwnerPost || assoc.lastLinkedOwned != uid {
		t.Fatalf("unexpected link: owner=%+v owned=%q", assoc.lastCommentOwner, assoc.lastLinkedOwned)
	}
}

func TestCommentDelete_WrongOwner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	comments := &fakeCommentsRepo{}
	assoc := &fakeAssociationsRepo{unlinkOut: 0}
	rm := &fakeRepoManager{comments: comments, assoc: assoc}
	s := NewCommentService(db, rm)

	affected, err := s.Delete(context.Background(), models.PostOwner("p-other"), "c-1")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if affected != 0 || comments.deleteCalls != 0 {
		t.Fatalf("comment row must stay: affected=%d deletes=%d", affected, comments.deleteCalls)
	}
}

func TestCommentDelete_Owned(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	comments := &fakeCommentsRepo{deleteOut: 1}
	assoc := &fakeAssociationsRepo{unlinkOut: 1}
	rm := &fakeRepoManager{comments: comments, assoc: assoc}
	s := NewCommentService(db, rm)

	affected, err := s.Delete(context.Background(), models.LookOwner("l-1"), "c-1")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if affected != 1 || comments.deleteCalls != 1 {
		t.Fatalf("expected comment removal: affected=%d deletes=%d", affected, comments.deleteCalls)
	}
}
