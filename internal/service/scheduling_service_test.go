package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	ops *[]string

	created   *models.Post
	createErr error
	byID      map[string]*models.Post
	listed    []*models.Post
}

func (f *fakePostRepo) Create(ctx context.Context, tx *sql.Tx, post *models.Post) error {
	*f.ops = append(*f.ops, "post.create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, bool, error) {
	post, ok := f.byID[id]
	return post, ok, nil
}

func (f *fakePostRepo) ListScheduledByUserID(ctx context.Context, userID string) ([]*models.Post, error) {
	return f.listed, nil
}

func (f *fakePostRepo) UpdateContent(ctx context.Context, tx *sql.Tx, id, content, platform string) error {
	*f.ops = append(*f.ops, "post.update")
	return nil
}

func (f *fakePostRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error {
	return nil
}

func (f *fakePostRepo) Remove(ctx context.Context, tx *sql.Tx, id string) error {
	*f.ops = append(*f.ops, "post.remove")
	return nil
}

type fakeScheduledPostRepo struct {
	ops *[]string

	created   *models.ScheduledPost
	createErr error
	byID      map[string]*models.ScheduledPost
	owners    map[string]string
	byPostIDs []*models.ScheduledPost
}

func (f *fakeScheduledPostRepo) Create(ctx context.Context, tx *sql.Tx, sp *models.ScheduledPost) error {
	*f.ops = append(*f.ops, "scheduled.create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = sp
	return nil
}

func (f *fakeScheduledPostRepo) GetByID(ctx context.Context, id string) (*models.ScheduledPost, bool, error) {
	sp, ok := f.byID[id]
	return sp, ok, nil
}

func (f *fakeScheduledPostRepo) CheckOwner(ctx context.Context, id, userID string) (bool, error) {
	return f.owners[id] == userID, nil
}

func (f *fakeScheduledPostRepo) ListByPostIDs(ctx context.Context, postIDs []string) ([]*models.ScheduledPost, error) {
	return f.byPostIDs, nil
}

func (f *fakeScheduledPostRepo) ListDuePending(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error) {
	return nil, nil
}

func (f *fakeScheduledPostRepo) Update(ctx context.Context, tx *sql.Tx, id string, platform string, scheduledTime *time.Time, status string) error {
	*f.ops = append(*f.ops, "scheduled.update")
	return nil
}

func (f *fakeScheduledPostRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error {
	return nil
}

func (f *fakeScheduledPostRepo) Remove(ctx context.Context, tx *sql.Tx, id string) error {
	*f.ops = append(*f.ops, "scheduled.remove")
	return nil
}

func newSchedulingFixture(t *testing.T) (SchedulingService, sqlmock.Sqlmock, *fakePostRepo, *fakeScheduledPostRepo, *[]string) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ops := &[]string{}
	pr := &fakePostRepo{ops: ops, byID: map[string]*models.Post{}}
	sp := &fakeScheduledPostRepo{ops: ops, byID: map[string]*models.ScheduledPost{}, owners: map[string]string{}}

	return NewSchedulingService(db, pr, sp), mock, pr, sp, ops
}

func TestSchedulingService_Create(t *testing.T) {
	s, mock, pr, sp, _ := newSchedulingFixture(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	future := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)
	created, delay, err := s.Create(context.Background(), "u1", &transfer.ScheduledPostCreation{
		Content:       "hello world",
		Platform:      "twitter",
		ScheduledTime: future,
		ImageURL:      "https://cdn.example.com/pic.png",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, pr.created)
	require.NotNil(t, sp.created)

	assert.Equal(t, "u1", pr.created.UserID)
	assert.Equal(t, models.PostStatusScheduled, pr.created.Status)
	assert.True(t, pr.created.ImageURL.Valid)
	assert.Equal(t, pr.created.ID, sp.created.PostID)
	assert.Equal(t, models.ScheduleStatusPending, sp.created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Same(t, pr.created, created.Post)
	assert.Greater(t, delay, time.Hour)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulingService_Create_PastTimeClampsDelay(t *testing.T) {
	s, mock, _, _, _ := newSchedulingFixture(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	_, delay, err := s.Create(context.Background(), "u1", &transfer.ScheduledPostCreation{
		Content:       "late",
		Platform:      "twitter",
		ScheduledTime: past,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), delay)
}

func TestSchedulingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		sc   *transfer.ScheduledPostCreation
	}{
		{name: "nil request", sc: nil},
		{name: "missing content", sc: &transfer.ScheduledPostCreation{Platform: "twitter", ScheduledTime: "2026-09-01T10:00:00Z"}},
		{name: "missing platform", sc: &transfer.ScheduledPostCreation{Content: "x", ScheduledTime: "2026-09-01T10:00:00Z"}},
		{name: "bad time format", sc: &transfer.ScheduledPostCreation{Content: "x", Platform: "twitter", ScheduledTime: "tomorrow at noon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, _, _, ops := newSchedulingFixture(t)

			_, _, err := s.Create(context.Background(), "u1", tt.sc)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Empty(t, *ops, "no writes should happen on invalid input")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSchedulingService_Create_RollsBackOnChildFailure(t *testing.T) {
	s, mock, _, sp, _ := newSchedulingFixture(t)
	sp.createErr = errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, _, err := s.Create(context.Background(), "u1", &transfer.ScheduledPostCreation{
		Content:       "hello",
		Platform:      "twitter",
		ScheduledTime: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulingService_Get_ScopedToOwner(t *testing.T) {
	s, _, pr, sp, _ := newSchedulingFixture(t)

	post := &models.Post{ID: "p1", UserID: "u1", Content: "hi"}
	pr.byID["p1"] = post
	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1"}
	sp.owners["sp1"] = "u1"

	t.Run("owner sees the row with its post attached", func(t *testing.T) {
		got, err := s.Get(context.Background(), "u1", "sp1")
		require.NoError(t, err)
		assert.Same(t, post, got.Post)
	})

	t.Run("someone else's id reads as not found", func(t *testing.T) {
		_, err := s.Get(context.Background(), "u2", "sp1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown id reads as not found", func(t *testing.T) {
		_, err := s.Get(context.Background(), "u1", "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestSchedulingService_Update(t *testing.T) {
	s, mock, _, sp, ops := newSchedulingFixture(t)

	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1", Status: models.ScheduleStatusPending}
	sp.owners["sp1"] = "u1"

	mock.ExpectBegin()
	mock.ExpectCommit()

	updated, err := s.Update(context.Background(), "u1", "sp1", &transfer.ScheduledPostUpdate{
		Content:       "new text",
		ScheduledTime: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		Status:        models.ScheduleStatusCancelled,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"post.update", "scheduled.update"}, *ops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulingService_Update_RejectsUnknownStatus(t *testing.T) {
	s, _, _, sp, ops := newSchedulingFixture(t)
	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1"}
	sp.owners["sp1"] = "u1"

	_, err := s.Update(context.Background(), "u1", "sp1", &transfer.ScheduledPostUpdate{Status: "archived"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Empty(t, *ops)
}

func TestSchedulingService_Update_SkipsPostWhenContentEmpty(t *testing.T) {
	s, mock, _, sp, ops := newSchedulingFixture(t)
	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1", Status: models.ScheduleStatusPending}
	sp.owners["sp1"] = "u1"

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := s.Update(context.Background(), "u1", "sp1", &transfer.ScheduledPostUpdate{
		Status: models.ScheduleStatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"scheduled.update"}, *ops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulingService_Delete_RemovesChildBeforeParent(t *testing.T) {
	s, mock, pr, sp, ops := newSchedulingFixture(t)

	post := &models.Post{ID: "p1", UserID: "u1", Content: "bye"}
	pr.byID["p1"] = post
	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1"}
	sp.owners["sp1"] = "u1"

	mock.ExpectBegin()
	mock.ExpectCommit()

	deleted, err := s.Delete(context.Background(), "u1", "sp1")

	require.NoError(t, err)
	assert.Same(t, post, deleted)
	assert.Equal(t, []string{"scheduled.remove", "post.remove"}, *ops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulingService_Delete_CrossTenant(t *testing.T) {
	s, _, _, sp, ops := newSchedulingFixture(t)
	sp.byID["sp1"] = &models.ScheduledPost{ID: "sp1", PostID: "p1"}
	sp.owners["sp1"] = "u1"

	_, err := s.Delete(context.Background(), "u2", "sp1")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, *ops)
}

func TestSchedulingService_List_AttachesScheduledPosts(t *testing.T) {
	s, _, pr, sp, _ := newSchedulingFixture(t)

	pr.listed = []*models.Post{
		{ID: "p1", UserID: "u1"},
		{ID: "p2", UserID: "u1"},
	}
	sp.byPostIDs = []*models.ScheduledPost{
		{ID: "sp1", PostID: "p1"},
		{ID: "sp2", PostID: "p2"},
	}

	posts, err := s.List(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Len(t, posts[0].ScheduledPosts, 1)
	assert.Equal(t, "sp1", posts[0].ScheduledPosts[0].ID)
	require.Len(t, posts[1].ScheduledPosts, 1)
	assert.Equal(t, "sp2", posts[1].ScheduledPosts[0].ID)
}
