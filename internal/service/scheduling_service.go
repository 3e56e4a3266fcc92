package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/repository"
	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SchedulingService owns the Post+ScheduledPost pair. Every multi-row
// mutation runs inside one transaction so a partial failure never leaves an
// orphaned row, and every call is scoped to the owning user.
type SchedulingService interface {
	Create(ctx context.Context, userID string, sc *transfer.ScheduledPostCreation) (*models.ScheduledPost, time.Duration, error)
	List(ctx context.Context, userID string) ([]*models.Post, error)
	Get(ctx context.Context, userID, scheduledPostID string) (*models.ScheduledPost, error)
	Update(ctx context.Context, userID, scheduledPostID string, su *transfer.ScheduledPostUpdate) (*models.ScheduledPost, error)
	Delete(ctx context.Context, userID, scheduledPostID string) (*models.Post, error)
}

type schedulingService struct {
	db *sql.DB
	pr repository.PostRepository
	sp repository.ScheduledPostRepository
}

func NewSchedulingService(db *sql.DB, pr repository.PostRepository, sp repository.ScheduledPostRepository) SchedulingService {
	return &schedulingService{
		db: db,
		pr: pr,
		sp: sp,
	}
}

func (s *schedulingService) Create(ctx context.Context, userID string, sc *transfer.ScheduledPostCreation) (*models.ScheduledPost, time.Duration, error) {
	if sc == nil {
		return nil, 0, fmt.Errorf("%w: request body is empty", errs.ErrValidation)
	}
	if strings.TrimSpace(sc.Content) == "" {
		return nil, 0, fmt.Errorf("%w: content is required", errs.ErrValidation)
	}
	if strings.TrimSpace(sc.Platform) == "" {
		return nil, 0, fmt.Errorf("%w: platform is required", errs.ErrValidation)
	}

	scheduledTime, err := time.Parse(time.RFC3339, sc.ScheduledTime)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid scheduled time format: %v", errs.ErrValidation, err)
	}

	postID, err := gonanoid.New()
	if err != nil {
		return nil, 0, err
	}
	scheduledPostID, err := gonanoid.New()
	if err != nil {
		return nil, 0, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	post := models.Post{
		ID:       postID,
		UserID:   userID,
		Content:  sc.Content,
		Platform: sc.Platform,
		Status:   models.PostStatusScheduled,
		ImageURL: sql.NullString{String: sc.ImageURL, Valid: sc.ImageURL != ""},
	}
	if err = s.pr.Create(ctx, tx, &post); err != nil {
		return nil, 0, fmt.Errorf("error creating post: %w", err)
	}

	scheduledPost := models.ScheduledPost{
		ID:            scheduledPostID,
		PostID:        postID,
		Platform:      sc.Platform,
		ScheduledTime: scheduledTime,
		Status:        models.ScheduleStatusPending,
	}
	if err = s.sp.Create(ctx, tx, &scheduledPost); err != nil {
		return nil, 0, fmt.Errorf("error creating scheduled post: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	scheduledPost.Post = &post

	delay := time.Until(scheduledTime)
	if delay < 0 {
		delay = 0
	}

	return &scheduledPost, delay, nil
}

func (s *schedulingService) List(ctx context.Context, userID string) ([]*models.Post, error) {
	posts, err := s.pr.ListScheduledByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing scheduled posts: %w", err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	postIDs := make([]string, 0, len(posts))
	byID := make(map[string]*models.Post, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		byID[post.ID] = post
	}

	scheduled, err := s.sp.ListByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing scheduled posts: %w", err)
	}
	for _, sp := range scheduled {
		if post, ok := byID[sp.PostID]; ok {
			post.ScheduledPosts = append(post.ScheduledPosts, sp)
		}
	}

	return posts, nil
}

func (s *schedulingService) Get(ctx context.Context, userID, scheduledPostID string) (*models.ScheduledPost, error) {
	scheduledPost, err := s.resolveOwned(ctx, userID, scheduledPostID)
	if err != nil {
		return nil, err
	}

	post, isExist, err := s.pr.GetByID(ctx, scheduledPost.PostID)
	if err != nil {
		return nil, err
	}
	if isExist {
		scheduledPost.Post = post
	}

	return scheduledPost, nil
}

func (s *schedulingService) Update(ctx context.Context, userID, scheduledPostID string, su *transfer.ScheduledPostUpdate) (*models.ScheduledPost, error) {
	if su == nil {
		return nil, fmt.Errorf("%w: request body is empty", errs.ErrValidation)
	}
	if su.Status != "" && !validScheduleStatus(su.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrValidation, su.Status)
	}

	var scheduledTime *time.Time
	if su.ScheduledTime != "" {
		t, err := time.Parse(time.RFC3339, su.ScheduledTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid scheduled time format: %v", errs.ErrValidation, err)
		}
		scheduledTime = &t
	}

	scheduledPost, err := s.resolveOwned(ctx, userID, scheduledPostID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if su.Content != "" {
		if err = s.pr.UpdateContent(ctx, tx, scheduledPost.PostID, su.Content, su.Platform); err != nil {
			return nil, fmt.Errorf("error updating post: %w", err)
		}
	}

	if err = s.sp.Update(ctx, tx, scheduledPostID, su.Platform, scheduledTime, su.Status); err != nil {
		return nil, fmt.Errorf("error updating scheduled post: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated, isExist, err := s.sp.GetByID(ctx, scheduledPostID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, fmt.Errorf("%w: scheduled post", errs.ErrNotFound)
	}

	return updated, nil
}

func (s *schedulingService) Delete(ctx context.Context, userID, scheduledPostID string) (*models.Post, error) {
	scheduledPost, err := s.resolveOwned(ctx, userID, scheduledPostID)
	if err != nil {
		return nil, err
	}

	post, isExist, err := s.pr.GetByID(ctx, scheduledPost.PostID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		err = fmt.Errorf("%w: post", errs.ErrNotFound)
		slog.Info(err.Error())
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	// Child first so the parent delete never dangles a foreign key.
	if err = s.sp.Remove(ctx, tx, scheduledPostID); err != nil {
		return nil, fmt.Errorf("error removing scheduled post: %w", err)
	}
	if err = s.pr.Remove(ctx, tx, scheduledPost.PostID); err != nil {
		return nil, fmt.Errorf("error removing post: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

// resolveOwned looks up a scheduled post scoped to its owner. Rows owned by
// someone else report not-found so ids don't leak existence.
func (s *schedulingService) resolveOwned(ctx context.Context, userID, scheduledPostID string) (*models.ScheduledPost, error) {
	if scheduledPostID == "" {
		return nil, fmt.Errorf("%w: scheduled post id is required", errs.ErrValidation)
	}

	isOwner, err := s.sp.CheckOwner(ctx, scheduledPostID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		err = fmt.Errorf("%w: scheduled post", errs.ErrNotFound)
		slog.Info(err.Error())
		return nil, err
	}

	scheduledPost, isExist, err := s.sp.GetByID(ctx, scheduledPostID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, fmt.Errorf("%w: scheduled post", errs.ErrNotFound)
	}

	return scheduledPost, nil
}

func validScheduleStatus(status string) bool {
	switch status {
	case models.ScheduleStatusPending, models.ScheduleStatusSent, models.ScheduleStatusFailed, models.ScheduleStatusCancelled:
		return true
	}
	return false
}
