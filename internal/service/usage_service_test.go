package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenUsageRepo struct {
	created []*models.TokenUsage
	err     error
}

func (f *fakeTokenUsageRepo) Create(ctx context.Context, usage *models.TokenUsage) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, usage)
	return int64(len(f.created)), nil
}

func TestUsageService_Record(t *testing.T) {
	repo := &fakeTokenUsageRepo{}
	s := NewUsageService(repo)

	s.Record(context.Background(), "u1", 1500)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "u1", repo.created[0].UserID)
	assert.Equal(t, 1500, repo.created[0].Tokens)
	assert.InDelta(t, 0.003, repo.created[0].Cost, 1e-9)
}

func TestUsageService_Record_Skips(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		tokens int
	}{
		{name: "empty user", userID: "", tokens: 100},
		{name: "zero tokens", userID: "u1", tokens: 0},
		{name: "negative tokens", userID: "u1", tokens: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTokenUsageRepo{}
			s := NewUsageService(repo)

			s.Record(context.Background(), tt.userID, tt.tokens)

			assert.Empty(t, repo.created)
		})
	}
}

func TestUsageService_Record_SwallowsStorageErrors(t *testing.T) {
	repo := &fakeTokenUsageRepo{err: errors.New("db down")}
	s := NewUsageService(repo)

	assert.NotPanics(t, func() {
		s.Record(context.Background(), "u1", 200)
	})
}
