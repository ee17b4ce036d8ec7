package usecase

import (
	"context"
	"testing"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSpam(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		spam    bool
	}{
		{"clean message", "Question about delivery", "When will my order arrive?", false},
		{"one message indicator", "Hello", "You should buy now", false},
		{"one subject indicator", "Urgent question", "Where is my order?", false},
		{"two message indicators", "Hello", "Buy now! Click here for deals", true},
		{"subject and message indicator", "URGENT offer", "Click here to claim", true},
		{"two subject indicators", "Urgent, limited time only", "Hello", true},
		{"case insensitive", "hi", "BUY NOW and MAKE MONEY fast", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.spam, DetectSpam(tt.subject, tt.message))
		})
	}
}

type stubContactRepo struct {
	created *domain.Contact
}

func (s *stubContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	c.ID = "b2c3d4e5-0000-0000-0000-000000000000"
	s.created = c
	return nil
}
func (s *stubContactRepo) GetAll(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int64, error) {
	return nil, 0, nil
}
func (s *stubContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return nil, domain.ErrContactNotFound
}
func (s *stubContactRepo) Update(ctx context.Context, c *domain.Contact) error { return nil }
func (s *stubContactRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	return nil, domain.ErrContactNotFound
}
func (s *stubContactRepo) Delete(ctx context.Context, id string) error { return nil }
func (s *stubContactRepo) GetStats(ctx context.Context) (*domain.ContactStats, error) {
	return &domain.ContactStats{}, nil
}

func TestSubmitStoresSpamAtLowPriority(t *testing.T) {
	repo := &stubContactRepo{}
	uc := NewContactUsecase(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	spam := &domain.Contact{
		Name:    "Spammer",
		Email:   "spam@example.com",
		Subject: "Urgent, limited time",
		Message: "Great deals",
	}
	require.NoError(t, uc.Submit(context.Background(), spam))
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.IsSpam)
	assert.Equal(t, domain.ContactPriorityLow, repo.created.Priority)
	assert.Equal(t, domain.ContactStatusNew, repo.created.Status)
	assert.Equal(t, "website", repo.created.Source)
}

func TestSubmitDefaultsForCleanMessage(t *testing.T) {
	repo := &stubContactRepo{}
	uc := NewContactUsecase(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	contact := &domain.Contact{
		Name:    "Customer",
		Email:   "customer@example.com",
		Subject: "Delivery question",
		Message: "Do you deliver to Tamanrasset?",
		Source:  "mobile",
	}
	require.NoError(t, uc.Submit(context.Background(), contact))
	assert.False(t, repo.created.IsSpam)
	assert.Equal(t, domain.ContactPriorityMedium, repo.created.Priority)
	assert.Equal(t, "mobile", repo.created.Source)
}
