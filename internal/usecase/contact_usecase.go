package usecase

import (
	"context"
	"strings"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/pkg/cache"
)

var (
	spamMessagePhrases = []string{"buy now", "click here", "make money"}
	spamSubjectPhrases = []string{"urgent", "limited time"}
)

// DetectSpam scores a submission against known solicitation phrases. Two or
// more hits across subject and message flag it as spam.
func DetectSpam(subject, message string) bool {
	subject = strings.ToLower(subject)
	message = strings.ToLower(message)

	hits := 0
	for _, phrase := range spamMessagePhrases {
		if strings.Contains(message, phrase) {
			hits++
		}
	}
	for _, phrase := range spamSubjectPhrases {
		if strings.Contains(subject, phrase) {
			hits++
		}
	}
	return hits >= 2
}

type ContactUsecase struct {
	contactRepo domain.ContactRepository
	cache       cache.CacheService
	cacheTTL    time.Duration
}

func NewContactUsecase(contactRepo domain.ContactRepository, cacheService cache.CacheService, cacheTTL time.Duration) *ContactUsecase {
	return &ContactUsecase{
		contactRepo: contactRepo,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

// Submit stores a contact form submission. Spam goes in at low priority
// instead of being rejected, so false positives stay reviewable.
func (uc *ContactUsecase) Submit(ctx context.Context, contact *domain.Contact) error {
	contact.IsSpam = DetectSpam(contact.Subject, contact.Message)
	contact.Status = domain.ContactStatusNew
	if contact.IsSpam {
		contact.Priority = domain.ContactPriorityLow
	} else {
		contact.Priority = domain.ContactPriorityMedium
	}
	if contact.Source == "" {
		contact.Source = "website"
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return err
	}
	uc.cache.Delete("contacts:stats")
	return nil
}

func (uc *ContactUsecase) GetContacts(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.contactRepo.GetAll(ctx, filter)
}

func (uc *ContactUsecase) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return uc.contactRepo.GetByID(ctx, id)
}

// ContactPatch holds the admin-editable fields. A non-empty Note is appended
// to the message's note trail.
type ContactPatch struct {
	Status   string
	Priority string
	Note     string
}

func (uc *ContactUsecase) UpdateContact(ctx context.Context, id string, patch ContactPatch) (*domain.Contact, error) {
	contact, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		contact.Status = patch.Status
	}
	if patch.Priority != "" {
		contact.Priority = patch.Priority
	}
	if patch.Note != "" {
		contact.Notes = append(contact.Notes, domain.ContactNote{
			Content:   patch.Note,
			CreatedAt: time.Now(),
		})
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	uc.cache.Delete("contacts:stats")
	return contact, nil
}

func (uc *ContactUsecase) MarkAsRead(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := uc.contactRepo.UpdateStatus(ctx, id, domain.ContactStatusRead)
	if err != nil {
		return nil, err
	}
	uc.cache.Delete("contacts:stats")
	return contact, nil
}

func (uc *ContactUsecase) DeleteContact(ctx context.Context, id string) error {
	if err := uc.contactRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete("contacts:stats")
	return nil
}

func (uc *ContactUsecase) GetStats(ctx context.Context) (*domain.ContactStats, error) {
	if val, found := uc.cache.Get("contacts:stats"); found {
		stats := val.(domain.ContactStats)
		return &stats, nil
	}

	stats, err := uc.contactRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set("contacts:stats", *stats, uc.cacheTTL)
	return stats, nil
}
