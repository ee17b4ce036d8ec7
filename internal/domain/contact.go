package domain

import (
	"context"
	"errors"
	"time"
)

type ContactNote struct {
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    string        `json:"status"`
	Priority  string        `json:"priority"`
	IPAddress string        `json:"ipAddress,omitempty"`
	UserAgent string        `json:"userAgent,omitempty"`
	Source    string        `json:"source"`
	Tags      []string      `json:"tags"`
	Notes     []ContactNote `json:"notes"`
	IsSpam    bool          `json:"isSpam"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type ContactFilter struct {
	Page      int
	Limit     int
	Status    string
	Priority  string
	Search    string // matches name, email, subject or message
	SortBy    string
	SortOrder string
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

type ContactStats struct {
	TotalContacts     int64           `json:"totalContacts"`
	NewContacts       int64           `json:"newContacts"`
	ReadContacts      int64           `json:"readContacts"`
	RepliedContacts   int64           `json:"repliedContacts"`
	ClosedContacts    int64           `json:"closedContacts"`
	SpamContacts      int64           `json:"spamContacts"`
	PriorityBreakdown []PriorityCount `json:"priorityBreakdown"`
	RecentContacts    []Contact       `json:"recentContacts"`
}

var ErrContactNotFound = errors.New("contact message not found")

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	GetAll(ctx context.Context, filter ContactFilter) ([]Contact, int64, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	UpdateStatus(ctx context.Context, id, status string) (*Contact, error)
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*ContactStats, error)
}
