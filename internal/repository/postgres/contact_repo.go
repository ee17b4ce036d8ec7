package postgresrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"titoubarz-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, name, email, subject, message, status, priority,
	ip_address, user_agent, source, tags, notes, is_spam, created_at, updated_at`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	var tags, notes []byte
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.Priority,
		&c.IPAddress, &c.UserAgent, &c.Source, &tags, &notes, &c.IsSpam, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		json.Unmarshal(tags, &c.Tags)
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if len(notes) > 0 {
		json.Unmarshal(notes, &c.Notes)
	}
	if c.Notes == nil {
		c.Notes = []domain.ContactNote{}
	}
	return &c, nil
}

func (r *contactRepository) scanContacts(ctx context.Context, query string, args ...any) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if contact.Tags == nil {
		contact.Tags = []string{}
	}
	if contact.Notes == nil {
		contact.Notes = []domain.ContactNote{}
	}
	tags, _ := json.Marshal(contact.Tags)
	notes, _ := json.Marshal(contact.Notes)

	return r.db.QueryRow(ctx, `
		INSERT INTO contacts (name, email, subject, message, status, priority,
			ip_address, user_agent, source, tags, notes, is_spam)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		contact.Name, contact.Email, contact.Subject, contact.Message, contact.Status,
		contact.Priority, contact.IPAddress, contact.UserAgent, contact.Source,
		tags, notes, contact.IsSpam,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) GetAll(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, int64, error) {
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conditions = append(conditions, fmt.Sprintf("priority = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d)", n, n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM contacts"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + contactColumns + " FROM contacts" + where + contactOrderBy(filter.SortBy, filter.SortOrder)
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	contacts, err := r.scanContacts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func contactOrderBy(sortBy, sortOrder string) string {
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	switch sortBy {
	case "priority":
		return " ORDER BY priority " + dir
	case "status":
		return " ORDER BY status " + dir
	default:
		return " ORDER BY created_at " + dir
	}
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.db.QueryRow(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id = $1", id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	tags, _ := json.Marshal(contact.Tags)
	notes, _ := json.Marshal(contact.Notes)

	row := r.db.QueryRow(ctx, `
		UPDATE contacts
		SET name = $2, email = $3, subject = $4, message = $5, status = $6, priority = $7,
		    source = $8, tags = $9, notes = $10, is_spam = $11, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message,
		contact.Status, contact.Priority, contact.Source, tags, notes, contact.IsSpam)
	if err := row.Scan(&contact.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrContactNotFound
		}
		return err
	}
	return nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE contacts SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+contactColumns, id, status)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) GetStats(ctx context.Context) (*domain.ContactStats, error) {
	stats := &domain.ContactStats{
		PriorityBreakdown: []domain.PriorityCount{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'new'),
		       COUNT(*) FILTER (WHERE status = 'read'),
		       COUNT(*) FILTER (WHERE status = 'replied'),
		       COUNT(*) FILTER (WHERE status = 'closed'),
		       COUNT(*) FILTER (WHERE is_spam)
		FROM contacts`).Scan(&stats.TotalContacts, &stats.NewContacts, &stats.ReadContacts,
		&stats.RepliedContacts, &stats.ClosedContacts, &stats.SpamContacts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, "SELECT priority, COUNT(*) FROM contacts GROUP BY priority ORDER BY priority")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pc domain.PriorityCount
		if err := rows.Scan(&pc.Priority, &pc.Count); err != nil {
			return nil, err
		}
		stats.PriorityBreakdown = append(stats.PriorityBreakdown, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.scanContacts(ctx, "SELECT "+contactColumns+" FROM contacts ORDER BY created_at DESC LIMIT 5")
	if err != nil {
		return nil, err
	}
	stats.RecentContacts = recent

	return stats, nil
}
