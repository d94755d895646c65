package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Submission is one visitor inquiry. Write-once: the site never reads
// submissions back, the back office does.
type Submission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create inserts a submission and returns the stored row.
func (r *Repo) Create(ctx context.Context, s Submission) (*Submission, error) {
	const q = `
INSERT INTO contact_submissions (name, email, company, phone, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, email, company, phone, message, created_at;
`
	var out Submission
	err := r.db.QueryRow(ctx, q, s.Name, s.Email, s.Company, s.Phone, s.Message).
		Scan(&out.ID, &out.Name, &out.Email, &out.Company, &out.Phone, &out.Message, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return &out, nil
}
