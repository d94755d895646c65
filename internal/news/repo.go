package news

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Item is one dated announcement. Rows come from the back office and
// are read-only here.
type Item struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	ImageURL *string   `json:"imageUrl,omitempty"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Recent returns the newest items, most recent first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Item, error) {
	const q = `
SELECT id, title, content, date, image_url
FROM news
ORDER BY date DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent news: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0, limit)
	for rows.Next() {
		var n Item
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Date, &n.ImageURL); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent news: %w", err)
	}
	return out, nil
}
