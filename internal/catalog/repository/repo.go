package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yamada-kensetsu/corporate-backend/internal/catalog/domain"
)

// ProjectRepository provides read access to the projects table.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
id, title, category, sub_category, description,
image_url, before_image_url, after_image_url,
completion_date, start_date, location, region, budget, area,
environmental_measures, safety_measures, awards, media_links,
technical_highlights, challenges_solutions, contractor_comment,
featured, completed`

// Newest completion first; id breaks ties so OFFSET pagination stays
// stable when two projects finished the same day.
const projectOrder = ` ORDER BY completion_date DESC, id DESC`

// whereClause renders the filter's predicate list as SQL. Predicates
// are ANDed, never ORed: a row must satisfy every active filter.
func whereClause(conds []domain.Condition) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for _, c := range conds {
		n := len(args) + 1
		switch c.Field {
		case domain.FieldCategory:
			parts = append(parts, fmt.Sprintf("category = $%d", n))
		case domain.FieldRegion:
			parts = append(parts, fmt.Sprintf("region = $%d", n))
		case domain.FieldCompletionYear:
			// The year is derived from the date column; there is no
			// stored year field.
			parts = append(parts, fmt.Sprintf("EXTRACT(YEAR FROM completion_date) = $%d", n))
		default:
			continue
		}
		args = append(args, c.Value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// List returns one page of projects matching the filter plus the total
// match count. Count and page are two reads on the same pool with no
// transaction; skew under concurrent writes is accepted.
func (r *ProjectRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.Project, int, error) {
	f = f.Normalize()
	where, args := whereClause(f.Conditions())

	var total int
	countQ := `SELECT COUNT(*) FROM projects` + where
	if err := r.db.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	pageQ := `SELECT` + projectColumns + ` FROM projects` + where + projectOrder +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	pageArgs := append(args, f.PageSize, f.Offset())

	rows, err := r.db.Query(ctx, pageQ, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Featured returns the newest projects flagged for the homepage.
func (r *ProjectRepository) Featured(ctx context.Context, limit int) ([]domain.Project, error) {
	q := `SELECT` + projectColumns + ` FROM projects WHERE featured` + projectOrder + ` LIMIT $1`
	return r.queryProjects(ctx, q, limit)
}

// Recent returns the most recently completed projects.
func (r *ProjectRepository) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	q := `SELECT` + projectColumns + ` FROM projects` + projectOrder + ` LIMIT $1`
	return r.queryProjects(ctx, q, limit)
}

// Completed returns every completed project, for the regional
// contribution map.
func (r *ProjectRepository) Completed(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT` + projectColumns + ` FROM projects WHERE completed` + projectOrder
	return r.queryProjects(ctx, q)
}

// GetByID returns one project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	q := `SELECT` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

func scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}
	return out, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p        domain.Project
		category string
		region   *string
	)
	err := row.Scan(
		&p.ID, &p.Title, &category, &p.SubCategory, &p.Description,
		&p.ImageURL, &p.BeforeImageURL, &p.AfterImageURL,
		&p.CompletionDate, &p.StartDate, &p.Location, &region, &p.Budget, &p.Area,
		&p.EnvironmentalMeasures, &p.SafetyMeasures, &p.Awards, &p.MediaLinks,
		&p.TechnicalHighlights, &p.ChallengesSolutions, &p.ContractorComment,
		&p.Featured, &p.Completed,
	)
	if err != nil {
		return nil, err
	}
	p.Category = domain.Category(category)
	if region != nil {
		reg := domain.Region(*region)
		p.Region = &reg
	}
	return &p, nil
}
