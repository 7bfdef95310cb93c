package announcement

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id string) (*Announcement, error)
	List(ctx context.Context, filter Filter) ([]*Announcement, int, error)
}

const announcementColumns = "id, title, content, date, is_important, created_at, updated_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, a *Announcement) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.announcements").
		Columns("title", "content", "date", "is_important").
		Values(a.Title, a.Content, a.Date, a.IsImportant).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create announcement query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Announcement, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(announcementColumns).
		From("public.announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get announcement query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var a Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.IsImportant, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get announcement failed: %w", err)
	}
	return &a, nil
}

// List fetches one page (most recent first) and the total count under
// the same filter concurrently.
func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Announcement, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	base := psql.Select(announcementColumns).From("public.announcements")
	countBase := psql.Select("count(*)").From("public.announcements")
	if filter.Important != nil {
		base = base.Where(squirrel.Eq{"is_important": *filter.Important})
		countBase = countBase.Where(squirrel.Eq{"is_important": *filter.Important})
	}

	pageQuery := base.OrderBy("date DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))

	var (
		result []*Announcement
		total  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sql, args, err := pageQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build list announcements query failed: %w", err)
		}

		rows, err := r.pool.Query(gctx, sql, args...)
		if err != nil {
			return fmt.Errorf("list announcements failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var a Announcement
			if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.IsImportant, &a.CreatedAt, &a.UpdatedAt); err != nil {
				return fmt.Errorf("scan announcement failed: %w", err)
			}
			result = append(result, &a)
		}
		return rows.Err()
	})

	g.Go(func() error {
		sql, args, err := countBase.ToSql()
		if err != nil {
			return fmt.Errorf("build count announcements query failed: %w", err)
		}
		if err := r.pool.QueryRow(gctx, sql, args...).Scan(&total); err != nil {
			return fmt.Errorf("count announcements failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}
