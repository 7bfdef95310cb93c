package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter Filter) ([]*Event, int, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) error
	Slugs(ctx context.Context) ([]string, error)
}

const eventColumns = "id, title, slug, description, category, status, featured, date, location, price_cents, image_url, created_at, updated_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Event) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.events").
		Columns("title", "slug", "description", "category", "status", "featured", "date", "location", "price_cents", "image_url").
		Values(e.Title, e.Slug, e.Description, e.Category, e.Status, e.Featured, e.Date, e.Location, e.PriceCents, e.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create event query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		// Slug collisions are deduplicated before insert; a concurrent
		// create can still race past that check into the unique index.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlugConflict
		}
		return fmt.Errorf("create event failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

func (r *pgxRepository) getBy(ctx context.Context, cond squirrel.Eq) (*Event, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(eventColumns).
		From("public.events").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var e Event
	if err := scanEvent(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event failed: %w", err)
	}
	return &e, nil
}

// List fetches one page and the total count under the same filter. The
// two reads are independent, so they run concurrently; either failure
// fails the whole operation.
func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Event, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	pageQuery := applyFilter(psql.Select(eventColumns).From("public.events"), filter).
		OrderBy("date ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))

	countQuery := applyFilter(psql.Select("count(*)").From("public.events"), filter)

	var (
		result []*Event
		total  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sql, args, err := pageQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build list events query failed: %w", err)
		}

		rows, err := r.pool.Query(gctx, sql, args...)
		if err != nil {
			return fmt.Errorf("list events failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var e Event
			if err := scanEvent(rows, &e); err != nil {
				return fmt.Errorf("scan event failed: %w", err)
			}
			result = append(result, &e)
		}
		return rows.Err()
	})

	g.Go(func() error {
		sql, args, err := countQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build count events query failed: %w", err)
		}
		if err := r.pool.QueryRow(gctx, sql, args...).Scan(&total); err != nil {
			return fmt.Errorf("count events failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, e *Event) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("category", e.Category).
		Set("status", e.Status).
		Set("featured", e.Featured).
		Set("date", e.Date).
		Set("location", e.Location).
		Set("price_cents", e.PriceCents).
		Set("image_url", e.ImageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update event query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.UpdatedAt); err != nil {
		// No row to update surfaces as no row returned.
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update event failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete event query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete event failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Slugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT slug FROM public.events")
	if err != nil {
		return nil, fmt.Errorf("list event slugs failed: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan slug failed: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func applyFilter(q squirrel.SelectBuilder, filter Filter) squirrel.SelectBuilder {
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Featured != nil {
		q = q.Where(squirrel.Eq{"featured": *filter.Featured})
	}
	return q
}

func scanEvent(row pgx.Row, e *Event) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Category, &e.Status,
		&e.Featured, &e.Date, &e.Location, &e.PriceCents, &e.ImageURL,
		&e.CreatedAt, &e.UpdatedAt,
	)
}
