package order

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
	// Create persists the order and its line items in one transaction.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("public.orders").
		Columns("user_id", "status", "total_cents").
		Values(o.UserID, o.Status, o.TotalCents).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create order query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("create order failed: %w", err)
	}

	for i := range o.Items {
		it := &o.Items[i]
		query, args, err := psql.Insert("public.order_items").
			Columns("order_id", "event_id", "quantity", "unit_price_cents").
			Values(o.ID, it.EventID, it.Quantity, it.UnitPriceCents).
			ToSql()
		if err != nil {
			return fmt.Errorf("build create order item query failed: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
				return ErrEventNotFound
			}
			return fmt.Errorf("create order item failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "user_id", "status", "total_cents", "created_at").
		From("public.orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get order query failed: %w", err)
	}

	var o Order
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&o.ID, &o.UserID, &o.Status, &o.TotalCents, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order failed: %w", err)
	}

	if o.Items, err = r.itemsFor(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// List fetches one page of the user's orders (newest first) and the
// total count concurrently.
func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Order, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	pageQuery := psql.Select("id", "user_id", "status", "total_cents", "created_at").
		From("public.orders").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))

	countQuery := psql.Select("count(*)").
		From("public.orders").
		Where(squirrel.Eq{"user_id": filter.UserID})

	var (
		result []*Order
		total  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sql, args, err := pageQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build list orders query failed: %w", err)
		}

		rows, err := r.pool.Query(gctx, sql, args...)
		if err != nil {
			return fmt.Errorf("list orders failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var o Order
			if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalCents, &o.CreatedAt); err != nil {
				return fmt.Errorf("scan order failed: %w", err)
			}
			result = append(result, &o)
		}
		return rows.Err()
	})

	g.Go(func() error {
		sql, args, err := countQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build count orders query failed: %w", err)
		}
		if err := r.pool.QueryRow(gctx, sql, args...).Scan(&total); err != nil {
			return fmt.Errorf("count orders failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	for _, o := range result {
		var err error
		if o.Items, err = r.itemsFor(ctx, o.ID); err != nil {
			return nil, 0, err
		}
	}

	return result, total, nil
}

func (r *pgxRepository) itemsFor(ctx context.Context, orderID string) ([]Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("i.event_id", "e.title", "i.quantity", "i.unit_price_cents").
		From("public.order_items i").
		Join("public.events e ON i.event_id = e.id").
		Where(squirrel.Eq{"i.order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build order items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get order items failed: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.EventID, &it.EventTitle, &it.Quantity, &it.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item failed: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
