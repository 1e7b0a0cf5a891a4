package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for courts.
type Repository interface {
	// CreateBatch inserts all courts in one transaction; either every court
	// is created or none are.
	CreateBatch(ctx context.Context, courts []*Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, ct *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateBatch(ctx context.Context, courts []*Court) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create courts failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO public.courts (venue_id, name, sport_type, operating_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	for _, ct := range courts {
		hours, err := json.Marshal(ct.OperatingHours)
		if err != nil {
			return fmt.Errorf("encode operating hours failed: %w", err)
		}

		err = tx.QueryRow(ctx, query, ct.VenueID, ct.Name, ct.SportType, hours).
			Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgerrcode.UniqueViolation:
					return ErrDuplicateName
				case pgerrcode.ForeignKeyViolation:
					return ErrVenueNotFound
				}
			}
			return fmt.Errorf("create court failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create courts failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT c.id, c.venue_id, v.name, c.name, c.sport_type, c.operating_hours,
		       c.created_at, c.updated_at
		FROM public.courts c
		JOIN public.venues v ON c.venue_id = v.id
		WHERE c.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	ct, err := scanCourt(row, nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return ct, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"c.id", "c.venue_id", "v.name", "c.name", "c.sport_type",
		"c.operating_hours", "c.created_at", "c.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.courts c").
		Join("public.venues v ON c.venue_id = v.id")

	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"c.venue_id": filter.VenueID})
	}
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.SportType != "" {
		query = query.Where(squirrel.ILike{"c.sport_type": filter.SportType})
	}

	query = query.OrderBy("c.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int

	for rows.Next() {
		ct, err := scanCourt(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, ct)
	}

	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, ct *Court) error {
	hours, err := json.Marshal(ct.OperatingHours)
	if err != nil {
		return fmt.Errorf("encode operating hours failed: %w", err)
	}

	const query = `
		UPDATE public.courts
		SET name = $1, sport_type = $2, operating_hours = $3, updated_at = now()
		WHERE id = $4
	`
	tag, err := r.pool.Exec(ctx, query, ct.Name, ct.SportType, hours, ct.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("update court failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.courts WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanCourt reads one court row, decoding the operating_hours JSONB column.
// total is scanned as the trailing column when non-nil.
func scanCourt(row pgx.Row, total *int) (*Court, error) {
	var ct Court
	var hours []byte

	dest := []any{
		&ct.ID, &ct.VenueID, &ct.VenueName, &ct.Name, &ct.SportType,
		&hours, &ct.CreatedAt, &ct.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(hours, &ct.OperatingHours); err != nil {
		return nil, fmt.Errorf("decode operating hours failed: %w", err)
	}
	return &ct, nil
}
