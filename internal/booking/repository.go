package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts a booking. The bookings table carries an exclusion
	// constraint over (court_id, date, numrange(start_hour, end_hour))
	// filtered to occupying statuses, so overlap rejection is atomic even
	// when validation raced another writer. A constraint hit surfaces as
	// ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForCourtDate returns the occupying (pending or confirmed)
	// bookings of one court on one calendar day.
	ListForCourtDate(ctx context.Context, courtID string, date time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("court_id", "user_id", "date", "start_hour", "end_hour", "total_price", "status").
		Values(b.CourtID, b.UserID, b.Date, b.StartHour, b.EndHour, b.TotalPrice, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns()...).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Join("public.venues v ON c.venue_id = v.id").
		Join("public.users u ON b.user_id = u.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(scanTargets(&b, nil)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(bookingColumns(), "count(*) OVER() as total_count")...).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Join("public.venues v ON c.venue_id = v.id").
		Join("public.users u ON b.user_id = u.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"c.venue_id": filter.VenueID})
	}
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.date": *filter.DateTo})
	}

	query = query.OrderBy("b.date DESC", "b.start_hour DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(scanTargets(&b, &total)...); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForCourtDate(ctx context.Context, courtID string, date time.Time) ([]*Booking, error) {
	const query = `
		SELECT id, court_id, user_id, date, start_hour, end_hour, total_price, status,
		       created_at, updated_at
		FROM public.bookings
		WHERE court_id = $1 AND date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY start_hour
	`
	rows, err := r.pool.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for court failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CourtID, &b.UserID, &b.Date, &b.StartHour, &b.EndHour,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func bookingColumns() []string {
	return []string{
		"b.id", "b.court_id", "c.name", "c.venue_id", "v.name",
		"b.user_id", "u.full_name",
		"b.date", "b.start_hour", "b.end_hour", "b.total_price",
		"b.status", "b.created_at", "b.updated_at",
	}
}

func scanTargets(b *Booking, total *int) []any {
	dest := []any{
		&b.ID, &b.CourtID, &b.CourtName, &b.VenueID, &b.VenueName,
		&b.UserID, &b.UserName,
		&b.Date, &b.StartHour, &b.EndHour, &b.TotalPrice,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}
	return dest
}
