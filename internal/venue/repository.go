package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for venues.
type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.venues").
		Columns(
			"owner_id", "name", "description", "about", "venue_type",
			"address", "city", "state", "pincode",
			"sport_types", "amenities", "photo_file_ids", "status",
		).
		Values(
			v.OwnerID, v.Name, v.Description, v.About, v.VenueType,
			v.Address, v.City, v.State, v.Pincode,
			v.SportTypes, v.Amenities, v.PhotoFileIDs, v.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"v.id", "v.owner_id", "u.full_name",
		"v.name", "v.description", "v.about", "v.venue_type",
		"v.address", "v.city", "v.state", "v.pincode",
		"v.sport_types", "v.amenities", "v.photo_file_ids",
		"v.status", "v.created_at", "v.updated_at",
	).
		From("public.venues v").
		Join("public.users u ON v.owner_id = u.id").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var v Venue
	if err := row.Scan(
		&v.ID, &v.OwnerID, &v.OwnerName,
		&v.Name, &v.Description, &v.About, &v.VenueType,
		&v.Address, &v.City, &v.State, &v.Pincode,
		&v.SportTypes, &v.Amenities, &v.PhotoFileIDs,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.owner_id", "u.full_name",
		"v.name", "v.description", "v.about", "v.venue_type",
		"v.address", "v.city", "v.state", "v.pincode",
		"v.sport_types", "v.amenities", "v.photo_file_ids",
		"v.status", "v.created_at", "v.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.venues v").
		Join("public.users u ON v.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"v.city": filter.City})
	}
	if filter.Sport != "" {
		// sport_types is text[]; match any element case-sensitively.
		query = query.Where(squirrel.Expr("? = ANY(v.sport_types)", filter.Sport))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"v.status": filter.Status})
	}

	query = query.OrderBy("v.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.OwnerName,
			&v.Name, &v.Description, &v.About, &v.VenueType,
			&v.Address, &v.City, &v.State, &v.Pincode,
			&v.SportTypes, &v.Amenities, &v.PhotoFileIDs,
			&v.Status, &v.CreatedAt, &v.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.venues").
		Set("name", v.Name).
		Set("description", v.Description).
		Set("about", v.About).
		Set("venue_type", v.VenueType).
		Set("address", v.Address).
		Set("city", v.City).
		Set("state", v.State).
		Set("pincode", v.Pincode).
		Set("sport_types", v.SportTypes).
		Set("amenities", v.Amenities).
		Set("photo_file_ids", v.PhotoFileIDs).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update venue query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `
		UPDATE public.venues
		SET status = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update venue status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.venues WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
