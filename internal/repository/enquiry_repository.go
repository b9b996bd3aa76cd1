package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/crm-service/internal/domain"
)

// EnquiryRepository encapsulates enquiry persistence.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, id int64) (*domain.Enquiry, error)
	ListUnclaimed(ctx context.Context) ([]domain.Enquiry, error)
	ListClaimedBy(ctx context.Context, employeeID int64) ([]domain.Enquiry, error)
	// TryClaim performs the conditional claim write. It reports true when
	// this call transitioned the row from unclaimed to claimed, false when
	// the row was missing or already claimed. The update must stay a single
	// statement; splitting it into read-then-write reintroduces the race it
	// exists to prevent.
	TryClaim(ctx context.Context, enquiryID, employeeID int64) (bool, error)
}

type enquiryRepository struct {
	pool *pgxpool.Pool
}

// NewEnquiryRepository instantiates repository.
func NewEnquiryRepository(pool *pgxpool.Pool) EnquiryRepository {
	return &enquiryRepository{pool: pool}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	const query = `
        INSERT INTO enquiries (name, email, phone, course_interest, message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.CourseInterest,
		enquiry.Message,
	).Scan(&enquiry.ID, &enquiry.CreatedAt)
}

func (r *enquiryRepository) GetByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	const query = `
        SELECT id, name, email, phone, course_interest, message, created_at, claimed_by
        FROM enquiries WHERE id=$1`

	var enquiry domain.Enquiry
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&enquiry.ID,
		&enquiry.Name,
		&enquiry.Email,
		&enquiry.Phone,
		&enquiry.CourseInterest,
		&enquiry.Message,
		&enquiry.CreatedAt,
		&enquiry.ClaimedBy,
	); err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *enquiryRepository) ListUnclaimed(ctx context.Context) ([]domain.Enquiry, error) {
	const query = `
        SELECT id, name, email, phone, course_interest, message, created_at, claimed_by
        FROM enquiries WHERE claimed_by IS NULL
        ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnquiries(rows)
}

func (r *enquiryRepository) ListClaimedBy(ctx context.Context, employeeID int64) ([]domain.Enquiry, error) {
	const query = `
        SELECT id, name, email, phone, course_interest, message, created_at, claimed_by
        FROM enquiries WHERE claimed_by=$1
        ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnquiries(rows)
}

func (r *enquiryRepository) TryClaim(ctx context.Context, enquiryID, employeeID int64) (bool, error) {
	const query = `
        UPDATE enquiries SET claimed_by=$1
        WHERE id=$2 AND claimed_by IS NULL`

	cmd, err := r.pool.Exec(ctx, query, employeeID, enquiryID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func scanEnquiries(rows pgx.Rows) ([]domain.Enquiry, error) {
	var result []domain.Enquiry
	for rows.Next() {
		var enquiry domain.Enquiry
		if err := rows.Scan(
			&enquiry.ID,
			&enquiry.Name,
			&enquiry.Email,
			&enquiry.Phone,
			&enquiry.CourseInterest,
			&enquiry.Message,
			&enquiry.CreatedAt,
			&enquiry.ClaimedBy,
		); err != nil {
			return nil, err
		}
		result = append(result, enquiry)
	}
	return result, rows.Err()
}
