// Package submissions реализует журнал отправленных бронирований в PostgreSQL.
// Запись денормализована: она должна отвечать на вопрос "что клиент бронировал
// здесь" даже если услуга у бизнеса давно переименована или удалена.
package submissions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/psqlbuilder"
)

// Repository репозиторий журнала отправок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала отправок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает отправленное бронирование в журнал
func (r *Repository) Create(ctx context.Context, record *domain.Submission) error {
	query, args, err := psqlbuilder.Insert("submissions").
		Columns(
			"booking_id",
			"business_slug",
			"service_id",
			"table_id",
			"starts_at",
			"ends_at",
			"party_size",
			"customer_name",
			"customer_phone",
			"customer_email",
			"status",
			"service_name",
			"created_at",
		).
		Values(
			record.BookingID,
			record.BusinessSlug,
			record.ServiceID,
			record.TableID,
			record.StartsAt,
			record.EndsAt,
			record.PartySize,
			record.Name,
			record.Phone,
			record.Email,
			record.Status,
			record.ServiceName,
			record.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByPhone возвращает отправки клиента у данного бизнеса, свежие первыми
func (r *Repository) ListByPhone(ctx context.Context, businessSlug, phone string) ([]*domain.Submission, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"business_slug",
		"service_id",
		"table_id",
		"starts_at",
		"ends_at",
		"party_size",
		"customer_name",
		"customer_phone",
		"customer_email",
		"status",
		"service_name",
		"created_at",
	).
		From("submissions").
		Where("business_slug = ?", businessSlug).
		Where("customer_phone = ?", phone).
		OrderBy("starts_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var records []*domain.Submission
	for rows.Next() {
		record, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}

func scanSubmission(rows *sql.Rows) (*domain.Submission, error) {
	var record domain.Submission
	var email sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.BookingID,
		&record.BusinessSlug,
		&record.ServiceID,
		&record.TableID,
		&record.StartsAt,
		&record.EndsAt,
		&record.PartySize,
		&record.Name,
		&record.Phone,
		&email,
		&record.Status,
		&record.ServiceName,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan submission: %v", ErrScanRow, err)
	}

	if email.Valid {
		record.Email = &email.String
	}
	return &record, nil
}
