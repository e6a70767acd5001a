package order_record

import (
	"context"
	"fmt"

	"depot/internal/entities"
	"depot/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "container_number", "container_type", "event_type", "customer_name", "location",
	"amount_minor", "free_days", "per_diem_minor", "invoice_id", "release_number",
	"delivery_date", "pickup_date", "created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert вставляет запись или перезаписывает её по id, повторная доставка
// того же сообщения ничего не меняет.
func (r *Repository) Upsert(ctx context.Context, orderRecordModify entities.OrderRecordModify) (*entities.OrderRecord, error) {
	modifyDB := FromDomainModify(&orderRecordModify)

	query := `
		INSERT INTO order_records (
			id, container_number, container_type, event_type, customer_name, location,
			amount_minor, free_days, per_diem_minor, invoice_id, release_number,
			delivery_date, pickup_date, created_at
		)
		VALUES ($1, $2, COALESCE($3::TEXT, ''), $4, $5, COALESCE($6::TEXT, ''), COALESCE($7::BIGINT, 0), $8, COALESCE($9::BIGINT, 0), $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			container_number = EXCLUDED.container_number,
			container_type   = EXCLUDED.container_type,
			event_type       = EXCLUDED.event_type,
			customer_name    = EXCLUDED.customer_name,
			location         = EXCLUDED.location,
			amount_minor     = EXCLUDED.amount_minor,
			free_days        = EXCLUDED.free_days,
			per_diem_minor   = EXCLUDED.per_diem_minor,
			invoice_id       = EXCLUDED.invoice_id,
			release_number   = EXCLUDED.release_number,
			delivery_date    = EXCLUDED.delivery_date,
			pickup_date      = EXCLUDED.pickup_date,
			created_at       = EXCLUDED.created_at,
			updated_at       = NOW()
		RETURNING id, container_number, container_type, event_type, customer_name, location,
			amount_minor, free_days, per_diem_minor, invoice_id, release_number,
			delivery_date, pickup_date, created_at, updated_at
	`

	row := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.ID,
		modifyDB.ContainerNumber,
		modifyDB.ContainerType,
		modifyDB.EventType,
		modifyDB.CustomerName,
		modifyDB.Location,
		modifyDB.AmountMinor,
		modifyDB.FreeDays,
		modifyDB.PerDiemMinor,
		modifyDB.InvoiceID,
		modifyDB.ReleaseNumber,
		modifyDB.DeliveryDate,
		modifyDB.PickupDate,
		modifyDB.CreatedAt,
	)

	recordDB, err := scanOrderRecord(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("unexpected order record repository upsert error: %w", repository.Classify(err))
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderRecordFilter) ([]entities.OrderRecord, error) {
	builder := qb.
		Select(columns...).
		From("order_records")

	if filter.ContainerNumber != nil {
		builder = builder.Where(sq.Eq{"container_number": *filter.ContainerNumber})
	}
	if filter.CustomerName != nil {
		builder = builder.Where(sq.Eq{"customer_name": *filter.CustomerName})
	}

	query, args, err := builder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order record repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order record repository list error: %w", repository.Classify(err))
	}
	defer rows.Close()

	records := make([]entities.OrderRecord, 0)
	for rows.Next() {
		recordDB, err := scanOrderRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order record repository scan error: %w", repository.Classify(err))
		}
		records = append(records, *ToDomain(recordDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order record repository rows error: %w", repository.Classify(err))
	}

	return records, nil
}

func (r *Repository) ContainerExists(ctx context.Context, containerNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_records WHERE container_number = $1)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, containerNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected order record repository exists error: %w", repository.Classify(err))
	}
	return exists, nil
}

func scanOrderRecord(row pgx.Row) (*OrderRecordDB, error) {
	var recordDB OrderRecordDB
	err := row.Scan(
		&recordDB.ID,
		&recordDB.ContainerNumber,
		&recordDB.ContainerType,
		&recordDB.EventType,
		&recordDB.CustomerName,
		&recordDB.Location,
		&recordDB.AmountMinor,
		&recordDB.FreeDays,
		&recordDB.PerDiemMinor,
		&recordDB.InvoiceID,
		&recordDB.ReleaseNumber,
		&recordDB.DeliveryDate,
		&recordDB.PickupDate,
		&recordDB.CreatedAt,
		&recordDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recordDB, nil
}
