package release

import (
	"context"
	"errors"
	"fmt"

	"depot/internal/entities"
	"depot/internal/repository"
	"depot/internal/service/release"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = "RETURNING id, container_number, release_number, pickup_date, customer_name, notes, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create полагается на UNIQUE (container_number): второй выпуск контейнера
// возвращает release.ErrReleaseAlreadyExists.
func (r *Repository) Create(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error) {
	modifyDB := FromDomainModify(&releaseModify)

	query := `
		INSERT INTO releases (id, container_number, release_number, pickup_date, customer_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	` + returning

	releaseDB, err := scanRelease(r.querier.QueryRow(
		ctx,
		query,
		modifyDB.ID,
		modifyDB.ContainerNumber,
		modifyDB.ReleaseNumber,
		modifyDB.PickupDate,
		modifyDB.CustomerName,
		modifyDB.Notes,
	))
	if err != nil {
		return nil, mapWriteError("create", err)
	}

	return ToDomain(releaseDB), nil
}

func (r *Repository) Update(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error) {
	modifyDB := FromDomainModify(&releaseModify)
	if modifyDB.ContainerNumber == nil {
		return nil, release.ErrInvalidContainerNumber
	}

	builder := qb.Update("releases")

	// опциональные поля
	if modifyDB.ReleaseNumber != nil {
		builder = builder.Set("release_number", *modifyDB.ReleaseNumber)
	}
	if modifyDB.PickupDate != nil {
		builder = builder.Set("pickup_date", *modifyDB.PickupDate)
	}
	if modifyDB.CustomerName != nil {
		builder = builder.Set("customer_name", *modifyDB.CustomerName)
	}
	if modifyDB.Notes != nil {
		builder = builder.Set("notes", *modifyDB.Notes)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"container_number": *modifyDB.ContainerNumber}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected release repository update error: %w", err)
	}

	releaseDB, err := scanRelease(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError("update", err)
	}

	return ToDomain(releaseDB), nil
}

func (r *Repository) GetByContainer(ctx context.Context, containerNumber string) (*entities.Release, error) {
	query := `
		SELECT id, container_number, release_number, pickup_date, customer_name, notes, created_at, updated_at
		FROM releases
		WHERE container_number = $1
	`

	releaseDB, err := scanRelease(r.querier.QueryRow(ctx, query, containerNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, release.ErrReleaseNotFound
		}
		return nil, fmt.Errorf("unexpected release repository get error: %w", repository.Classify(err))
	}

	return ToDomain(releaseDB), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Release, error) {
	query := `
		SELECT id, container_number, release_number, pickup_date, customer_name, notes, created_at, updated_at
		FROM releases
		ORDER BY pickup_date ASC, container_number ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected release repository list error: %w", repository.Classify(err))
	}
	defer rows.Close()

	releases := make([]entities.Release, 0)
	for rows.Next() {
		releaseDB, err := scanRelease(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected release repository scan error: %w", repository.Classify(err))
		}
		releases = append(releases, *ToDomain(releaseDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected release repository rows error: %w", repository.Classify(err))
	}

	return releases, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return release.ErrReleaseNotFound
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return release.ErrReleaseAlreadyExists
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		return release.ErrInvalidReleaseNumber
	default:
		return fmt.Errorf("unexpected release repository %s error: %w", op, repository.Classify(err))
	}
}

func scanRelease(row pgx.Row) (*ReleaseDB, error) {
	var releaseDB ReleaseDB
	err := row.Scan(
		&releaseDB.ID,
		&releaseDB.ContainerNumber,
		&releaseDB.ReleaseNumber,
		&releaseDB.PickupDate,
		&releaseDB.CustomerName,
		&releaseDB.Notes,
		&releaseDB.CreatedAt,
		&releaseDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &releaseDB, nil
}
