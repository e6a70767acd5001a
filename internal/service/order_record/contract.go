//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_record_test
package order_record

import (
	"context"

	"depot/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, orderRecordModify entities.OrderRecordModify) (*entities.OrderRecord, error)
}
