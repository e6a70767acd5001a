//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=urgency_metrics_test
package urgency_metrics

import (
	"context"

	"depot/internal/entities"
)

type Service interface {
	UrgencyCounts(ctx context.Context) (map[entities.UrgencyTier]int, error)
}
