//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test
package rate_limiter

import "depot/pkg/logger"

// Limiter общий для всех маршрутов API лимит, в сервисе это pkg/token_bucket.
type Limiter interface {
	// Allow забирает токен, false означает ответ 429.
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
	Info(msg string, fields ...logger.Field)
}
