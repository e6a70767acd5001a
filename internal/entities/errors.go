package entities

import "errors"

var (
	// ErrInvalidInput общая категория ошибок валидации, конкретные ошибки сервисов оборачивают её.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable хранилище или источник заказов недоступны.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrAmountOutOfRange сумма не помещается в int64 минимальных единиц.
	ErrAmountOutOfRange = errors.New("amount out of range")
)
