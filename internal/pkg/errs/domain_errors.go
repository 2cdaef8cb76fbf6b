package errs

import "errors"

// Policy rejections and operational sentinels shared by the usecase layers.
// Policy rejections are expected outcomes, not faults; handlers translate
// them into structured responses with the allowance/ledger context attached.
var (
	// Slot reservation rejections
	ErrAllowanceExceeded = errors.New("allowance exceeded")
	ErrSalesClosed       = errors.New("sales closed")
	ErrInvalidEvent      = errors.New("invalid event")

	// Purchase intent rejections
	ErrNoSelection        = errors.New("no selection for showtime")
	ErrDailyLimitExceeded = errors.New("daily purchase limit exceeded")

	// Validation errors
	ErrInvalidTicketCount = errors.New("ticket count must be positive")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
