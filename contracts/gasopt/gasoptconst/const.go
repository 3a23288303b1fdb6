// Package gasoptconst holds constants shared by the GasOpt contract and its
// off-chain clients.
package gasoptconst

const (
	// MinimumFee is the least amount of GAS fractions (1e-8 GAS) accepted by
	// payForAnalysis.
	MinimumFee = 1_000_000

	// MaxCategoryLen is the upper bound of a suggestion category in bytes.
	MaxCategoryLen = 50
	// MaxDescriptionLen is the upper bound of a suggestion description in bytes.
	MaxDescriptionLen = 500
	// MaxFunctionNameLen is the upper bound of a gas usage function name in bytes.
	MaxFunctionNameLen = 50

	// ReputationDivisor converts saved gas into reputation points.
	ReputationDivisor = 1000
)

// Submission statuses.
const (
	StatusPending   = 0
	StatusCompleted = 1
)

// Suggestion severities.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Error kinds. Every fault of the contract starts with one of them followed
// by ": " and a detail.
const (
	ErrAlreadyExists       = "already exists"
	ErrNotFound            = "not found"
	ErrInvalidInput        = "invalid input"
	ErrUnauthorized        = "unauthorized"
	ErrInsufficientPayment = "insufficient payment"
	ErrTransferFailed      = "transfer failed"
)
