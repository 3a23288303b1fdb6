package gasopt

import (
	"github.com/nspcc-dev/gasopt-contract/contracts/gasopt/gasoptconst"
)

const (
	// MinimumFee is the least amount of GAS fractions accepted by PayForAnalysis.
	MinimumFee = gasoptconst.MinimumFee

	// StatusPending is a status of the submission without a report.
	StatusPending = gasoptconst.StatusPending
	// StatusCompleted is a status of the submission with a generated report.
	StatusCompleted = gasoptconst.StatusCompleted
)

// Suggestion severities accepted by AddSuggestion.
const (
	SeverityCritical = gasoptconst.SeverityCritical
	SeverityHigh     = gasoptconst.SeverityHigh
	SeverityMedium   = gasoptconst.SeverityMedium
	SeverityLow      = gasoptconst.SeverityLow
)
