package gasopt

import (
	"github.com/nspcc-dev/gasopt-contract/common"
	"github.com/nspcc-dev/gasopt-contract/contracts/gasopt/gasoptconst"
	"github.com/nspcc-dev/gasopt-contract/contracts/gasopt/scoring"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Submission is a contract registered for the optimization review.
	Submission struct {
		Owner             interop.Hash160
		SubmittedAt       int
		Status            int
		GasEstimate       int
		OptimizationScore int
	}

	// Suggestion is a single optimization proposal for the submitted contract.
	Suggestion struct {
		Severity         string
		Category         string
		Description      string
		EstimatedSavings int
		Implemented      bool
	}

	// SuggestionCounter holds the number of suggestions of the contract, it is
	// also the index of the next one.
	SuggestionCounter struct {
		Count int
	}

	// Reputation accumulates verified outcomes of the analyzer.
	Reputation struct {
		TotalAnalyses           int
		SuccessfulOptimizations int
		ReputationScore         int
		TotalSavingsAchieved    int
	}

	// GasUsage is a gas measurement of a single execution reported by the owner.
	GasUsage struct {
		FunctionName string
		GasUsed      int
		RecordedAt   int
		Optimized    bool
	}

	// Payment is the latest payment of the owner to an analyzer.
	Payment struct {
		Amount   int
		Analyzer interop.Hash160
		PaidAt   int
	}

	// Stats contains network-wide counters.
	Stats struct {
		TotalContractsAnalyzed        int
		TotalGasSaved                 int
		TotalOptimizationsImplemented int
	}

	// Report is a result of generateReport.
	Report struct {
		ContractID       interop.Hash160
		OriginalGas      int
		OptimizedGas     int
		GasSaved         int
		SavingsPercent   int
		Score            int
		TotalSuggestions int
		Completed        bool
		CompletedAt      int
	}
)

const (
	submissionPrefix = 's'
	suggestionPrefix = 'g'
	counterPrefix    = 'n'
	reputationPrefix = 'r'
	gasUsagePrefix   = 'u'
	paymentPrefix    = 'p'

	statsKey = 't'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	common.SetSerialized(ctx, []byte{statsKey}, Stats{})

	runtime.Log("gasopt contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("gasopt contract updated")
}

// Submit registers contract for the review. Transaction must be witnessed by
// the owner, the owner becomes the only account allowed to manage the
// submission afterwards. A contract can be submitted only once.
//
// Produces SubmissionCreated notification.
func Submit(contractID interop.Hash160, gasEstimate int, owner interop.Hash160) {
	checkHash(contractID, "contract ID")
	checkHash(owner, "owner")
	checkOwner(owner)

	ctx := storage.GetContext()

	if getSubmission(ctx, contractID) != nil {
		panic(gasoptconst.ErrAlreadyExists + ": submission")
	}
	if gasEstimate <= 0 {
		panic(gasoptconst.ErrInvalidInput + ": gas estimate must be positive")
	}

	common.SetSerialized(ctx, submissionKey(contractID), Submission{
		Owner:       owner,
		SubmittedAt: ledger.CurrentIndex(),
		Status:      gasoptconst.StatusPending,
		GasEstimate: gasEstimate,
	})
	common.SetSerialized(ctx, counterKey(contractID), SuggestionCounter{})

	stats := getStats(ctx)
	// Struct fields are incremented with += 1, ++ on a field leaves an extra
	// item on the stack after compilation.
	stats.TotalContractsAnalyzed += 1
	common.SetSerialized(ctx, []byte{statsKey}, stats)

	runtime.Notify("SubmissionCreated", contractID, owner, gasEstimate)
}

// AddSuggestion stores a new suggestion for the submitted contract and
// returns its index. Indices are sequential starting from 0. Any account can
// add suggestions.
//
// Produces SuggestionAdded notification.
func AddSuggestion(contractID interop.Hash160, severity, category, description string, estimatedSavings int) int {
	checkHash(contractID, "contract ID")

	ctx := storage.GetContext()

	if getSubmission(ctx, contractID) == nil {
		panic(gasoptconst.ErrNotFound + ": submission")
	}
	rawCounter := common.GetSerialized(ctx, counterKey(contractID))
	if rawCounter == nil {
		panic(gasoptconst.ErrNotFound + ": suggestion counter")
	}
	if !isSeverity(severity) {
		panic(gasoptconst.ErrInvalidInput + ": unknown severity " + severity)
	}
	if estimatedSavings <= 0 {
		panic(gasoptconst.ErrInvalidInput + ": estimated savings must be positive")
	}
	checkText(category, gasoptconst.MaxCategoryLen, "category")
	checkText(description, gasoptconst.MaxDescriptionLen, "description")

	counter := rawCounter.(SuggestionCounter)
	index := counter.Count

	common.SetSerialized(ctx, suggestionKey(contractID, index), Suggestion{
		Severity:         severity,
		Category:         category,
		Description:      description,
		EstimatedSavings: estimatedSavings,
	})

	counter.Count += 1
	common.SetSerialized(ctx, counterKey(contractID), counter)

	runtime.Notify("SuggestionAdded", contractID, index, severity, estimatedSavings)

	return index
}

// MarkImplemented marks the suggestion as implemented. It can be invoked only
// by the submission owner and only once per suggestion. Estimated savings of
// the suggestion are added to the total saved gas.
//
// Produces SuggestionImplemented notification.
func MarkImplemented(contractID interop.Hash160, suggestionID int) {
	checkHash(contractID, "contract ID")

	ctx := storage.GetContext()

	sub := mustGetSubmission(ctx, contractID)
	rawSuggestion := common.GetSerialized(ctx, suggestionKey(contractID, suggestionID))
	if rawSuggestion == nil {
		panic(gasoptconst.ErrNotFound + ": suggestion")
	}
	checkOwner(sub.Owner)

	suggestion := rawSuggestion.(Suggestion)
	if suggestion.Implemented {
		panic(gasoptconst.ErrInvalidInput + ": suggestion is already implemented")
	}

	suggestion.Implemented = true
	common.SetSerialized(ctx, suggestionKey(contractID, suggestionID), suggestion)

	stats := getStats(ctx)
	stats.TotalGasSaved += suggestion.EstimatedSavings
	stats.TotalOptimizationsImplemented += 1
	common.SetSerialized(ctx, []byte{statsKey}, stats)

	runtime.Notify("SuggestionImplemented", contractID, suggestionID, suggestion.EstimatedSavings)
}

// RecordGasUsage saves gas measurement of the execution. Execution ID is
// chosen by the owner, a record with the same ID is overwritten. It can be
// invoked only by the submission owner.
//
// Produces GasUsageRecorded notification.
func RecordGasUsage(contractID interop.Hash160, executionID int, functionName string, gasUsed int, optimized bool) {
	checkHash(contractID, "contract ID")

	ctx := storage.GetContext()

	sub := mustGetSubmission(ctx, contractID)
	checkOwner(sub.Owner)

	if executionID < 0 {
		panic(gasoptconst.ErrInvalidInput + ": negative execution ID")
	}
	if gasUsed < 0 {
		panic(gasoptconst.ErrInvalidInput + ": negative gas used")
	}
	checkText(functionName, gasoptconst.MaxFunctionNameLen, "function name")

	common.SetSerialized(ctx, gasUsageKey(contractID, executionID), GasUsage{
		FunctionName: functionName,
		GasUsed:      gasUsed,
		RecordedAt:   ledger.CurrentIndex(),
		Optimized:    optimized,
	})

	runtime.Notify("GasUsageRecorded", contractID, executionID, gasUsed)
}

// PayForAnalysis transfers GAS from the submission owner to the analyzer and
// records the payment, replacing the previous one. It can be invoked only by
// the submission owner, amount must not be less than gasoptconst.MinimumFee.
// The analyzer of the latest payment gains reputation on generateReport.
//
// The owner's witness must be valid for GAS called from this contract, i.e.
// signer scope must be CustomContracts including GAS hash or Global.
// CalledByEntry is not enough, the transfer fails then.
//
// Produces AnalysisPaid notification.
func PayForAnalysis(contractID, analyzer interop.Hash160, amount int) {
	checkHash(contractID, "contract ID")
	checkHash(analyzer, "analyzer")

	ctx := storage.GetContext()

	sub := mustGetSubmission(ctx, contractID)
	checkOwner(sub.Owner)

	if amount < gasoptconst.MinimumFee {
		panic(gasoptconst.ErrInsufficientPayment + ": minimum fee is " + std.Itoa(gasoptconst.MinimumFee, 10))
	}

	if !gas.Transfer(sub.Owner, analyzer, amount, nil) {
		panic(gasoptconst.ErrTransferFailed + ": GAS transfer to analyzer")
	}

	common.SetSerialized(ctx, paymentKey(contractID), Payment{
		Amount:   amount,
		Analyzer: analyzer,
		PaidAt:   ledger.CurrentIndex(),
	})

	runtime.Notify("AnalysisPaid", contractID, analyzer, amount)
}

// GenerateReport completes the submission with the final gas measurements.
// It can be invoked only by the submission owner. Saved gas is added to the
// total statistics and, if the analysis was paid, to the reputation of the
// paid analyzer. The report can be regenerated, every call is accounted.
//
// Produces ReportGenerated notification and ReputationUpdated notification
// if the analysis was paid.
func GenerateReport(contractID interop.Hash160, originalGas, optimizedGas int) Report {
	checkHash(contractID, "contract ID")

	ctx := storage.GetContext()

	sub := mustGetSubmission(ctx, contractID)
	checkOwner(sub.Owner)

	if !scoring.Valid(originalGas, optimizedGas) {
		panic(gasoptconst.ErrInvalidInput + ": optimized gas must be non-negative and less than original")
	}

	var (
		gasSaved = originalGas - optimizedGas
		score    = scoring.Score(originalGas, optimizedGas)
		pct      = scoring.SavingsPercent(originalGas, optimizedGas)
		height   = ledger.CurrentIndex()
		counter  = common.GetSerialized(ctx, counterKey(contractID)).(SuggestionCounter)
	)

	sub.Status = gasoptconst.StatusCompleted
	sub.OptimizationScore = score
	sub.GasEstimate = optimizedGas
	common.SetSerialized(ctx, submissionKey(contractID), sub)

	// Savings of implemented suggestions are not subtracted, both tallies
	// go to the same counter.
	stats := getStats(ctx)
	stats.TotalGasSaved += gasSaved
	common.SetSerialized(ctx, []byte{statsKey}, stats)

	rawPayment := common.GetSerialized(ctx, paymentKey(contractID))
	if rawPayment != nil {
		payment := rawPayment.(Payment)
		updateReputation(ctx, payment.Analyzer, gasSaved)
	}

	runtime.Notify("ReportGenerated", contractID, gasSaved, score)

	return Report{
		ContractID:       contractID,
		OriginalGas:      originalGas,
		OptimizedGas:     optimizedGas,
		GasSaved:         gasSaved,
		SavingsPercent:   pct,
		Score:            score,
		TotalSuggestions: counter.Count,
		Completed:        true,
		CompletedAt:      height,
	}
}

// CalculateScore returns optimization score for the given gas values without
// touching any state. Optimized gas must be non-negative and less than
// the original one.
func CalculateScore(originalGas, optimizedGas int) int {
	if !scoring.Valid(originalGas, optimizedGas) {
		panic(gasoptconst.ErrInvalidInput + ": optimized gas must be non-negative and less than original")
	}

	return scoring.Score(originalGas, optimizedGas)
}

// GetSubmission returns Submission of the contract or nil.
func GetSubmission(contractID interop.Hash160) any {
	return getSubmission(storage.GetReadOnlyContext(), contractID)
}

// GetSuggestion returns Suggestion by its index or nil.
func GetSuggestion(contractID interop.Hash160, suggestionID int) any {
	return common.GetSerialized(storage.GetReadOnlyContext(), suggestionKey(contractID, suggestionID))
}

// GetSuggestionCount returns the number of suggestions added for the
// contract.
func GetSuggestionCount(contractID interop.Hash160) int {
	raw := common.GetSerialized(storage.GetReadOnlyContext(), counterKey(contractID))
	if raw == nil {
		return 0
	}

	return raw.(SuggestionCounter).Count
}

// GetSuggestions returns all suggestions of the contract ordered by index.
func GetSuggestions(contractID interop.Hash160) []Suggestion {
	ctx := storage.GetReadOnlyContext()

	raw := common.GetSerialized(ctx, counterKey(contractID))
	if raw == nil {
		return []Suggestion{}
	}

	count := raw.(SuggestionCounter).Count
	res := []Suggestion{}
	for i := 0; i < count; i++ {
		res = append(res, common.GetSerialized(ctx, suggestionKey(contractID, i)).(Suggestion))
	}

	return res
}

// GetReputation returns Reputation of the analyzer or nil if the analyzer has
// never been credited.
func GetReputation(analyzer interop.Hash160) any {
	return common.GetSerialized(storage.GetReadOnlyContext(), reputationKey(analyzer))
}

// GetGasUsage returns GasUsage record of the execution or nil.
func GetGasUsage(contractID interop.Hash160, executionID int) any {
	return common.GetSerialized(storage.GetReadOnlyContext(), gasUsageKey(contractID, executionID))
}

// GetPayment returns the latest Payment for the contract analysis or nil.
func GetPayment(contractID interop.Hash160) any {
	return common.GetSerialized(storage.GetReadOnlyContext(), paymentKey(contractID))
}

// GetStats returns network-wide statistics.
func GetStats() Stats {
	return getStats(storage.GetReadOnlyContext())
}

// MinimumFee returns the least amount accepted by payForAnalysis.
func MinimumFee() int {
	return gasoptconst.MinimumFee
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkOwner panics unless the transaction is witnessed by the submission
// owner.
func checkOwner(owner interop.Hash160) {
	common.CheckWitnessWithPanic(owner, gasoptconst.ErrUnauthorized+": owner witness check failed")
}

func checkHash(h interop.Hash160, name string) {
	if len(h) != interop.Hash160Len {
		panic(gasoptconst.ErrInvalidInput + ": invalid " + name)
	}
}

func checkText(s string, maxLen int, name string) {
	if len(s) == 0 || len(s) > maxLen {
		panic(gasoptconst.ErrInvalidInput + ": invalid " + name + " length")
	}
}

func isSeverity(s string) bool {
	switch s {
	case gasoptconst.SeverityCritical, gasoptconst.SeverityHigh,
		gasoptconst.SeverityMedium, gasoptconst.SeverityLow:
		return true
	default:
		return false
	}
}

func getSubmission(ctx storage.Context, contractID interop.Hash160) any {
	return common.GetSerialized(ctx, submissionKey(contractID))
}

func mustGetSubmission(ctx storage.Context, contractID interop.Hash160) Submission {
	raw := getSubmission(ctx, contractID)
	if raw == nil {
		panic(gasoptconst.ErrNotFound + ": submission")
	}

	return raw.(Submission)
}

// getOrCreateReputation returns stored reputation of the analyzer or a zero
// one if the analyzer is unknown yet.
func getOrCreateReputation(ctx storage.Context, analyzer interop.Hash160) Reputation {
	raw := common.GetSerialized(ctx, reputationKey(analyzer))
	if raw == nil {
		return Reputation{}
	}

	return raw.(Reputation)
}

// updateReputation credits the analyzer with saved gas. It is not
// idempotent: every call counts as a new successful analysis.
func updateReputation(ctx storage.Context, analyzer interop.Hash160, gasSaved int) {
	rep := getOrCreateReputation(ctx, analyzer)
	rep.TotalAnalyses += 1
	rep.SuccessfulOptimizations += 1
	rep.ReputationScore += gasSaved / gasoptconst.ReputationDivisor
	rep.TotalSavingsAchieved += gasSaved
	common.SetSerialized(ctx, reputationKey(analyzer), rep)

	runtime.Notify("ReputationUpdated", analyzer, rep.ReputationScore)
}

func getStats(ctx storage.Context) Stats {
	raw := common.GetSerialized(ctx, []byte{statsKey})
	if raw == nil {
		return Stats{}
	}

	return raw.(Stats)
}

func submissionKey(contractID interop.Hash160) []byte {
	return append([]byte{submissionPrefix}, contractID...)
}

func counterKey(contractID interop.Hash160) []byte {
	return append([]byte{counterPrefix}, contractID...)
}

func suggestionKey(contractID interop.Hash160, index int) []byte {
	return append(append([]byte{suggestionPrefix}, contractID...), convert.ToBytes(index)...)
}

func gasUsageKey(contractID interop.Hash160, executionID int) []byte {
	return append(append([]byte{gasUsagePrefix}, contractID...), convert.ToBytes(executionID)...)
}

func paymentKey(contractID interop.Hash160) []byte {
	return append([]byte{paymentPrefix}, contractID...)
}

func reputationKey(analyzer interop.Hash160) []byte {
	return append([]byte{reputationPrefix}, analyzer...)
}
