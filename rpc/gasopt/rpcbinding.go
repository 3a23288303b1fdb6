// Package gasopt contains RPC wrappers for GasOpt contract.
package gasopt

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Submission is a contract-specific gasopt.Submission type used by its methods.
type Submission struct {
	Owner             util.Uint160
	SubmittedAt       *big.Int
	Status            *big.Int
	GasEstimate       *big.Int
	OptimizationScore *big.Int
}

// Suggestion is a contract-specific gasopt.Suggestion type used by its methods.
type Suggestion struct {
	Severity         string
	Category         string
	Description      string
	EstimatedSavings *big.Int
	Implemented      bool
}

// Reputation is a contract-specific gasopt.Reputation type used by its methods.
type Reputation struct {
	TotalAnalyses           *big.Int
	SuccessfulOptimizations *big.Int
	ReputationScore         *big.Int
	TotalSavingsAchieved    *big.Int
}

// GasUsage is a contract-specific gasopt.GasUsage type used by its methods.
type GasUsage struct {
	FunctionName string
	GasUsed      *big.Int
	RecordedAt   *big.Int
	Optimized    bool
}

// Payment is a contract-specific gasopt.Payment type used by its methods.
type Payment struct {
	Amount   *big.Int
	Analyzer util.Uint160
	PaidAt   *big.Int
}

// Stats is a contract-specific gasopt.Stats type used by its methods.
type Stats struct {
	TotalContractsAnalyzed        *big.Int
	TotalGasSaved                 *big.Int
	TotalOptimizationsImplemented *big.Int
}

// Report is a contract-specific gasopt.Report type used by its methods.
type Report struct {
	ContractID       util.Uint160
	OriginalGas      *big.Int
	OptimizedGas     *big.Int
	GasSaved         *big.Int
	SavingsPercent   *big.Int
	Score            *big.Int
	TotalSuggestions *big.Int
	Completed        bool
	CompletedAt      *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CalculateScore invokes `calculateScore` method of contract.
func (c *ContractReader) CalculateScore(originalGas *big.Int, optimizedGas *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateScore", originalGas, optimizedGas))
}

// GetSubmission invokes `getSubmission` method of contract. It returns nil
// without an error if the contract is not submitted.
func (c *ContractReader) GetSubmission(contractID util.Uint160) (*Submission, error) {
	return itemToSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", contractID)))
}

// GetSuggestion invokes `getSuggestion` method of contract. It returns nil
// without an error if there is no such suggestion.
func (c *ContractReader) GetSuggestion(contractID util.Uint160, suggestionID *big.Int) (*Suggestion, error) {
	return itemToSuggestion(unwrap.Item(c.invoker.Call(c.hash, "getSuggestion", contractID, suggestionID)))
}

// GetSuggestionCount invokes `getSuggestionCount` method of contract.
func (c *ContractReader) GetSuggestionCount(contractID util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSuggestionCount", contractID))
}

// GetSuggestions invokes `getSuggestions` method of contract.
func (c *ContractReader) GetSuggestions(contractID util.Uint160) ([]*Suggestion, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "getSuggestions", contractID))
	if err != nil {
		return nil, err
	}

	res := make([]*Suggestion, len(arr))
	for i := range arr {
		res[i] = new(Suggestion)
		err = res[i].FromStackItem(arr[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return res, nil
}

// GetReputation invokes `getReputation` method of contract. It returns nil
// without an error if the analyzer has no reputation yet.
func (c *ContractReader) GetReputation(analyzer util.Uint160) (*Reputation, error) {
	return itemToReputation(unwrap.Item(c.invoker.Call(c.hash, "getReputation", analyzer)))
}

// GetGasUsage invokes `getGasUsage` method of contract. It returns nil
// without an error if there is no such record.
func (c *ContractReader) GetGasUsage(contractID util.Uint160, executionID *big.Int) (*GasUsage, error) {
	return itemToGasUsage(unwrap.Item(c.invoker.Call(c.hash, "getGasUsage", contractID, executionID)))
}

// GetPayment invokes `getPayment` method of contract. It returns nil
// without an error if the analysis has not been paid.
func (c *ContractReader) GetPayment(contractID util.Uint160) (*Payment, error) {
	return itemToPayment(unwrap.Item(c.invoker.Call(c.hash, "getPayment", contractID)))
}

// GetStats invokes `getStats` method of contract.
func (c *ContractReader) GetStats() (*Stats, error) {
	return itemToStats(unwrap.Item(c.invoker.Call(c.hash, "getStats")))
}

// MinimumFee invokes `minimumFee` method of contract.
func (c *ContractReader) MinimumFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minimumFee"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Submit creates a transaction invoking `submit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Submit(contractID util.Uint160, gasEstimate *big.Int, owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submit", contractID, gasEstimate, owner)
}

// SubmitTransaction creates a transaction invoking `submit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitTransaction(contractID util.Uint160, gasEstimate *big.Int, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submit", contractID, gasEstimate, owner)
}

// SubmitUnsigned creates a transaction invoking `submit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitUnsigned(contractID util.Uint160, gasEstimate *big.Int, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submit", nil, contractID, gasEstimate, owner)
}

// AddSuggestion creates a transaction invoking `addSuggestion` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
// Index of the suggestion can be read from the SuggestionAdded event.
func (c *Contract) AddSuggestion(contractID util.Uint160, severity string, category string, description string, estimatedSavings *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addSuggestion", contractID, severity, category, description, estimatedSavings)
}

// AddSuggestionTransaction creates a transaction invoking `addSuggestion` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddSuggestionTransaction(contractID util.Uint160, severity string, category string, description string, estimatedSavings *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addSuggestion", contractID, severity, category, description, estimatedSavings)
}

// AddSuggestionUnsigned creates a transaction invoking `addSuggestion` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddSuggestionUnsigned(contractID util.Uint160, severity string, category string, description string, estimatedSavings *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addSuggestion", nil, contractID, severity, category, description, estimatedSavings)
}

// MarkImplemented creates a transaction invoking `markImplemented` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MarkImplemented(contractID util.Uint160, suggestionID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "markImplemented", contractID, suggestionID)
}

// MarkImplementedTransaction creates a transaction invoking `markImplemented` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MarkImplementedTransaction(contractID util.Uint160, suggestionID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "markImplemented", contractID, suggestionID)
}

// MarkImplementedUnsigned creates a transaction invoking `markImplemented` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MarkImplementedUnsigned(contractID util.Uint160, suggestionID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "markImplemented", nil, contractID, suggestionID)
}

// RecordGasUsage creates a transaction invoking `recordGasUsage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecordGasUsage(contractID util.Uint160, executionID *big.Int, functionName string, gasUsed *big.Int, optimized bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recordGasUsage", contractID, executionID, functionName, gasUsed, optimized)
}

// RecordGasUsageTransaction creates a transaction invoking `recordGasUsage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecordGasUsageTransaction(contractID util.Uint160, executionID *big.Int, functionName string, gasUsed *big.Int, optimized bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recordGasUsage", contractID, executionID, functionName, gasUsed, optimized)
}

// RecordGasUsageUnsigned creates a transaction invoking `recordGasUsage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecordGasUsageUnsigned(contractID util.Uint160, executionID *big.Int, functionName string, gasUsed *big.Int, optimized bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recordGasUsage", nil, contractID, executionID, functionName, gasUsed, optimized)
}

// PayForAnalysis creates a transaction invoking `payForAnalysis` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
//
// The owner's signer of the actor must allow GAS contract to check its witness
// when called by GasOpt (CustomContracts scope with GAS hash or Global),
// otherwise the method fails with ErrTransferFailed.
func (c *Contract) PayForAnalysis(contractID util.Uint160, analyzer util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payForAnalysis", contractID, analyzer, amount)
}

// PayForAnalysisTransaction creates a transaction invoking `payForAnalysis` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayForAnalysisTransaction(contractID util.Uint160, analyzer util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payForAnalysis", contractID, analyzer, amount)
}

// PayForAnalysisUnsigned creates a transaction invoking `payForAnalysis` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayForAnalysisUnsigned(contractID util.Uint160, analyzer util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payForAnalysis", nil, contractID, analyzer, amount)
}

// GenerateReport creates a transaction invoking `generateReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
// The report itself is the result of the transaction execution, see
// ReportFromApplicationLog.
func (c *Contract) GenerateReport(contractID util.Uint160, originalGas *big.Int, optimizedGas *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "generateReport", contractID, originalGas, optimizedGas)
}

// GenerateReportTransaction creates a transaction invoking `generateReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GenerateReportTransaction(contractID util.Uint160, originalGas *big.Int, optimizedGas *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "generateReport", contractID, originalGas, optimizedGas)
}

// GenerateReportUnsigned creates a transaction invoking `generateReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GenerateReportUnsigned(contractID util.Uint160, originalGas *big.Int, optimizedGas *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "generateReport", nil, contractID, originalGas, optimizedGas)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// ReportFromApplicationLog retrieves the report returned by `generateReport`
// invocation from the provided [result.ApplicationLog]. FAULT execution is
// converted into the package error, see ErrorFromException.
func ReportFromApplicationLog(log *result.ApplicationLog) (*Report, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}
	if len(log.Executions) == 0 {
		return nil, errors.New("no executions")
	}

	ex := log.Executions[0]
	if ex.FaultException != "" {
		return nil, ErrorFromException(ex.FaultException)
	}
	if len(ex.Stack) != 1 {
		return nil, fmt.Errorf("unexpected stack size %d", len(ex.Stack))
	}

	res := new(Report)
	return res, res.FromStackItem(ex.Stack[0])
}

// itemToSubmission converts stack item into *Submission, Null item is
// converted into nil.
func itemToSubmission(item stackitem.Item, err error) (*Submission, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(Submission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Submission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Submission) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 5)
	if err != nil {
		return err
	}

	res.Owner, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	res.SubmittedAt, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}

	res.Status, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	res.GasEstimate, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasEstimate: %w", err)
	}

	res.OptimizationScore, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field OptimizationScore: %w", err)
	}

	return nil
}

// itemToSuggestion converts stack item into *Suggestion, Null item is
// converted into nil.
func itemToSuggestion(item stackitem.Item, err error) (*Suggestion, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(Suggestion)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Suggestion from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Suggestion) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 5)
	if err != nil {
		return err
	}

	res.Severity, err = itemToString(arr[0])
	if err != nil {
		return fmt.Errorf("field Severity: %w", err)
	}

	res.Category, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	res.Description, err = itemToString(arr[2])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	res.EstimatedSavings, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field EstimatedSavings: %w", err)
	}

	res.Implemented, err = arr[4].TryBool()
	if err != nil {
		return fmt.Errorf("field Implemented: %w", err)
	}

	return nil
}

// itemToReputation converts stack item into *Reputation, Null item is
// converted into nil.
func itemToReputation(item stackitem.Item, err error) (*Reputation, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(Reputation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Reputation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Reputation) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 4)
	if err != nil {
		return err
	}

	res.TotalAnalyses, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalAnalyses: %w", err)
	}

	res.SuccessfulOptimizations, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field SuccessfulOptimizations: %w", err)
	}

	res.ReputationScore, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReputationScore: %w", err)
	}

	res.TotalSavingsAchieved, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalSavingsAchieved: %w", err)
	}

	return nil
}

// itemToGasUsage converts stack item into *GasUsage, Null item is
// converted into nil.
func itemToGasUsage(item stackitem.Item, err error) (*GasUsage, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(GasUsage)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GasUsage from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GasUsage) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 4)
	if err != nil {
		return err
	}

	res.FunctionName, err = itemToString(arr[0])
	if err != nil {
		return fmt.Errorf("field FunctionName: %w", err)
	}

	res.GasUsed, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasUsed: %w", err)
	}

	res.RecordedAt, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field RecordedAt: %w", err)
	}

	res.Optimized, err = arr[3].TryBool()
	if err != nil {
		return fmt.Errorf("field Optimized: %w", err)
	}

	return nil
}

// itemToPayment converts stack item into *Payment, Null item is
// converted into nil.
func itemToPayment(item stackitem.Item, err error) (*Payment, error) {
	if err != nil || isNull(item) {
		return nil, err
	}
	var res = new(Payment)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Payment from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Payment) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 3)
	if err != nil {
		return err
	}

	res.Amount, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	res.Analyzer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Analyzer: %w", err)
	}

	res.PaidAt, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaidAt: %w", err)
	}

	return nil
}

// itemToStats converts stack item into *Stats.
func itemToStats(item stackitem.Item, err error) (*Stats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Stats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Stats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Stats) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 3)
	if err != nil {
		return err
	}

	res.TotalContractsAnalyzed, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalContractsAnalyzed: %w", err)
	}

	res.TotalGasSaved, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalGasSaved: %w", err)
	}

	res.TotalOptimizationsImplemented, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalOptimizationsImplemented: %w", err)
	}

	return nil
}

// FromStackItem retrieves fields of Report from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Report) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 9)
	if err != nil {
		return err
	}

	res.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	for i, f := range []struct {
		name string
		dst  **big.Int
	}{
		{"OriginalGas", &res.OriginalGas},
		{"OptimizedGas", &res.OptimizedGas},
		{"GasSaved", &res.GasSaved},
		{"SavingsPercent", &res.SavingsPercent},
		{"Score", &res.Score},
		{"TotalSuggestions", &res.TotalSuggestions},
	} {
		*f.dst, err = arr[i+1].TryInteger()
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
	}

	res.Completed, err = arr[7].TryBool()
	if err != nil {
		return fmt.Errorf("field Completed: %w", err)
	}

	res.CompletedAt, err = arr[8].TryInteger()
	if err != nil {
		return fmt.Errorf("field CompletedAt: %w", err)
	}

	return nil
}

func isNull(item stackitem.Item) bool {
	_, ok := item.(stackitem.Null)
	return ok
}

func structFields(item stackitem.Item, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
