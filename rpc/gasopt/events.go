package gasopt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// SubmissionCreatedEvent represents "SubmissionCreated" event emitted by the contract.
type SubmissionCreatedEvent struct {
	ContractID  util.Uint160
	Owner       util.Uint160
	GasEstimate *big.Int
}

// SuggestionAddedEvent represents "SuggestionAdded" event emitted by the contract.
type SuggestionAddedEvent struct {
	ContractID       util.Uint160
	Index            *big.Int
	Severity         string
	EstimatedSavings *big.Int
}

// SuggestionImplementedEvent represents "SuggestionImplemented" event emitted by the contract.
type SuggestionImplementedEvent struct {
	ContractID       util.Uint160
	Index            *big.Int
	EstimatedSavings *big.Int
}

// GasUsageRecordedEvent represents "GasUsageRecorded" event emitted by the contract.
type GasUsageRecordedEvent struct {
	ContractID  util.Uint160
	ExecutionID *big.Int
	GasUsed     *big.Int
}

// AnalysisPaidEvent represents "AnalysisPaid" event emitted by the contract.
type AnalysisPaidEvent struct {
	ContractID util.Uint160
	Analyzer   util.Uint160
	Amount     *big.Int
}

// ReportGeneratedEvent represents "ReportGenerated" event emitted by the contract.
type ReportGeneratedEvent struct {
	ContractID util.Uint160
	GasSaved   *big.Int
	Score      *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Analyzer        util.Uint160
	ReputationScore *big.Int
}

// eventItem is implemented by all event types of the package.
type eventItem interface {
	FromStackItem(item *stackitem.Array) error
}

// eventsFromApplicationLog decodes all events with the given name using
// newEvent to allocate each of them.
func eventsFromApplicationLog[T eventItem](log *result.ApplicationLog, name string, newEvent func() T) ([]T, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []T
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			event := newEvent()
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	return structFields(item, n)
}

// SubmissionCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionCreated" name from the provided [result.ApplicationLog].
func SubmissionCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionCreatedEvent, error) {
	return eventsFromApplicationLog(log, "SubmissionCreated", func() *SubmissionCreatedEvent { return new(SubmissionCreatedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to SubmissionCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionCreatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.Owner, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	e.GasEstimate, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasEstimate: %w", err)
	}

	return nil
}

// SuggestionAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "SuggestionAdded" name from the provided [result.ApplicationLog].
func SuggestionAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SuggestionAddedEvent, error) {
	return eventsFromApplicationLog(log, "SuggestionAdded", func() *SuggestionAddedEvent { return new(SuggestionAddedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to SuggestionAddedEvent or
// returns an error if it's not possible to do to so.
func (e *SuggestionAddedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.Index, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	e.Severity, err = itemToString(arr[2])
	if err != nil {
		return fmt.Errorf("field Severity: %w", err)
	}

	e.EstimatedSavings, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field EstimatedSavings: %w", err)
	}

	return nil
}

// SuggestionImplementedEventsFromApplicationLog retrieves a set of all emitted events
// with "SuggestionImplemented" name from the provided [result.ApplicationLog].
func SuggestionImplementedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SuggestionImplementedEvent, error) {
	return eventsFromApplicationLog(log, "SuggestionImplemented", func() *SuggestionImplementedEvent { return new(SuggestionImplementedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to SuggestionImplementedEvent or
// returns an error if it's not possible to do to so.
func (e *SuggestionImplementedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.Index, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	e.EstimatedSavings, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field EstimatedSavings: %w", err)
	}

	return nil
}

// GasUsageRecordedEventsFromApplicationLog retrieves a set of all emitted events
// with "GasUsageRecorded" name from the provided [result.ApplicationLog].
func GasUsageRecordedEventsFromApplicationLog(log *result.ApplicationLog) ([]*GasUsageRecordedEvent, error) {
	return eventsFromApplicationLog(log, "GasUsageRecorded", func() *GasUsageRecordedEvent { return new(GasUsageRecordedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to GasUsageRecordedEvent or
// returns an error if it's not possible to do to so.
func (e *GasUsageRecordedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.ExecutionID, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExecutionID: %w", err)
	}

	e.GasUsed, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasUsed: %w", err)
	}

	return nil
}

// AnalysisPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "AnalysisPaid" name from the provided [result.ApplicationLog].
func AnalysisPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*AnalysisPaidEvent, error) {
	return eventsFromApplicationLog(log, "AnalysisPaid", func() *AnalysisPaidEvent { return new(AnalysisPaidEvent) })
}

// FromStackItem converts provided [stackitem.Array] to AnalysisPaidEvent or
// returns an error if it's not possible to do to so.
func (e *AnalysisPaidEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.Analyzer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Analyzer: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReportGeneratedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportGenerated" name from the provided [result.ApplicationLog].
func ReportGeneratedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportGeneratedEvent, error) {
	return eventsFromApplicationLog(log, "ReportGenerated", func() *ReportGeneratedEvent { return new(ReportGeneratedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to ReportGeneratedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportGeneratedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.ContractID, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field ContractID: %w", err)
	}

	e.GasSaved, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasSaved: %w", err)
	}

	e.Score, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	return eventsFromApplicationLog(log, "ReputationUpdated", func() *ReputationUpdatedEvent { return new(ReputationUpdatedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Analyzer, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Analyzer: %w", err)
	}

	e.ReputationScore, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReputationScore: %w", err)
	}

	return nil
}
