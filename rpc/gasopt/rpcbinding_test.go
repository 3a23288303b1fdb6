package gasopt

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInvoker struct {
	method string
	params []any

	res *result.Invoke
	err error
}

func (x *testInvoker) Call(_ util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	x.method = operation
	x.params = params
	return x.res, x.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func ints(vals ...int64) []stackitem.Item {
	res := make([]stackitem.Item, len(vals))
	for i := range vals {
		res[i] = stackitem.Make(vals[i])
	}
	return res
}

func TestContractReader_GetSubmission(t *testing.T) {
	var (
		contractID = util.Uint160{1, 2, 3}
		owner      = util.Uint160{4, 5, 6}
		inv        = new(testInvoker)
		r          = NewReader(inv, util.Uint160{42})
	)

	t.Run("missing", func(t *testing.T) {
		inv.res = halt(stackitem.Null{})

		s, err := r.GetSubmission(contractID)
		require.NoError(t, err)
		require.Nil(t, s)
		require.Equal(t, "getSubmission", inv.method)
		require.Equal(t, []any{contractID}, inv.params)
	})

	t.Run("present", func(t *testing.T) {
		inv.res = halt(stackitem.NewStruct(append([]stackitem.Item{
			stackitem.NewByteArray(owner.BytesBE()),
		}, ints(17, StatusCompleted, 2000, 100)...)))

		s, err := r.GetSubmission(contractID)
		require.NoError(t, err)
		require.Equal(t, owner, s.Owner)
		require.EqualValues(t, 17, s.SubmittedAt.Int64())
		require.EqualValues(t, StatusCompleted, s.Status.Int64())
		require.EqualValues(t, 2000, s.GasEstimate.Int64())
		require.EqualValues(t, 100, s.OptimizationScore.Int64())
	})

	t.Run("invalid owner", func(t *testing.T) {
		inv.res = halt(stackitem.NewStruct(append([]stackitem.Item{
			stackitem.NewByteArray([]byte{1, 2, 3}),
		}, ints(17, StatusCompleted, 2000, 100)...)))

		_, err := r.GetSubmission(contractID)
		require.ErrorContains(t, err, "field Owner")
	})

	t.Run("fault", func(t *testing.T) {
		inv.res = &result.Invoke{State: "FAULT", FaultException: "invalid input: invalid contract ID"}

		_, err := r.GetSubmission(contractID)
		require.ErrorIs(t, ResolveError(err), ErrInvalidInput)
	})

	t.Run("call error", func(t *testing.T) {
		inv.err = errors.New("connection refused")
		defer func() { inv.err = nil }()

		_, err := r.GetSubmission(contractID)
		require.ErrorContains(t, err, "connection refused")
	})
}

func TestContractReader_GetSuggestions(t *testing.T) {
	inv := new(testInvoker)
	r := NewReader(inv, util.Uint160{42})

	suggestion := func(severity string, savings int64, implemented bool) stackitem.Item {
		return stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray([]byte(severity)),
			stackitem.NewByteArray([]byte("storage")),
			stackitem.NewByteArray([]byte("cache the value")),
			stackitem.Make(savings),
			stackitem.NewBool(implemented),
		})
	}

	inv.res = halt(stackitem.NewArray([]stackitem.Item{
		suggestion(SeverityHigh, 500, true),
		suggestion(SeverityLow, 10, false),
	}))

	res, err := r.GetSuggestions(util.Uint160{1})
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, SeverityHigh, res[0].Severity)
	require.Equal(t, "storage", res[0].Category)
	require.Equal(t, "cache the value", res[0].Description)
	require.EqualValues(t, 500, res[0].EstimatedSavings.Int64())
	require.True(t, res[0].Implemented)
	require.Equal(t, SeverityLow, res[1].Severity)
	require.False(t, res[1].Implemented)

	inv.res = halt(stackitem.NewArray([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetSuggestions(util.Uint160{1})
	require.ErrorContains(t, err, "item 0")
}

func TestContractReader_Scalars(t *testing.T) {
	inv := new(testInvoker)
	r := NewReader(inv, util.Uint160{42})

	inv.res = halt(stackitem.Make(MinimumFee))
	fee, err := r.MinimumFee()
	require.NoError(t, err)
	require.EqualValues(t, MinimumFee, fee.Int64())

	inv.res = halt(stackitem.Make(100))
	score, err := r.CalculateScore(big.NewInt(1000), big.NewInt(400))
	require.NoError(t, err)
	require.EqualValues(t, 100, score.Int64())
	require.Equal(t, "calculateScore", inv.method)

	inv.res = halt(stackitem.NewStruct(ints(3, 9000, 2)))
	stats, err := r.GetStats()
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalContractsAnalyzed.Int64())
	require.EqualValues(t, 9000, stats.TotalGasSaved.Int64())
	require.EqualValues(t, 2, stats.TotalOptimizationsImplemented.Int64())

	inv.res = halt(stackitem.NewStruct(ints(2, 2, 6, 6500)))
	rep, err := r.GetReputation(util.Uint160{7})
	require.NoError(t, err)
	require.EqualValues(t, 6, rep.ReputationScore.Int64())
	require.EqualValues(t, 6500, rep.TotalSavingsAchieved.Int64())

	inv.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray([]byte("transfer")),
		stackitem.Make(1200),
		stackitem.Make(5),
		stackitem.NewBool(true),
	}))
	usage, err := r.GetGasUsage(util.Uint160{1}, big.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, "transfer", usage.FunctionName)
	require.True(t, usage.Optimized)

	analyzer := util.Uint160{9, 9}
	inv.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(MinimumFee),
		stackitem.NewByteArray(analyzer.BytesBE()),
		stackitem.Make(11),
	}))
	payment, err := r.GetPayment(util.Uint160{1})
	require.NoError(t, err)
	require.Equal(t, analyzer, payment.Analyzer)
	require.EqualValues(t, 11, payment.PaidAt.Int64())
}

func TestReportFromApplicationLog(t *testing.T) {
	contractID := util.Uint160{1, 2, 3}

	_, err := ReportFromApplicationLog(nil)
	require.Error(t, err)

	log := &result.ApplicationLog{Executions: []state.Execution{{
		Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(contractID.BytesBE()),
			stackitem.Make(5000),
			stackitem.Make(2000),
			stackitem.Make(3000),
			stackitem.Make(60),
			stackitem.Make(100),
			stackitem.Make(1),
			stackitem.NewBool(true),
			stackitem.Make(12),
		})},
	}}}

	rep, err := ReportFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, contractID, rep.ContractID)
	require.EqualValues(t, 5000, rep.OriginalGas.Int64())
	require.EqualValues(t, 2000, rep.OptimizedGas.Int64())
	require.EqualValues(t, 3000, rep.GasSaved.Int64())
	require.EqualValues(t, 60, rep.SavingsPercent.Int64())
	require.EqualValues(t, 100, rep.Score.Int64())
	require.EqualValues(t, 1, rep.TotalSuggestions.Int64())
	require.True(t, rep.Completed)
	require.EqualValues(t, 12, rep.CompletedAt.Int64())

	log.Executions[0].FaultException = `at instruction 501 (THROW): unhandled exception: "unauthorized: owner witness check failed"`
	_, err = ReportFromApplicationLog(log)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestEventsFromApplicationLog(t *testing.T) {
	var (
		contractID = util.Uint160{1}
		analyzer   = util.Uint160{2}
	)

	log := &result.ApplicationLog{Executions: []state.Execution{{
		Events: []state.NotificationEvent{
			{Name: "Transfer", Item: stackitem.NewArray(nil)},
			{Name: "AnalysisPaid", Item: stackitem.NewArray([]stackitem.Item{
				stackitem.NewByteArray(contractID.BytesBE()),
				stackitem.NewByteArray(analyzer.BytesBE()),
				stackitem.Make(MinimumFee),
			})},
			{Name: "ReputationUpdated", Item: stackitem.NewArray([]stackitem.Item{
				stackitem.NewByteArray(analyzer.BytesBE()),
				stackitem.Make(3),
			})},
		},
	}}}

	paid, err := AnalysisPaidEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	require.Equal(t, contractID, paid[0].ContractID)
	require.Equal(t, analyzer, paid[0].Analyzer)
	require.EqualValues(t, MinimumFee, paid[0].Amount.Int64())

	reps, err := ReputationUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	require.EqualValues(t, 3, reps[0].ReputationScore.Int64())

	reports, err := ReportGeneratedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, reports)

	log.Executions[0].Events = append(log.Executions[0].Events, state.NotificationEvent{
		Name: "ReportGenerated", Item: stackitem.NewArray(ints(1, 2)),
	})
	_, err = ReportGeneratedEventsFromApplicationLog(log)
	require.ErrorContains(t, err, "ReportGeneratedEvent")

	_, err = SuggestionAddedEventsFromApplicationLog(nil)
	require.Error(t, err)
}
