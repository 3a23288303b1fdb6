package main

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/gasopt-contract/rpc/gasopt"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseHash160(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	res, err := parseHash160(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash160(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseHash160("not a hash")
	require.Error(t, err)
}

func TestRun_Score(t *testing.T) {
	var buf bytes.Buffer

	err := run(zap.NewNop(), &buf, "", "", time.Second, []string{"score", "5000", "2000"})
	require.NoError(t, err)
	require.Equal(t, "gas saved: 3000\nsavings:   60%\nscore:     100\n", buf.String())

	err = run(zap.NewNop(), &buf, "", "", time.Second, []string{"score", "1000", "1000"})
	require.ErrorIs(t, err, gasopt.ErrInvalidInput)

	err = run(zap.NewNop(), &buf, "", "", time.Second, []string{"score", "1000"})
	require.ErrorIs(t, err, errUsage)

	err = run(zap.NewNop(), &buf, "", "", time.Second, []string{"score", "x", "1"})
	require.Error(t, err)
}

func TestRun_Usage(t *testing.T) {
	var buf bytes.Buffer

	require.ErrorIs(t, run(zap.NewNop(), &buf, "", "", time.Second, nil), errUsage)
	require.ErrorIs(t, run(zap.NewNop(), &buf, "", "", time.Second, []string{"stats"}), errUsage)
	require.ErrorIs(t, run(zap.NewNop(), &buf, "http://localhost:30333", "", time.Second, []string{"stats"}), errUsage)
	require.Empty(t, buf.String())
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer

	printSuggestions(&buf, []*gasopt.Suggestion{
		{Severity: gasopt.SeverityHigh, Category: "storage", Description: "pack fields", EstimatedSavings: big.NewInt(700), Implemented: true},
		{Severity: gasopt.SeverityLow, Category: "loops", Description: "hoist", EstimatedSavings: big.NewInt(5)},
	})
	require.Equal(t, "[x] #0 high/storage (saves 700): pack fields\n[ ] #1 low/loops (saves 5): hoist\n", buf.String())
}
