package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/nspcc-dev/gasopt-contract/contracts/gasopt/scoring"
	"github.com/nspcc-dev/gasopt-contract/rpc/gasopt"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `Usage: gasopt-inspect [flags] <command> [args]

Commands:
  stats                      network-wide statistics
  submission <contract>      submission of the contract
  suggestions <contract>     all suggestions of the contract
  reputation <analyzer>      reputation of the analyzer
  payment <contract>         latest payment for the contract analysis
  score <original> <optimized>
                             score preview, computed locally

Flags:
`

var errUsage = errors.New("invalid command line")

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "GasOpt contract address or LE hash")
	timeout := flag.Duration("timeout", 15*time.Second, "Timeout of the RPC dial and requests")
	debug := flag.Bool("debug", false, "Enable debug logs")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log := newLogger(*debug)
	defer func() { _ = log.Sync() }()

	err := run(log, os.Stdout, *neoRPCEndpoint, *contractHash, *timeout, flag.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		log.Fatal("command failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := c.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	return log
}

func run(log *zap.Logger, w io.Writer, endpoint, contract string, timeout time.Duration, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]
	if cmd == "score" {
		return printScore(w, args)
	}

	switch {
	case endpoint == "":
		return fmt.Errorf("%w: missing Neo RPC endpoint", errUsage)
	case contract == "":
		return fmt.Errorf("%w: missing GasOpt contract", errUsage)
	}

	h, err := parseHash160(contract)
	if err != nil {
		return fmt.Errorf("invalid contract: %w", err)
	}

	b, err := newRemoteBlockchain(log, endpoint, h, timeout)
	if err != nil {
		return err
	}
	defer b.close()

	log.Debug("executing command", zap.String("command", cmd), zap.Uint32("height", b.currentBlock))

	err = query(w, b.reader, cmd, args)
	return gasopt.ResolveError(err)
}

func query(w io.Writer, r *gasopt.ContractReader, cmd string, args []string) error {
	if cmd == "stats" {
		s, err := r.GetStats()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "contracts analyzed:        %s\n", s.TotalContractsAnalyzed)
		fmt.Fprintf(w, "gas saved:                 %s\n", s.TotalGasSaved)
		fmt.Fprintf(w, "optimizations implemented: %s\n", s.TotalOptimizationsImplemented)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: %s expects exactly one argument", errUsage, cmd)
	}

	h, err := parseHash160(args[0])
	if err != nil {
		return err
	}

	switch cmd {
	case "submission":
		s, err := r.GetSubmission(h)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: submission of %s", gasopt.ErrNotFound, args[0])
		}
		printSubmission(w, s)
	case "suggestions":
		list, err := r.GetSuggestions(h)
		if err != nil {
			return err
		}
		printSuggestions(w, list)
	case "reputation":
		rep, err := r.GetReputation(h)
		if err != nil {
			return err
		}
		if rep == nil {
			return fmt.Errorf("%w: reputation of %s", gasopt.ErrNotFound, args[0])
		}
		fmt.Fprintf(w, "analyses:      %s\n", rep.TotalAnalyses)
		fmt.Fprintf(w, "successful:    %s\n", rep.SuccessfulOptimizations)
		fmt.Fprintf(w, "score:         %s\n", rep.ReputationScore)
		fmt.Fprintf(w, "total savings: %s\n", rep.TotalSavingsAchieved)
	case "payment":
		p, err := r.GetPayment(h)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: payment for %s", gasopt.ErrNotFound, args[0])
		}
		fmt.Fprintf(w, "amount:   %s\n", p.Amount)
		fmt.Fprintf(w, "analyzer: %s\n", address.Uint160ToString(p.Analyzer))
		fmt.Fprintf(w, "paid at:  %s\n", p.PaidAt)
	default:
		return fmt.Errorf("%w: unknown command %s", errUsage, cmd)
	}

	return nil
}

func printSubmission(w io.Writer, s *gasopt.Submission) {
	status := "pending"
	if s.Status.Cmp(big.NewInt(gasopt.StatusCompleted)) == 0 {
		status = "completed"
	}

	fmt.Fprintf(w, "owner:        %s\n", address.Uint160ToString(s.Owner))
	fmt.Fprintf(w, "submitted at: %s\n", s.SubmittedAt)
	fmt.Fprintf(w, "status:       %s\n", status)
	fmt.Fprintf(w, "gas estimate: %s\n", s.GasEstimate)
	fmt.Fprintf(w, "score:        %s\n", s.OptimizationScore)
}

func printSuggestions(w io.Writer, list []*gasopt.Suggestion) {
	for i, s := range list {
		mark := " "
		if s.Implemented {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] #%d %s/%s (saves %s): %s\n", mark, i, s.Severity, s.Category, s.EstimatedSavings, s.Description)
	}
}

func printScore(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: score expects original and optimized gas", errUsage)
	}

	original, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid original gas: %w", err)
	}

	optimized, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid optimized gas: %w", err)
	}

	if !scoring.Valid(original, optimized) {
		return fmt.Errorf("%w: optimized gas must be non-negative and less than original", gasopt.ErrInvalidInput)
	}

	fmt.Fprintf(w, "gas saved: %d\n", original-optimized)
	fmt.Fprintf(w, "savings:   %d%%\n", scoring.SavingsPercent(original, optimized))
	fmt.Fprintf(w, "score:     %d\n", scoring.Score(original, optimized))

	return nil
}
