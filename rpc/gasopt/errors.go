package gasopt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/gasopt-contract/contracts/gasopt/gasoptconst"
)

// Errors corresponding to the contract error kinds. Use [errors.Is] on the
// result of ErrorFromException or ResolveError to check them.
var (
	ErrAlreadyExists       = errors.New(gasoptconst.ErrAlreadyExists)
	ErrNotFound            = errors.New(gasoptconst.ErrNotFound)
	ErrInvalidInput        = errors.New(gasoptconst.ErrInvalidInput)
	ErrUnauthorized        = errors.New(gasoptconst.ErrUnauthorized)
	ErrInsufficientPayment = errors.New(gasoptconst.ErrInsufficientPayment)
	ErrTransferFailed      = errors.New(gasoptconst.ErrTransferFailed)
)

var kinds = []error{
	ErrAlreadyExists,
	ErrNotFound,
	ErrInvalidInput,
	ErrUnauthorized,
	ErrInsufficientPayment,
	ErrTransferFailed,
}

// ErrorFromException converts FAULT exception of the contract into an error
// wrapping one of the package errors. Exceptions not produced by the contract
// (e.g. out of GAS) are returned as is.
func ErrorFromException(exception string) error {
	for _, kind := range kinds {
		if i := strings.Index(exception, kind.Error()+":"); i >= 0 {
			return fmt.Errorf("%w%s", kind, strings.TrimSuffix(exception[i+len(kind.Error()):], `"`))
		}
	}

	return errors.New(exception)
}

// ResolveError converts an error returned by the contract wrappers into
// an error wrapping one of the package errors if it carries the contract
// exception. Nil error is returned as is.
func ResolveError(err error) error {
	if err == nil {
		return nil
	}

	for _, kind := range kinds {
		if strings.Contains(err.Error(), kind.Error()+":") {
			return fmt.Errorf("%w: %w", kind, err)
		}
	}

	return err
}
