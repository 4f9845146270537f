package errors

import (
	"fmt"

	gerrors "github.com/pkg/errors"
)

type ErrorCode int

const (
	InternalError = iota
	InvalidStrategy
	TypeCoercion
	InconsistentOutputShape
	InvalidOutputShape
	InvalidFormula
	InvalidConfiguration
)

func NewInternalError(msg string) RowplyError {
	return NewRowplyErrorf(InternalError, "Internal error: %s", msg)
}

func NewInvalidStrategyError(strategy string) RowplyError {
	return NewRowplyErrorf(InvalidStrategy, "Unknown strategy '%s' - valid strategies are 'coerce' and 'zip'", strategy)
}

func NewTypeCoercionError(msg string) RowplyError {
	return NewRowplyErrorf(TypeCoercion, msg)
}

func NewTypeCoercionErrorf(format string, args ...interface{}) RowplyError {
	return NewRowplyErrorf(TypeCoercion, format, args...)
}

func NewTypeCoercionErrorAtRow(rowIndex int, msg string) RowplyError {
	return NewRowplyErrorf(TypeCoercion, "Cannot coerce at row %d: %s", rowIndex, msg)
}

func NewInconsistentOutputShapeError(rowIndex int, msg string) RowplyError {
	return NewRowplyErrorf(InconsistentOutputShape, "Inconsistent output shape at row %d: %s", rowIndex, msg)
}

func NewInvalidOutputShapeError(rowIndex int, numRows int) RowplyError {
	return NewRowplyErrorf(InvalidOutputShape, "Invalid output shape at row %d: record has %d rows, must have exactly 1", rowIndex, numRows)
}

func NewInvalidFormulaError(msg string) RowplyError {
	return NewRowplyErrorf(InvalidFormula, msg)
}

func NewInvalidConfigurationError(msg string) RowplyError {
	return NewRowplyErrorf(InvalidConfiguration, "Invalid configuration: %s", msg)
}

func NewRowplyErrorf(errorCode ErrorCode, msgFormat string, args ...interface{}) RowplyError {
	msg := fmt.Sprintf(fmt.Sprintf("RPL%04d - %s", errorCode, msgFormat), args...)
	return RowplyError{Code: errorCode, Msg: msg}
}

func NewRowplyError(errorCode ErrorCode, msg string) RowplyError {
	return RowplyError{Code: errorCode, Msg: msg}
}

// RowplyError is any kind of error that is exposed to the user via external interfaces like the CLI
type RowplyError struct {
	Code ErrorCode
	Msg  string
}

func (u RowplyError) Error() string {
	return u.Msg
}

// HasCode returns true if err is a RowplyError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	re, ok := err.(RowplyError)
	return ok && re.Code == code
}

func MaybeAddStack(err error) error {
	_, ok := err.(RowplyError)
	if !ok {
		return gerrors.WithStack(err)
	}
	return err
}
