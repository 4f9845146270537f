package apply

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/squareup/rowply/common"
	"github.com/squareup/rowply/errors"
)

// Strategy selects how rows are materialized before the function sees them.
type Strategy string

const (
	// StrategyCoerce converts the whole table to one common scalar type
	// upfront, then hands the function plain homogeneous row vectors.
	StrategyCoerce Strategy = "coerce"
	// StrategyZip keeps each column's native type and hands the function a
	// heterogeneous row vector, leaving any reconciliation to the function.
	StrategyZip Strategy = "zip"
)

// DefaultStrategy is coerce: lower overhead and more permissive.
const DefaultStrategy = StrategyCoerce

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyCoerce:
		return StrategyCoerce, nil
	case StrategyZip:
		return StrategyZip, nil
	default:
		return "", errors.NewInvalidStrategyError(s)
	}
}

// Args are forwarded verbatim, unexamined, to every function invocation.
type Args map[string]interface{}

// RowFunc is the normalized callable the engine applies to each row. It
// receives one row vector plus the forwarded args and returns a scalar or a
// one-row record. Errors returned from a RowFunc abort the whole apply and
// propagate to the caller unchanged.
type RowFunc func(row *Vector, args Args) (PerRowOutput, error)

var (
	rowsAppliedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rowply_rows_applied_total",
		Help: "Total number of rows a function has been applied to",
	})
	applyErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rowply_apply_errors_total",
		Help: "Total number of apply calls that failed",
	})
)

// Apply runs fn once per row of the table, in ascending row order, and
// combines the per-row outputs into either a vector (all outputs scalar) or
// a table (all outputs one-row records). The result always has exactly as
// many elements/rows as the input table.
func Apply(rows *common.Rows, colNames []string, fn RowFunc, args Args, strategy Strategy) (*Result, error) {
	res, err := apply(rows, colNames, fn, args, strategy)
	if err != nil {
		applyErrorsCounter.Inc()
		log.Debugf("apply failed: %v", err)
		return nil, err
	}
	return res, nil
}

// ApplyDefault is Apply with the default coerce strategy.
func ApplyDefault(rows *common.Rows, colNames []string, fn RowFunc, args Args) (*Result, error) {
	return Apply(rows, colNames, fn, args, DefaultStrategy)
}

func apply(rows *common.Rows, colNames []string, fn RowFunc, args Args, strategy Strategy) (*Result, error) {
	// Strategy is validated before any row is touched - no silent fallback.
	strat, err := ParseStrategy(string(strategy))
	if err != nil {
		return nil, err
	}
	if len(colNames) != rows.ColumnCount() {
		return nil, errors.NewInternalError("column name count does not match column count")
	}
	var mat rowMaterializer
	switch strat {
	case StrategyCoerce:
		mat, err = newCoerceMaterializer(rows, colNames)
	case StrategyZip:
		mat, err = newZipMaterializer(rows, colNames)
	}
	if err != nil {
		return nil, err
	}
	n := rows.RowCount()
	outputs := make([]PerRowOutput, 0, n)
	for i := 0; i < n; i++ {
		row, err := mat.materializeRow(i)
		if err != nil {
			return nil, err
		}
		out, err := fn(row, args)
		if err != nil {
			// The function's own errors propagate unchanged.
			return nil, err
		}
		outputs = append(outputs, out)
	}
	rowsAppliedCounter.Add(float64(n))
	return combine(outputs)
}
