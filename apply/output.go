package apply

// PerRowOutput is the tagged result of one function call: either a single
// scalar or a one-row record. The combiner inspects the tag of the first
// output once to pick a branch, rather than type-switching per row.
type PerRowOutput struct {
	scalar interface{}
	record *RecordOutput
}

// RecordOutput is a record produced by one function call. NumRows is 1 for
// any well-formed output; adapters wrapping table-returning functions can
// report a different count, which the combiner rejects.
type RecordOutput struct {
	Names   []string
	Values  []interface{}
	NumRows int
}

// NewScalarOutput wraps a scalar value (bool, any int width, float, or
// string) as a per-row output.
func NewScalarOutput(val interface{}) PerRowOutput {
	return PerRowOutput{scalar: val}
}

// NewRecordOutput wraps a one-row record with the given ordered column
// names and values.
func NewRecordOutput(names []string, values []interface{}) PerRowOutput {
	return PerRowOutput{record: &RecordOutput{Names: names, Values: values, NumRows: 1}}
}

// NewMultiRowRecordOutput exists for adapters around functions that can
// return multi-row records; numRows other than 1 always fails combination.
func NewMultiRowRecordOutput(names []string, values []interface{}, numRows int) PerRowOutput {
	return PerRowOutput{record: &RecordOutput{Names: names, Values: values, NumRows: numRows}}
}

func (o PerRowOutput) IsScalar() bool {
	return o.record == nil
}

func (o PerRowOutput) Scalar() interface{} {
	return o.scalar
}

func (o PerRowOutput) Record() *RecordOutput {
	return o.record
}
