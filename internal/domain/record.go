package domain

// Record is a flat row of named scalar fields. Values are returned in
// Columns order so exporters and the report store can stay type-agnostic.
type Record interface {
	Columns() []string
	Values() []any
}
