package datagen

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Record is one generated row. Implementations append themselves to arrow
// column builders for parquet output and render a flat string row for csv
// output. Column order follows the entity's Table schema in both cases.
type Record interface {
	AppendColumns(bs []array.Builder)
	Row() []string
}

// Table describes the output layout of one entity kind: the directory it is
// written under, the file stem used in batch file names, and its schema.
type Table struct {
	// Name is the file stem, e.g. "sales_reps" in sales_reps_batch_00000.
	Name string
	// Dir is the directory under the output root, e.g. "sales-reps".
	Dir string
	// Schema defines the arrow fields in Record column order.
	Schema *arrow.Schema
	// Header holds the csv column names, matching Schema field order.
	Header []string
}
