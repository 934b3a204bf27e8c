// Package parquet writes generated records to snappy-compressed parquet
// files, one file per batch of rows. Batching bounds peak memory by the
// batch size rather than the total row count.
package parquet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	pq "github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"

	"github.com/salesetl/datagen"
)

// Writer accumulates records in arrow column builders and flushes one
// parquet file per batch. Files are named <name>_batch_<5-digit index> with
// the index starting at 0; the final file holds the remainder and may be
// short. Not safe for concurrent use.
type Writer struct {
	dir       string
	name      string
	schema    *arrow.Schema
	batchSize int

	mem      memory.Allocator
	builders []array.Builder
	props    *pq.WriterProperties
	arrProps pqarrow.ArrowWriterProperties

	pending int
	batch   int
	rows    uint64
	files   []string
	bytes   int64
}

// Option modifies a Writer under construction.
type Option func(w *Writer)

// WithMetadata attaches file-level key/value metadata to the schema of
// every file the writer produces.
func WithMetadata(md arrow.Metadata) Option {
	return func(w *Writer) {
		w.schema = arrow.NewSchema(w.schema.Fields(), &md)
	}
}

// NewWriter returns a Writer placing tbl's batch files under
// <root>/<tbl.Dir>. It creates the directory immediately so that an
// unwritable output location fails before any generation happens.
func NewWriter(root string, tbl datagen.Table, batchSize int, opts ...Option) (*Writer, error) {
	if batchSize < 1 {
		return nil, errors.Errorf("batch size must be positive, got %d", batchSize)
	}
	dir := filepath.Join(root, tbl.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", dir)
	}

	mem := memory.NewGoAllocator()
	w := &Writer{
		dir:       dir,
		name:      tbl.Name,
		schema:    tbl.Schema,
		batchSize: batchSize,
		mem:       mem,
		props: pq.NewWriterProperties(
			pq.WithCompression(compress.Codecs.Snappy),
		),
		arrProps: pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem)),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.builders = make([]array.Builder, w.schema.NumFields())
	for i := 0; i < w.schema.NumFields(); i++ {
		w.builders[i] = array.NewBuilder(mem, w.schema.Field(i).Type)
	}
	return w, nil
}

// Append adds one record to the current batch, flushing a file when the
// batch is full.
func (w *Writer) Append(rec datagen.Record) error {
	rec.AppendColumns(w.builders)
	w.pending++
	if w.pending >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush writes the pending rows, if any, to the next batch file and resets
// the builders.
func (w *Writer) Flush() error {
	if w.pending == 0 {
		return nil
	}

	cols := make([]arrow.Array, len(w.builders))
	for i, b := range w.builders {
		cols[i] = b.NewArray()
	}
	rec := array.NewRecord(w.schema, cols, int64(w.pending))
	defer rec.Release()

	path := filepath.Join(w.dir, fmt.Sprintf("%s_batch_%05d.parquet", w.name, w.batch))
	if err := w.writeFile(path, rec); err != nil {
		return errors.Wrapf(err, "writing %s batch %d", w.name, w.batch)
	}

	if st, err := os.Stat(path); err == nil {
		w.bytes += st.Size()
	}
	w.rows += uint64(w.pending)
	w.files = append(w.files, path)
	w.batch++
	w.pending = 0
	return nil
}

func (w *Writer) writeFile(path string, rec arrow.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating file")
	}
	defer f.Close()

	fw, err := pqarrow.NewFileWriter(w.schema, f, w.props, w.arrProps)
	if err != nil {
		return errors.Wrap(err, "creating parquet writer")
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return errors.Wrap(err, "writing record")
	}
	return errors.Wrap(fw.Close(), "closing parquet writer")
}

// Close flushes the final partial batch and releases the builders. The
// Writer must not be used afterward.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	for _, b := range w.builders {
		b.Release()
	}
	return nil
}

// Rows returns the number of rows written to disk so far.
func (w *Writer) Rows() uint64 { return w.rows }

// Files returns the paths written so far, in batch order.
func (w *Writer) Files() []string { return w.files }

// Bytes returns the total size of the written files.
func (w *Writer) Bytes() int64 { return w.bytes }

// Batch returns the index the next flush will write.
func (w *Writer) Batch() int { return w.batch }

// Pending returns the number of rows buffered for the next flush. It never
// exceeds the batch size.
func (w *Writer) Pending() int { return w.pending }
