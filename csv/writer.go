// Package csv writes generated records to headed csv files, one file per
// batch of rows. It mirrors the parquet writer's batching and naming so the
// two formats are interchangeable at the orchestration layer.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/salesetl/datagen"
)

// Writer accumulates rendered rows and flushes one csv file per batch.
// Files are named <name>_batch_<5-digit index>.csv with the index starting
// at 0, each beginning with a header row. Not safe for concurrent use.
type Writer struct {
	dir       string
	name      string
	header    []string
	batchSize int

	rows    [][]string
	batch   int
	written uint64
	files   []string
	bytes   int64
}

// NewWriter returns a Writer placing tbl's batch files under
// <root>/<tbl.Dir>, creating the directory immediately.
func NewWriter(root string, tbl datagen.Table, batchSize int) (*Writer, error) {
	if batchSize < 1 {
		return nil, errors.Errorf("batch size must be positive, got %d", batchSize)
	}
	dir := filepath.Join(root, tbl.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", dir)
	}
	return &Writer{
		dir:       dir,
		name:      tbl.Name,
		header:    tbl.Header,
		batchSize: batchSize,
		rows:      make([][]string, 0, batchSize),
	}, nil
}

// Append adds one record to the current batch, flushing a file when the
// batch is full.
func (w *Writer) Append(rec datagen.Record) error {
	w.rows = append(w.rows, rec.Row())
	if len(w.rows) >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush writes the pending rows, if any, to the next batch file.
func (w *Writer) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s_batch_%05d.csv", w.name, w.batch))
	if err := w.writeFile(path); err != nil {
		return errors.Wrapf(err, "writing %s batch %d", w.name, w.batch)
	}

	if st, err := os.Stat(path); err == nil {
		w.bytes += st.Size()
	}
	w.written += uint64(len(w.rows))
	w.files = append(w.files, path)
	w.batch++
	w.rows = w.rows[:0]
	return nil
}

func (w *Writer) writeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating file")
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(w.header); err != nil {
		f.Close()
		return errors.Wrap(err, "writing header")
	}
	if err := cw.WriteAll(w.rows); err != nil {
		f.Close()
		return errors.Wrap(err, "writing rows")
	}
	return errors.Wrap(f.Close(), "closing file")
}

// Close flushes the final partial batch. The Writer must not be used
// afterward.
func (w *Writer) Close() error {
	return w.Flush()
}

// Rows returns the number of rows written to disk so far.
func (w *Writer) Rows() uint64 { return w.written }

// Files returns the paths written so far, in batch order.
func (w *Writer) Files() []string { return w.files }

// Bytes returns the total size of the written files.
func (w *Writer) Bytes() int64 { return w.bytes }

// Batch returns the index the next flush will write.
func (w *Writer) Batch() int { return w.batch }
