package parquet_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/salesetl/datagen"
	"github.com/salesetl/datagen/parquet"
)

type widget struct {
	ID    string
	Count int64
}

func (w *widget) AppendColumns(bs []array.Builder) {
	bs[0].(*array.StringBuilder).Append(w.ID)
	bs[1].(*array.Int64Builder).Append(w.Count)
}

func (w *widget) Row() []string {
	return []string{w.ID, strconv.FormatInt(w.Count, 10)}
}

var widgetTable = datagen.Table{
	Name: "widgets",
	Dir:  "widgets",
	Schema: arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.BinaryTypes.String},
		{Name: "count", Type: arrow.PrimitiveTypes.Int64},
	}, nil),
	Header: []string{"id", "count"},
}

func TestWriterBatching(t *testing.T) {
	dir := t.TempDir()
	w, err := parquet.NewWriter(dir, widgetTable, 4)
	if err != nil {
		t.Fatalf("creating writer: %v", err)
	}

	// 10 rows at batch size 4 -> 3 files with 4, 4, 2 rows
	for i := 0; i < 10; i++ {
		rec := &widget{ID: fmt.Sprintf("W%03d", i), Count: int64(i)}
		if err := w.Append(rec); err != nil {
			t.Fatalf("appending record %d: %v", i, err)
		}
		if w.Pending() >= 4 {
			t.Fatalf("pending rows %d reached batch size without flushing", w.Pending())
		}
	}
	if got := len(w.Files()); got != 2 {
		t.Fatalf("expected 2 full batches before close, got %d", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	files := w.Files()
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}
	for i, f := range files {
		exp := filepath.Join(dir, "widgets", fmt.Sprintf("widgets_batch_%05d.parquet", i))
		if f != exp {
			t.Errorf("file %d: exp %s, got %s", i, exp, f)
		}
		st, err := os.Stat(f)
		if err != nil {
			t.Fatalf("stat %s: %v", f, err)
		}
		if st.Size() == 0 {
			t.Errorf("file %s is empty", f)
		}
	}
	if w.Rows() != 10 {
		t.Errorf("expected 10 rows written, got %d", w.Rows())
	}
	if w.Bytes() == 0 {
		t.Error("expected nonzero byte count")
	}
}

func TestWriterExactMultiple(t *testing.T) {
	w, err := parquet.NewWriter(t.TempDir(), widgetTable, 5)
	if err != nil {
		t.Fatalf("creating writer: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := w.Append(&widget{ID: "w", Count: int64(i)}); err != nil {
			t.Fatalf("appending: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}
	// no trailing empty file when the count divides evenly
	if got := len(w.Files()); got != 2 {
		t.Fatalf("expected 2 files, got %d", got)
	}
}

func TestWriterEmptyClose(t *testing.T) {
	w, err := parquet.NewWriter(t.TempDir(), widgetTable, 5)
	if err != nil {
		t.Fatalf("creating writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing empty writer: %v", err)
	}
	if len(w.Files()) != 0 {
		t.Fatalf("expected no files, got %v", w.Files())
	}
}

func TestWriterBadBatchSize(t *testing.T) {
	if _, err := parquet.NewWriter(t.TempDir(), widgetTable, 0); err == nil {
		t.Fatal("expected error for zero batch size")
	}
}

func TestWriterUnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(root, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := parquet.NewWriter(root, widgetTable, 5); err == nil {
		t.Fatal("expected error when output root is not a directory")
	}
}

func TestWriterMetadata(t *testing.T) {
	md := arrow.NewMetadata([]string{"run_id"}, []string{"abc123"})
	w, err := parquet.NewWriter(t.TempDir(), widgetTable, 2, parquet.WithMetadata(md))
	if err != nil {
		t.Fatalf("creating writer: %v", err)
	}
	if err := w.Append(&widget{ID: "w", Count: 1}); err != nil {
		t.Fatalf("appending: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}
	if len(w.Files()) != 1 {
		t.Fatalf("expected 1 file, got %d", len(w.Files()))
	}
}
