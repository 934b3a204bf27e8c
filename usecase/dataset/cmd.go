// Package dataset orchestrates a full generation run: the three dimension
// tables first, then the transaction fact table sampled against their
// identifier pools.
package dataset

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
	"golang.org/x/sync/errgroup"

	"github.com/salesetl/datagen"
	"github.com/salesetl/datagen/csv"
	"github.com/salesetl/datagen/fake"
	"github.com/salesetl/datagen/parquet"
	"github.com/salesetl/datagen/termstat"
)

// Main holds the options for generating the sales dataset.
type Main struct {
	Customers    uint64 `help:"Number of customer records to generate."`
	Products     uint64 `help:"Number of product records to generate."`
	SalesReps    uint64 `help:"Number of sales rep records to generate."`
	Transactions uint64 `help:"Number of transaction records to generate."`

	CustomerBatch    int `help:"Customer rows per output file."`
	ProductBatch     int `help:"Product rows per output file."`
	SalesRepBatch    int `help:"Sales rep rows per output file."`
	TransactionBatch int `help:"Transaction rows per output file. Caps peak memory."`

	Seed   int64  `help:"Random seed for generating data. -1 will use current nanosecond."`
	Output string `help:"Output directory root."`
	Format string `help:"Output file format (parquet or csv)."`

	cfg   fake.Config
	stats datagen.Statter
	now   func() time.Time
}

// NewMain returns a new Main with the stock large-scale configuration:
// roughly a 3-4GB compressed dataset.
func NewMain() *Main {
	return &Main{
		Customers:        2000000,
		Products:         200000,
		SalesReps:        20000,
		Transactions:     85000000,
		CustomerBatch:    200000,
		ProductBatch:     50000,
		SalesRepBatch:    50000,
		TransactionBatch: 1000000,
		Seed:             42,
		Output:           "generated-data",
		Format:           "parquet",
		cfg:              fake.DefaultConfig(),
		now:              time.Now,
	}
}

// NewQuickMain returns a Main sized for a local smoke run.
func NewQuickMain() *Main {
	m := NewMain()
	m.Customers = 10000
	m.Products = 1000
	m.SalesReps = 100
	m.Transactions = 100000
	m.CustomerBatch = 2000
	m.ProductBatch = 500
	m.SalesRepBatch = 500
	m.TransactionBatch = 10000
	return m
}

func (m *Main) validate() error {
	if m.Format != "parquet" && m.Format != "csv" {
		return errors.Errorf("unknown output format %q (want parquet or csv)", m.Format)
	}
	batches := []struct {
		name string
		size int
	}{
		{"customer", m.CustomerBatch},
		{"product", m.ProductBatch},
		{"sales-rep", m.SalesRepBatch},
		{"transaction", m.TransactionBatch},
	}
	for _, b := range batches {
		if b.size < 1 {
			return errors.Errorf("%s batch size must be positive, got %d", b.name, b.size)
		}
	}
	if m.Transactions > 0 && (m.Customers == 0 || m.Products == 0 || m.SalesReps == 0) {
		return errors.New("transactions need at least one record in every dimension")
	}
	return errors.Wrap(m.cfg.Validate(), "validating config")
}

type tableSummary struct {
	rows  uint64
	files int
	bytes int64
}

// Run generates the whole dataset. The three dimensions run concurrently;
// transaction generation starts only after all of their identifier pools
// are complete.
func (m *Main) Run() error {
	if m.Seed == -1 {
		m.Seed = time.Now().UnixNano()
	}
	if err := m.validate(); err != nil {
		return err
	}
	if m.stats == nil {
		c := termstat.NewCollector(os.Stderr)
		defer c.Stop()
		m.stats = c
	}

	start := time.Now()
	run := runID(m.Seed)
	log.Printf("generating dataset: customers=%d products=%d sales-reps=%d transactions=%d seed=%d format=%s output=%s run=%s",
		m.Customers, m.Products, m.SalesReps, m.Transactions, m.Seed, m.Format, m.Output, run)

	md := arrow.NewMetadata(
		[]string{"created_by", "run_id"},
		[]string{"datagen", run},
	)

	customers := datagen.NewIDPool(int(m.Customers))
	products := datagen.NewIDPool(int(m.Products))
	reps := datagen.NewIDPool(int(m.SalesReps))
	var custSum, prodSum, repSum, txnSum tableSummary

	var g errgroup.Group
	g.Go(func() error {
		gen := fake.NewCustomerGenerator(m.Seed+1, m.cfg)
		gen.Now = m.now
		var err error
		custSum, err = m.generate(fake.CustomerTable, m.Customers, m.CustomerBatch, md,
			func(n uint64) datagen.Record {
				c := gen.Record(n)
				customers.Add(c.CustomerID)
				return c
			})
		return err
	})
	g.Go(func() error {
		gen := fake.NewProductGenerator(m.Seed+2, m.cfg)
		gen.Now = m.now
		var err error
		prodSum, err = m.generate(fake.ProductTable, m.Products, m.ProductBatch, md,
			func(n uint64) datagen.Record {
				p := gen.Record(n)
				products.Add(p.ProductID)
				return p
			})
		return err
	})
	g.Go(func() error {
		gen := fake.NewSalesRepGenerator(m.Seed+3, m.cfg)
		gen.Now = m.now
		var err error
		repSum, err = m.generate(fake.SalesRepTable, m.SalesReps, m.SalesRepBatch, md,
			func(n uint64) datagen.Record {
				s := gen.Record(n)
				reps.Add(s.SalesRepID)
				return s
			})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if m.Transactions > 0 {
		gen, err := fake.NewTransactionGenerator(m.Seed+4, m.cfg, customers, products, reps)
		if err != nil {
			return errors.Wrap(err, "preparing transaction generator")
		}
		gen.Now = m.now
		txnSum, err = m.generate(fake.TransactionTable, m.Transactions, m.TransactionBatch, md,
			func(n uint64) datagen.Record { return gen.Record(n) })
		if err != nil {
			return err
		}
	}

	var total tableSummary
	for _, s := range []struct {
		tbl datagen.Table
		sum tableSummary
	}{
		{fake.CustomerTable, custSum},
		{fake.ProductTable, prodSum},
		{fake.SalesRepTable, repSum},
		{fake.TransactionTable, txnSum},
	} {
		log.Printf("  %s: %d records in %d files (%.2fGB)", s.tbl.Name, s.sum.rows, s.sum.files, gb(s.sum.bytes))
		total.rows += s.sum.rows
		total.files += s.sum.files
		total.bytes += s.sum.bytes
	}
	log.Printf("dataset complete: %d records, %d files, %.2fGB in %s", total.rows, total.files, gb(total.bytes), time.Since(start))
	m.logMemory()
	return nil
}

// batchWriter is satisfied by both the parquet and csv writers.
type batchWriter interface {
	Append(datagen.Record) error
	Close() error
	Rows() uint64
	Files() []string
	Bytes() int64
	Batch() int
}

func (m *Main) newWriter(tbl datagen.Table, batchSize int, md arrow.Metadata) (batchWriter, error) {
	switch m.Format {
	case "parquet":
		w, err := parquet.NewWriter(m.Output, tbl, batchSize, parquet.WithMetadata(md))
		if err != nil {
			return nil, err
		}
		return w, nil
	case "csv":
		w, err := csv.NewWriter(m.Output, tbl, batchSize)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, errors.Errorf("unknown output format %q", m.Format)
}

func (m *Main) generate(tbl datagen.Table, count uint64, batchSize int, md arrow.Metadata, record func(n uint64) datagen.Record) (tableSummary, error) {
	w, err := m.newWriter(tbl, batchSize, md)
	if err != nil {
		return tableSummary{}, err
	}
	nexter := datagen.NewNexter()
	for i := uint64(0); i < count; i++ {
		if err := w.Append(record(nexter.Next())); err != nil {
			return tableSummary{}, err
		}
		m.stats.Count(tbl.Name, 1, 1)
	}
	if err := w.Close(); err != nil {
		return tableSummary{}, errors.Wrapf(err, "closing %s writer", tbl.Name)
	}
	m.logMemory()
	return tableSummary{rows: w.Rows(), files: len(w.Files()), bytes: w.Bytes()}, nil
}

// logMemory reports process RSS; generation must stay flat regardless of
// target row counts, so a climbing value here means a batching bug.
func (m *Main) logMemory() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	mi, err := proc.MemoryInfo()
	if err != nil || mi == nil {
		return
	}
	m.stats.Gauge("rss-gb", gb(int64(mi.RSS)), 1)
}

func gb(n int64) float64 {
	return float64(n) / (1 << 30)
}

// runID derives a stable run identifier from the seed so that repeated
// runs of the same configuration produce identical file metadata.
func runID(seed int64) string {
	id, err := uuid.NewRandomFromReader(rand.New(rand.NewSource(seed)))
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}
