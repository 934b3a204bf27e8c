package fake

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/pkg/errors"

	"github.com/salesetl/datagen"
)

// Transaction is one row of the fact table. Its three foreign keys are
// sampled from the dimension pools, so every value it carries exists in the
// corresponding dimension of the same run.
type Transaction struct {
	TransactionID   string
	CustomerID      string
	ProductID       string
	SalesRepID      string
	TransactionDate time.Time
	Quantity        int
	UnitPrice       float64
	DiscountPercent float64
	TaxAmount       float64
	TotalAmount     float64
	PaymentMethod   string
	Region          string
	CreatedAt       time.Time
}

// TransactionTable describes the transaction output layout.
var TransactionTable = datagen.Table{
	Name: "transactions",
	Dir:  "transactions",
	Schema: arrow.NewSchema([]arrow.Field{
		{Name: "transaction_id", Type: arrow.BinaryTypes.String},
		{Name: "customer_id", Type: arrow.BinaryTypes.String},
		{Name: "product_id", Type: arrow.BinaryTypes.String},
		{Name: "sales_rep_id", Type: arrow.BinaryTypes.String},
		{Name: "transaction_date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "quantity", Type: arrow.PrimitiveTypes.Int64},
		{Name: "unit_price", Type: arrow.PrimitiveTypes.Float64},
		{Name: "discount_percent", Type: arrow.PrimitiveTypes.Float64},
		{Name: "tax_amount", Type: arrow.PrimitiveTypes.Float64},
		{Name: "total_amount", Type: arrow.PrimitiveTypes.Float64},
		{Name: "payment_method", Type: arrow.BinaryTypes.String},
		{Name: "region", Type: arrow.BinaryTypes.String},
		{Name: "created_at", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
	}, nil),
	Header: []string{
		"transaction_id", "customer_id", "product_id", "sales_rep_id",
		"transaction_date", "quantity", "unit_price", "discount_percent",
		"tax_amount", "total_amount", "payment_method", "region", "created_at",
	},
}

// AppendColumns implements datagen.Record.
func (t *Transaction) AppendColumns(bs []array.Builder) {
	bs[0].(*array.StringBuilder).Append(t.TransactionID)
	bs[1].(*array.StringBuilder).Append(t.CustomerID)
	bs[2].(*array.StringBuilder).Append(t.ProductID)
	bs[3].(*array.StringBuilder).Append(t.SalesRepID)
	bs[4].(*array.Date32Builder).Append(arrow.Date32FromTime(t.TransactionDate))
	bs[5].(*array.Int64Builder).Append(int64(t.Quantity))
	bs[6].(*array.Float64Builder).Append(t.UnitPrice)
	bs[7].(*array.Float64Builder).Append(t.DiscountPercent)
	bs[8].(*array.Float64Builder).Append(t.TaxAmount)
	bs[9].(*array.Float64Builder).Append(t.TotalAmount)
	bs[10].(*array.StringBuilder).Append(t.PaymentMethod)
	bs[11].(*array.StringBuilder).Append(t.Region)
	bs[12].(*array.TimestampBuilder).Append(arrow.Timestamp(t.CreatedAt.UnixMilli()))
}

// Row implements datagen.Record.
func (t *Transaction) Row() []string {
	return []string{
		t.TransactionID, t.CustomerID, t.ProductID, t.SalesRepID,
		t.TransactionDate.Format(dateLayout),
		strconv.Itoa(t.Quantity),
		strconv.FormatFloat(t.UnitPrice, 'f', 2, 64),
		strconv.FormatFloat(t.DiscountPercent, 'f', 2, 64),
		strconv.FormatFloat(t.TaxAmount, 'f', 2, 64),
		strconv.FormatFloat(t.TotalAmount, 'f', 2, 64),
		t.PaymentMethod, t.Region,
		t.CreatedAt.Format(timeLayout),
	}
}

// TransactionGenerator generates random transactions against fully
// materialized dimension pools.
type TransactionGenerator struct {
	// Now supplies the clock for created_at stamps.
	Now func() time.Time

	cfg       Config
	r         *rand.Rand
	customers *datagen.IDPool
	products  *datagen.IDPool
	reps      *datagen.IDPool
}

// NewTransactionGenerator returns a seeded transaction generator. All three
// dimension pools must already be populated; an empty pool means the
// dimension generators have not run yet, which is a caller bug.
func NewTransactionGenerator(seed int64, cfg Config, customers, products, reps *datagen.IDPool) (*TransactionGenerator, error) {
	if customers.Len() == 0 {
		return nil, errors.New("customer pool is empty; generate dimensions before transactions")
	}
	if products.Len() == 0 {
		return nil, errors.New("product pool is empty; generate dimensions before transactions")
	}
	if reps.Len() == 0 {
		return nil, errors.New("sales rep pool is empty; generate dimensions before transactions")
	}
	return &TransactionGenerator{
		Now:       time.Now,
		cfg:       cfg,
		r:         rand.New(rand.NewSource(seed)),
		customers: customers,
		products:  products,
		reps:      reps,
	}, nil
}

// Record returns the transaction for counter value n. The total is derived
// from the other measures and clamped into the configured interval:
//
//	total = quantity*unit_price*(1 - discount/100) + tax
//
// The tax draw is an independent amount, not a percentage of the subtotal.
func (g *TransactionGenerator) Record(n uint64) *Transaction {
	quantity := g.cfg.Quantity.Draw(g.r)
	unitPrice := round2(g.cfg.TxnUnitPrice.Draw(g.r))
	discount := round2(g.cfg.DiscountPercent.Draw(g.r))
	tax := round2(g.cfg.TaxAmount.Draw(g.r))
	total := round2(float64(quantity)*unitPrice*(1-discount/100) + tax)

	return &Transaction{
		TransactionID:   datagen.TransactionIDs.Format(n),
		CustomerID:      g.customers.Sample(g.r),
		ProductID:       g.products.Sample(g.r),
		SalesRepID:      g.reps.Sample(g.r),
		TransactionDate: g.cfg.TransactionDates.Draw(g.r),
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discount,
		TaxAmount:       tax,
		TotalAmount:     g.cfg.TotalAmount.Clamp(total),
		PaymentMethod:   choice(g.r, g.cfg.PaymentMethods),
		Region:          choice(g.r, g.cfg.Regions),
		CreatedAt:       g.Now(),
	}
}
