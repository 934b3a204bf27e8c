package fake

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/brianvoe/gofakeit/v7"

	"github.com/salesetl/datagen"
)

// Product is one row of the product dimension. UnitPrice and CostPrice are
// drawn independently, so loss-making products occur; that noise is kept
// deliberately.
type Product struct {
	ProductID     string
	ProductName   string
	Category      string
	Subcategory   string
	UnitPrice     float64
	CostPrice     float64
	SupplierID    string
	StockQuantity int
	ReorderPoint  int
	CreatedAt     time.Time
}

// ProductTable describes the product output layout.
var ProductTable = datagen.Table{
	Name: "products",
	Dir:  "products",
	Schema: arrow.NewSchema([]arrow.Field{
		{Name: "product_id", Type: arrow.BinaryTypes.String},
		{Name: "product_name", Type: arrow.BinaryTypes.String},
		{Name: "category", Type: arrow.BinaryTypes.String},
		{Name: "subcategory", Type: arrow.BinaryTypes.String},
		{Name: "unit_price", Type: arrow.PrimitiveTypes.Float64},
		{Name: "cost_price", Type: arrow.PrimitiveTypes.Float64},
		{Name: "supplier_id", Type: arrow.BinaryTypes.String},
		{Name: "stock_quantity", Type: arrow.PrimitiveTypes.Int64},
		{Name: "reorder_point", Type: arrow.PrimitiveTypes.Int64},
		{Name: "created_at", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
	}, nil),
	Header: []string{
		"product_id", "product_name", "category", "subcategory", "unit_price",
		"cost_price", "supplier_id", "stock_quantity", "reorder_point",
		"created_at",
	},
}

// AppendColumns implements datagen.Record.
func (p *Product) AppendColumns(bs []array.Builder) {
	bs[0].(*array.StringBuilder).Append(p.ProductID)
	bs[1].(*array.StringBuilder).Append(p.ProductName)
	bs[2].(*array.StringBuilder).Append(p.Category)
	bs[3].(*array.StringBuilder).Append(p.Subcategory)
	bs[4].(*array.Float64Builder).Append(p.UnitPrice)
	bs[5].(*array.Float64Builder).Append(p.CostPrice)
	bs[6].(*array.StringBuilder).Append(p.SupplierID)
	bs[7].(*array.Int64Builder).Append(int64(p.StockQuantity))
	bs[8].(*array.Int64Builder).Append(int64(p.ReorderPoint))
	bs[9].(*array.TimestampBuilder).Append(arrow.Timestamp(p.CreatedAt.UnixMilli()))
}

// Row implements datagen.Record.
func (p *Product) Row() []string {
	return []string{
		p.ProductID, p.ProductName, p.Category, p.Subcategory,
		strconv.FormatFloat(p.UnitPrice, 'f', 2, 64),
		strconv.FormatFloat(p.CostPrice, 'f', 2, 64),
		p.SupplierID,
		strconv.Itoa(p.StockQuantity),
		strconv.Itoa(p.ReorderPoint),
		p.CreatedAt.Format(timeLayout),
	}
}

// ProductGenerator generates random products.
type ProductGenerator struct {
	// Now supplies the clock for created_at stamps.
	Now func() time.Time

	cfg Config
	r   *rand.Rand
	f   *gofakeit.Faker
}

// NewProductGenerator returns a generator seeded for reproducible output.
func NewProductGenerator(seed int64, cfg Config) *ProductGenerator {
	return &ProductGenerator{
		Now: time.Now,
		cfg: cfg,
		r:   rand.New(rand.NewSource(seed)),
		f:   gofakeit.New(uint64(seed)),
	}
}

// Record returns the product for counter value n.
func (g *ProductGenerator) Record(n uint64) *Product {
	return &Product{
		ProductID:     datagen.ProductIDs.Format(n),
		ProductName:   g.f.Word() + " " + g.f.Word(),
		Category:      choice(g.r, g.cfg.Categories),
		Subcategory:   g.f.Word(),
		UnitPrice:     round2(g.cfg.UnitPrice.Draw(g.r)),
		CostPrice:     round2(g.cfg.CostPrice.Draw(g.r)),
		SupplierID:    datagen.SupplierIDs.Format(uint64(g.cfg.Suppliers.Draw(g.r))),
		StockQuantity: g.cfg.StockQuantity.Draw(g.r),
		ReorderPoint:  g.cfg.ReorderPoint.Draw(g.r),
		CreatedAt:     g.Now(),
	}
}
