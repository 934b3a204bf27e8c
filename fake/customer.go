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

// Customer is one row of the customer dimension.
type Customer struct {
	CustomerID      string
	CustomerName    string
	Email           string
	Phone           string
	Segment         string
	Region          string
	Country         string
	City            string
	State           string
	ZipCode         string
	AcquisitionDate time.Time
	LifetimeValue   float64
	CreatedAt       time.Time
}

// CustomerTable describes the customer output layout.
var CustomerTable = datagen.Table{
	Name: "customers",
	Dir:  "customers",
	Schema: arrow.NewSchema([]arrow.Field{
		{Name: "customer_id", Type: arrow.BinaryTypes.String},
		{Name: "customer_name", Type: arrow.BinaryTypes.String},
		{Name: "email", Type: arrow.BinaryTypes.String},
		{Name: "phone", Type: arrow.BinaryTypes.String},
		{Name: "segment", Type: arrow.BinaryTypes.String},
		{Name: "region", Type: arrow.BinaryTypes.String},
		{Name: "country", Type: arrow.BinaryTypes.String},
		{Name: "city", Type: arrow.BinaryTypes.String},
		{Name: "state", Type: arrow.BinaryTypes.String},
		{Name: "zip_code", Type: arrow.BinaryTypes.String},
		{Name: "acquisition_date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "lifetime_value", Type: arrow.PrimitiveTypes.Float64},
		{Name: "created_at", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
	}, nil),
	Header: []string{
		"customer_id", "customer_name", "email", "phone", "segment", "region",
		"country", "city", "state", "zip_code", "acquisition_date",
		"lifetime_value", "created_at",
	},
}

// AppendColumns implements datagen.Record.
func (c *Customer) AppendColumns(bs []array.Builder) {
	bs[0].(*array.StringBuilder).Append(c.CustomerID)
	bs[1].(*array.StringBuilder).Append(c.CustomerName)
	bs[2].(*array.StringBuilder).Append(c.Email)
	bs[3].(*array.StringBuilder).Append(c.Phone)
	bs[4].(*array.StringBuilder).Append(c.Segment)
	bs[5].(*array.StringBuilder).Append(c.Region)
	bs[6].(*array.StringBuilder).Append(c.Country)
	bs[7].(*array.StringBuilder).Append(c.City)
	bs[8].(*array.StringBuilder).Append(c.State)
	bs[9].(*array.StringBuilder).Append(c.ZipCode)
	bs[10].(*array.Date32Builder).Append(arrow.Date32FromTime(c.AcquisitionDate))
	bs[11].(*array.Float64Builder).Append(c.LifetimeValue)
	bs[12].(*array.TimestampBuilder).Append(arrow.Timestamp(c.CreatedAt.UnixMilli()))
}

// Row implements datagen.Record.
func (c *Customer) Row() []string {
	return []string{
		c.CustomerID, c.CustomerName, c.Email, c.Phone, c.Segment, c.Region,
		c.Country, c.City, c.State, c.ZipCode,
		c.AcquisitionDate.Format(dateLayout),
		strconv.FormatFloat(c.LifetimeValue, 'f', 2, 64),
		c.CreatedAt.Format(timeLayout),
	}
}

// CustomerGenerator generates random customers.
type CustomerGenerator struct {
	// Now supplies the clock for created_at stamps and the acquisition
	// lookback window. Override it for byte-stable output across runs.
	Now func() time.Time

	cfg Config
	r   *rand.Rand
	f   *gofakeit.Faker
}

// NewCustomerGenerator returns a generator seeded for reproducible output.
func NewCustomerGenerator(seed int64, cfg Config) *CustomerGenerator {
	return &CustomerGenerator{
		Now: time.Now,
		cfg: cfg,
		r:   rand.New(rand.NewSource(seed)),
		f:   gofakeit.New(uint64(seed)),
	}
}

// Record returns the customer for counter value n.
func (g *CustomerGenerator) Record(n uint64) *Customer {
	now := g.Now()
	return &Customer{
		CustomerID:      datagen.CustomerIDs.Format(n),
		CustomerName:    g.f.Name(),
		Email:           g.f.Email(),
		Phone:           g.f.Phone(),
		Segment:         choice(g.r, g.cfg.Segments),
		Region:          choice(g.r, g.cfg.Regions),
		Country:         choice(g.r, g.cfg.Countries),
		City:            g.f.City(),
		State:           g.f.StateAbr(),
		ZipCode:         g.f.Zip(),
		AcquisitionDate: datagen.LookbackWindow(now, g.cfg.AcquisitionYears).Draw(g.r),
		LifetimeValue:   round2(g.cfg.LifetimeValue.Draw(g.r)),
		CreatedAt:       now,
	}
}
