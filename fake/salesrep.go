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

// SalesRep is one row of the sales rep dimension.
type SalesRep struct {
	SalesRepID     string
	Name           string
	Email          string
	Phone          string
	Region         string
	Territory      string
	HireDate       time.Time
	CommissionRate float64
	CreatedAt      time.Time
}

// SalesRepTable describes the sales rep output layout. The directory name
// differs from the file stem; downstream partition discovery expects
// "sales-reps" while columns and files use snake case.
var SalesRepTable = datagen.Table{
	Name: "sales_reps",
	Dir:  "sales-reps",
	Schema: arrow.NewSchema([]arrow.Field{
		{Name: "sales_rep_id", Type: arrow.BinaryTypes.String},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "email", Type: arrow.BinaryTypes.String},
		{Name: "phone", Type: arrow.BinaryTypes.String},
		{Name: "region", Type: arrow.BinaryTypes.String},
		{Name: "territory", Type: arrow.BinaryTypes.String},
		{Name: "hire_date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "commission_rate", Type: arrow.PrimitiveTypes.Float64},
		{Name: "created_at", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
	}, nil),
	Header: []string{
		"sales_rep_id", "name", "email", "phone", "region", "territory",
		"hire_date", "commission_rate", "created_at",
	},
}

// AppendColumns implements datagen.Record.
func (s *SalesRep) AppendColumns(bs []array.Builder) {
	bs[0].(*array.StringBuilder).Append(s.SalesRepID)
	bs[1].(*array.StringBuilder).Append(s.Name)
	bs[2].(*array.StringBuilder).Append(s.Email)
	bs[3].(*array.StringBuilder).Append(s.Phone)
	bs[4].(*array.StringBuilder).Append(s.Region)
	bs[5].(*array.StringBuilder).Append(s.Territory)
	bs[6].(*array.Date32Builder).Append(arrow.Date32FromTime(s.HireDate))
	bs[7].(*array.Float64Builder).Append(s.CommissionRate)
	bs[8].(*array.TimestampBuilder).Append(arrow.Timestamp(s.CreatedAt.UnixMilli()))
}

// Row implements datagen.Record.
func (s *SalesRep) Row() []string {
	return []string{
		s.SalesRepID, s.Name, s.Email, s.Phone, s.Region, s.Territory,
		s.HireDate.Format(dateLayout),
		strconv.FormatFloat(s.CommissionRate, 'f', 4, 64),
		s.CreatedAt.Format(timeLayout),
	}
}

// SalesRepGenerator generates random sales reps.
type SalesRepGenerator struct {
	// Now supplies the clock for created_at stamps and the hire lookback
	// window.
	Now func() time.Time

	cfg Config
	r   *rand.Rand
	f   *gofakeit.Faker
}

// NewSalesRepGenerator returns a generator seeded for reproducible output.
func NewSalesRepGenerator(seed int64, cfg Config) *SalesRepGenerator {
	return &SalesRepGenerator{
		Now: time.Now,
		cfg: cfg,
		r:   rand.New(rand.NewSource(seed)),
		f:   gofakeit.New(uint64(seed)),
	}
}

// Record returns the sales rep for counter value n.
func (g *SalesRepGenerator) Record(n uint64) *SalesRep {
	now := g.Now()
	return &SalesRep{
		SalesRepID:     datagen.SalesRepIDs.Format(n),
		Name:           g.f.Name(),
		Email:          g.f.Email(),
		Phone:          g.f.Phone(),
		Region:         choice(g.r, g.cfg.Regions),
		Territory:      g.f.City(),
		HireDate:       datagen.LookbackWindow(now, g.cfg.HireYears).Draw(g.r),
		CommissionRate: round4(g.cfg.CommissionRate.Draw(g.r)),
		CreatedAt:      now,
	}
}
