package fake

import (
	"time"

	"github.com/pkg/errors"

	"github.com/salesetl/datagen"
)

// Config declares the categorical domains, numeric intervals and date
// windows the generators draw from. Zero values are not usable; start from
// DefaultConfig and adjust. Validate before generating - invalid bounds are
// a startup error, not something to discover mid-run.
type Config struct {
	Segments       []string
	Regions        []string
	Countries      []string
	Categories     []string
	PaymentMethods []string

	// Customer fields.
	LifetimeValue    datagen.Range
	AcquisitionYears int

	// Product fields. UnitPrice and CostPrice are independent draws, so a
	// product may cost more than it sells for.
	UnitPrice     datagen.Range
	CostPrice     datagen.Range
	Suppliers     datagen.IntRange
	StockQuantity datagen.IntRange
	ReorderPoint  datagen.IntRange

	// Sales rep fields.
	CommissionRate datagen.Range
	HireYears      int

	// Transaction fields. TxnUnitPrice is drawn independently of the
	// referenced product's unit price.
	TransactionDates datagen.DateRange
	Quantity         datagen.IntRange
	TxnUnitPrice     datagen.Range
	DiscountPercent  datagen.Range
	TaxAmount        datagen.Range
	TotalAmount      datagen.Range
}

// DefaultConfig returns the stock dataset shape.
func DefaultConfig() Config {
	return Config{
		Segments:       []string{"Bronze", "Silver", "Gold", "Platinum"},
		Regions:        []string{"North", "South", "East", "West", "Central"},
		Countries:      []string{"USA", "Canada", "UK", "Germany", "France", "Australia"},
		Categories:     []string{"Electronics", "Clothing", "Home & Garden", "Sports", "Books"},
		PaymentMethods: []string{"Credit Card", "Debit Card", "Check", "Bank Transfer", "Online Payment"},

		LifetimeValue:    datagen.Range{Min: 100, Max: 500000},
		AcquisitionYears: 5,

		UnitPrice:     datagen.Range{Min: 10, Max: 1000},
		CostPrice:     datagen.Range{Min: 5, Max: 500},
		Suppliers:     datagen.IntRange{Min: 1, Max: 1000},
		StockQuantity: datagen.IntRange{Min: 0, Max: 10000},
		ReorderPoint:  datagen.IntRange{Min: 50, Max: 500},

		CommissionRate: datagen.Range{Min: 0.01, Max: 0.25},
		HireYears:      15,

		TransactionDates: datagen.DateRange{
			Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		Quantity:        datagen.IntRange{Min: 1, Max: 500},
		TxnUnitPrice:    datagen.Range{Min: 10, Max: 1000},
		DiscountPercent: datagen.Range{Min: 0, Max: 50},
		TaxAmount:       datagen.Range{Min: 10, Max: 1000},
		TotalAmount:     datagen.Range{Min: 50, Max: 50000},
	}
}

// Validate checks every domain and interval, failing fast before any file
// is written.
func (c Config) Validate() error {
	domains := []struct {
		name string
		vals []string
	}{
		{"segments", c.Segments},
		{"regions", c.Regions},
		{"countries", c.Countries},
		{"categories", c.Categories},
		{"payment-methods", c.PaymentMethods},
	}
	for _, d := range domains {
		if len(d.vals) == 0 {
			return errors.Errorf("empty categorical domain %q", d.name)
		}
	}

	ranges := []struct {
		name string
		val  interface{ Validate() error }
	}{
		{"lifetime-value", c.LifetimeValue},
		{"unit-price", c.UnitPrice},
		{"cost-price", c.CostPrice},
		{"suppliers", c.Suppliers},
		{"stock-quantity", c.StockQuantity},
		{"reorder-point", c.ReorderPoint},
		{"commission-rate", c.CommissionRate},
		{"transaction-dates", c.TransactionDates},
		{"quantity", c.Quantity},
		{"txn-unit-price", c.TxnUnitPrice},
		{"discount-percent", c.DiscountPercent},
		{"tax-amount", c.TaxAmount},
		{"total-amount", c.TotalAmount},
	}
	for _, r := range ranges {
		if err := r.val.Validate(); err != nil {
			return errors.Wrap(err, r.name)
		}
	}

	if c.AcquisitionYears < 1 {
		return errors.Errorf("acquisition window must be at least a year, got %d", c.AcquisitionYears)
	}
	if c.HireYears < 1 {
		return errors.Errorf("hire window must be at least a year, got %d", c.HireYears)
	}
	return nil
}
