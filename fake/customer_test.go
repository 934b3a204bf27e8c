package fake_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/salesetl/datagen"
	"github.com/salesetl/datagen/fake"
)

var testNow = func() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func contains(vals []string, v string) bool {
	for _, have := range vals {
		if have == v {
			return true
		}
	}
	return false
}

func TestCustomerGenerator(t *testing.T) {
	cfg := fake.DefaultConfig()
	g := fake.NewCustomerGenerator(111, cfg)
	g.Now = testNow
	window := datagen.LookbackWindow(testNow(), cfg.AcquisitionYears)

	ids := make(map[string]struct{})
	segments := make(map[string]int)
	for i := uint64(0); i < 1000; i++ {
		c := g.Record(i)
		if exp := datagen.CustomerIDs.Format(i); c.CustomerID != exp {
			t.Fatalf("id exp %s, got %s", exp, c.CustomerID)
		}
		if _, ok := ids[c.CustomerID]; ok {
			t.Fatalf("duplicate id %s", c.CustomerID)
		}
		ids[c.CustomerID] = struct{}{}
		if c.CustomerName == "" || c.Email == "" || c.Phone == "" || c.City == "" {
			t.Errorf("empty contact field in %+v", c)
		}
		if !contains(cfg.Segments, c.Segment) {
			t.Errorf("segment %q outside domain", c.Segment)
		}
		if !contains(cfg.Regions, c.Region) {
			t.Errorf("region %q outside domain", c.Region)
		}
		if !contains(cfg.Countries, c.Country) {
			t.Errorf("country %q outside domain", c.Country)
		}
		segments[c.Segment]++
		if c.LifetimeValue < cfg.LifetimeValue.Min || c.LifetimeValue > cfg.LifetimeValue.Max {
			t.Errorf("lifetime value %v out of range", c.LifetimeValue)
		}
		if c.AcquisitionDate.Before(window.Start) || c.AcquisitionDate.After(window.End) {
			t.Errorf("acquisition date %s outside %d year window", c.AcquisitionDate, cfg.AcquisitionYears)
		}
		if !c.CreatedAt.Equal(testNow()) {
			t.Errorf("created_at not stamped from clock: %s", c.CreatedAt)
		}
	}
	if len(segments) != len(cfg.Segments) {
		t.Errorf("expected all %d segments over 1000 records, got %d", len(cfg.Segments), len(segments))
	}
}

func TestCustomerGeneratorReproducible(t *testing.T) {
	cfg := fake.DefaultConfig()
	a := fake.NewCustomerGenerator(42, cfg)
	a.Now = testNow
	b := fake.NewCustomerGenerator(42, cfg)
	b.Now = testNow
	for i := uint64(0); i < 100; i++ {
		ra, rb := a.Record(i), b.Record(i)
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("record %d diverged:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestProductGenerator(t *testing.T) {
	cfg := fake.DefaultConfig()
	g := fake.NewProductGenerator(111, cfg)
	g.Now = testNow

	lossMakers := 0
	for i := uint64(0); i < 1000; i++ {
		p := g.Record(i)
		if exp := datagen.ProductIDs.Format(i); p.ProductID != exp {
			t.Fatalf("id exp %s, got %s", exp, p.ProductID)
		}
		if !contains(cfg.Categories, p.Category) {
			t.Errorf("category %q outside domain", p.Category)
		}
		if p.UnitPrice < cfg.UnitPrice.Min || p.UnitPrice > cfg.UnitPrice.Max {
			t.Errorf("unit price %v out of range", p.UnitPrice)
		}
		if p.CostPrice < cfg.CostPrice.Min || p.CostPrice > cfg.CostPrice.Max {
			t.Errorf("cost price %v out of range", p.CostPrice)
		}
		if p.CostPrice > p.UnitPrice {
			lossMakers++
		}
		if p.StockQuantity < cfg.StockQuantity.Min || p.StockQuantity > cfg.StockQuantity.Max {
			t.Errorf("stock quantity %d out of range", p.StockQuantity)
		}
		if p.ReorderPoint < cfg.ReorderPoint.Min || p.ReorderPoint > cfg.ReorderPoint.Max {
			t.Errorf("reorder point %d out of range", p.ReorderPoint)
		}
		if len(p.SupplierID) != len("SUPP")+6 {
			t.Errorf("supplier id %q has wrong width", p.SupplierID)
		}
	}
	// prices are independent draws; some loss makers must show up
	if lossMakers == 0 {
		t.Error("expected some products with cost above unit price")
	}
}

func TestSalesRepGenerator(t *testing.T) {
	cfg := fake.DefaultConfig()
	g := fake.NewSalesRepGenerator(111, cfg)
	g.Now = testNow
	window := datagen.LookbackWindow(testNow(), cfg.HireYears)

	for i := uint64(0); i < 1000; i++ {
		s := g.Record(i)
		if exp := datagen.SalesRepIDs.Format(i); s.SalesRepID != exp {
			t.Fatalf("id exp %s, got %s", exp, s.SalesRepID)
		}
		if !contains(cfg.Regions, s.Region) {
			t.Errorf("region %q outside domain", s.Region)
		}
		if s.CommissionRate < cfg.CommissionRate.Min || s.CommissionRate > cfg.CommissionRate.Max {
			t.Errorf("commission rate %v out of range", s.CommissionRate)
		}
		if s.HireDate.Before(window.Start) || s.HireDate.After(window.End) {
			t.Errorf("hire date %s outside %d year window", s.HireDate, cfg.HireYears)
		}
		if s.Territory == "" {
			t.Errorf("empty territory for %s", s.SalesRepID)
		}
	}
}
