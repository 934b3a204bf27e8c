package fake_test

import (
	"math"
	"testing"

	"github.com/salesetl/datagen"
	"github.com/salesetl/datagen/fake"
)

func testPools(nCust, nProd, nRep int) (customers, products, reps *datagen.IDPool) {
	customers = datagen.NewIDPool(nCust)
	for i := 0; i < nCust; i++ {
		customers.Add(datagen.CustomerIDs.Format(uint64(i)))
	}
	products = datagen.NewIDPool(nProd)
	for i := 0; i < nProd; i++ {
		products.Add(datagen.ProductIDs.Format(uint64(i)))
	}
	reps = datagen.NewIDPool(nRep)
	for i := 0; i < nRep; i++ {
		reps.Add(datagen.SalesRepIDs.Format(uint64(i)))
	}
	return customers, products, reps
}

func TestTransactionGenerator(t *testing.T) {
	cfg := fake.DefaultConfig()
	customers, products, reps := testPools(10, 5, 3)
	g, err := fake.NewTransactionGenerator(111, cfg, customers, products, reps)
	if err != nil {
		t.Fatalf("constructing generator: %v", err)
	}
	g.Now = testNow

	ids := make(map[string]struct{})
	for i := uint64(0); i < 1000; i++ {
		txn := g.Record(i)
		if exp := datagen.TransactionIDs.Format(i); txn.TransactionID != exp {
			t.Fatalf("id exp %s, got %s", exp, txn.TransactionID)
		}
		if _, ok := ids[txn.TransactionID]; ok {
			t.Fatalf("duplicate id %s", txn.TransactionID)
		}
		ids[txn.TransactionID] = struct{}{}

		// referential integrity: every fk is a member of its pool
		if !customers.Contains(txn.CustomerID) {
			t.Fatalf("customer fk %s not in pool", txn.CustomerID)
		}
		if !products.Contains(txn.ProductID) {
			t.Fatalf("product fk %s not in pool", txn.ProductID)
		}
		if !reps.Contains(txn.SalesRepID) {
			t.Fatalf("sales rep fk %s not in pool", txn.SalesRepID)
		}

		if txn.Quantity < cfg.Quantity.Min || txn.Quantity > cfg.Quantity.Max {
			t.Errorf("quantity %d out of range", txn.Quantity)
		}
		if txn.UnitPrice < cfg.TxnUnitPrice.Min || txn.UnitPrice > cfg.TxnUnitPrice.Max {
			t.Errorf("unit price %v out of range", txn.UnitPrice)
		}
		if txn.DiscountPercent < cfg.DiscountPercent.Min || txn.DiscountPercent > cfg.DiscountPercent.Max {
			t.Errorf("discount %v out of range", txn.DiscountPercent)
		}
		if txn.TaxAmount < cfg.TaxAmount.Min || txn.TaxAmount > cfg.TaxAmount.Max {
			t.Errorf("tax %v out of range", txn.TaxAmount)
		}
		if txn.TotalAmount < cfg.TotalAmount.Min || txn.TotalAmount > cfg.TotalAmount.Max {
			t.Errorf("total %v out of range", txn.TotalAmount)
		}
		if txn.TransactionDate.Before(cfg.TransactionDates.Start) || txn.TransactionDate.After(cfg.TransactionDates.End) {
			t.Errorf("date %s outside window", txn.TransactionDate)
		}
		if !contains(cfg.PaymentMethods, txn.PaymentMethod) {
			t.Errorf("payment method %q outside domain", txn.PaymentMethod)
		}

		// total derivation holds wherever the clamp did not engage
		derived := math.Round((float64(txn.Quantity)*txn.UnitPrice*(1-txn.DiscountPercent/100)+txn.TaxAmount)*100) / 100
		clamped := cfg.TotalAmount.Clamp(derived)
		if txn.TotalAmount != clamped {
			t.Errorf("total %v, derived %v (clamped %v)", txn.TotalAmount, derived, clamped)
		}
	}
}

func TestTransactionGeneratorEmptyPool(t *testing.T) {
	cfg := fake.DefaultConfig()
	customers, products, reps := testPools(10, 5, 3)
	empty := datagen.NewIDPool(0)

	if _, err := fake.NewTransactionGenerator(1, cfg, empty, products, reps); err == nil {
		t.Error("expected error for empty customer pool")
	}
	if _, err := fake.NewTransactionGenerator(1, cfg, customers, empty, reps); err == nil {
		t.Error("expected error for empty product pool")
	}
	if _, err := fake.NewTransactionGenerator(1, cfg, customers, products, empty); err == nil {
		t.Error("expected error for empty sales rep pool")
	}
}

func TestTransactionGeneratorReproducible(t *testing.T) {
	cfg := fake.DefaultConfig()
	customers, products, reps := testPools(100, 20, 5)

	a, err := fake.NewTransactionGenerator(42, cfg, customers, products, reps)
	if err != nil {
		t.Fatalf("constructing generator: %v", err)
	}
	a.Now = testNow
	b, err := fake.NewTransactionGenerator(42, cfg, customers, products, reps)
	if err != nil {
		t.Fatalf("constructing generator: %v", err)
	}
	b.Now = testNow

	for i := uint64(0); i < 100; i++ {
		ra, rb := a.Record(i), b.Record(i)
		if *ra != *rb {
			t.Fatalf("record %d diverged:\n%+v\n%+v", i, ra, rb)
		}
	}
}
