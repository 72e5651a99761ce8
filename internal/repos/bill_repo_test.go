package repos_test

import (
	"regexp"
	"testing"

	"electromart/internal/domain"
	"electromart/internal/repos"
)

func TestBillSaveAndSearch(t *testing.T) {
	db := memdb(t)
	r := repos.NewBillRepo(db)

	items, err := domain.EncodeItems([]domain.CartEntry{
		{ProductName: "Fan", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, GSTPercent: 18},
		{ProductName: "Lamp", UnitPrice: 376, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	id, err := r.Save("Asha", "+911234567890", "Pune", items, 2500.0)
	if err != nil {
		t.Fatal(err)
	}
	if id <= 0 {
		t.Fatalf("want positive bill id, got %d", id)
	}

	// Search by name and by phone digits both hit the same bill
	for _, q := range []string{"Asha", "911234567890"} {
		bills, err := r.Search(q)
		if err != nil {
			t.Fatal(err)
		}
		if len(bills) != 1 || bills[0].BillID != id {
			t.Fatalf("search %q: want bill %d, got %+v", q, id, bills)
		}
	}

	bills, err := r.Search("nomatch")
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 0 {
		t.Fatalf("want no results, got %+v", bills)
	}
}

func TestBillDateFormat(t *testing.T) {
	db := memdb(t)
	r := repos.NewBillRepo(db)

	id, err := r.Save("Ravi", "+919900112233", "Mumbai", "[]", 100.0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, b.BillDate); !ok {
		t.Fatalf("bad bill_date format: %q", b.BillDate)
	}
}

func TestBillItemsRoundTrip(t *testing.T) {
	db := memdb(t)
	r := repos.NewBillRepo(db)

	in := []domain.CartEntry{
		{ProductName: "Fan", UnitPrice: 1500, Quantity: 2, DiscountPercent: 5, GSTPercent: 18},
	}
	items, err := domain.EncodeItems(in)
	if err != nil {
		t.Fatal(err)
	}
	id, err := r.Save("Asha", "+911234567890", "Pune", items, 2988.9)
	if err != nil {
		t.Fatal(err)
	}

	b, err := r.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	out, err := domain.DecodeItems(b.Items)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("items did not survive storage: %+v", out)
	}
}

func TestBillSearchIsCaseInsensitive(t *testing.T) {
	db := memdb(t)
	r := repos.NewBillRepo(db)

	if _, err := r.Save("Asha Patel", "+911234567890", "Pune", "[]", 10); err != nil {
		t.Fatal(err)
	}
	bills, err := r.Search("asha")
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 {
		t.Fatalf("want 1 result for lowercase query, got %d", len(bills))
	}
}
