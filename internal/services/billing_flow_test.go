package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"electromart/internal/cart"
	"electromart/internal/domain"
	"electromart/internal/repos"
	"electromart/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE products(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE, price REAL);
	CREATE TABLE bills(bill_id INTEGER PRIMARY KEY AUTOINCREMENT, customer_name TEXT, phone TEXT,
	  address TEXT, bill_date TEXT, items TEXT, total REAL);

	INSERT INTO products(name, price) VALUES ('Ceiling Fan', 1500.0), ('Table Lamp', 799.0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestBillingFlow_AddFinalizeSearch(t *testing.T) {
	db := memdb(t)

	prodRepo := repos.NewProductRepo(db)
	billRepo := repos.NewBillRepo(db)
	svc := services.NewBillingService(prodRepo, billRepo)

	sess := cart.NewStore().Get("test-session")
	if err := svc.AddLine(sess, "Ceiling Fan", 2, 10, 18); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddLine(sess, "Table Lamp", 1, 0, 0); err != nil {
		t.Fatal(err)
	}

	billID, err := svc.Finalize(sess, "Asha", "+911234567890", "Pune")
	if err != nil {
		t.Fatal(err)
	}
	if billID <= 0 {
		t.Fatalf("want positive bill id, got %d", billID)
	}
	if !sess.Empty() {
		t.Fatal("finalize should clear the cart")
	}

	bill, err := billRepo.Get(billID)
	if err != nil {
		t.Fatal(err)
	}
	// 1500*2*0.9*1.18 + 799 = 3186 + 799
	if bill.Total != 3985.0 {
		t.Fatalf("want total 3985, got %v", bill.Total)
	}

	entries, err := domain.DecodeItems(bill.Items)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].UnitPrice != 1500.0 {
		t.Fatalf("bad stored items: %+v", entries)
	}

	bills, err := svc.Search("Asha")
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 || bills[0].BillID != billID {
		t.Fatalf("search missed the saved bill: %+v", bills)
	}
}

func TestFinalizeEmptyCartRejected(t *testing.T) {
	db := memdb(t)

	billRepo := repos.NewBillRepo(db)
	svc := services.NewBillingService(repos.NewProductRepo(db), billRepo)

	sess := cart.NewStore().Get("test-session")
	_, err := svc.Finalize(sess, "Asha", "+911234567890", "Pune")
	if !errors.Is(err, cart.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	// Bill store must be untouched
	bills, err := billRepo.Search("")
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 0 {
		t.Fatalf("empty-cart finalize persisted a bill: %+v", bills)
	}
}

func TestAddLineSnapshotsPrice(t *testing.T) {
	db := memdb(t)

	prodRepo := repos.NewProductRepo(db)
	svc := services.NewBillingService(prodRepo, repos.NewBillRepo(db))

	sess := cart.NewStore().Get("test-session")
	if err := svc.AddLine(sess, "Ceiling Fan", 1, 0, 0); err != nil {
		t.Fatal(err)
	}

	// A later catalog update must not change the captured line price.
	if err := prodRepo.UpdatePrice("Ceiling Fan", 9999.0); err != nil {
		t.Fatal(err)
	}
	if got := sess.Entries()[0].UnitPrice; got != 1500.0 {
		t.Fatalf("want snapshot price 1500, got %v", got)
	}
}

func TestAddLineUnknownProduct(t *testing.T) {
	db := memdb(t)
	svc := services.NewBillingService(repos.NewProductRepo(db), repos.NewBillRepo(db))

	sess := cart.NewStore().Get("test-session")
	if err := svc.AddLine(sess, "Ghost", 1, 0, 0); err == nil {
		t.Fatal("want error for unknown product")
	}
	if !sess.Empty() {
		t.Fatal("failed add must not leave a line behind")
	}
}
