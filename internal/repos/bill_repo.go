package repos

import (
	"time"

	"electromart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BillRepo struct{ db *sqlx.DB }

func NewBillRepo(db *sqlx.DB) *BillRepo { return &BillRepo{db: db} }

const billDateLayout = "2006-01-02 15:04:05"

// Save inserts a new bill row, stamping it with the current time, and
// returns the generated bill id. Rows are never updated or deleted.
func (r *BillRepo) Save(customerName, phone, address, items string, total float64) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO bills(customer_name, phone, address, bill_date, items, total)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, customerName, phone, address, time.Now().Format(billDateLayout), items, total)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *BillRepo) Get(billID int64) (domain.Bill, error) {
	var b domain.Bill
	err := r.db.Get(&b, `
	  SELECT bill_id, customer_name, phone, address, bill_date, items, total
	  FROM bills WHERE bill_id = ?
	`, billID)
	return b, err
}

// Search returns bills whose customer name or phone contains query as
// a substring. SQLite LIKE is case-insensitive for ASCII, which is the
// collation the reference relied on.
func (r *BillRepo) Search(query string) ([]domain.Bill, error) {
	out := []domain.Bill{}
	like := "%" + query + "%"
	err := r.db.Select(&out, `
	  SELECT bill_id, customer_name, phone, address, bill_date, items, total
	  FROM bills
	  WHERE customer_name LIKE ? OR phone LIKE ?
	  ORDER BY bill_id
	`, like, like)
	return out, err
}
