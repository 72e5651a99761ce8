package repos

import (
	"electromart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// AddResult reports whether Add inserted a row or hit the unique name
// constraint. The reference behavior swallowed the duplicate entirely;
// callers here get to see it and decide.
type AddResult int

const (
	Added AddResult = iota
	AlreadyExists
)

// List returns the catalog sorted ascending by name. Empty catalog is
// an empty slice, not an error.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT id, name, price FROM products ORDER BY name ASC`)
	return out, err
}

func (r *ProductRepo) Get(name string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id, name, price FROM products WHERE name = ?`, name)
	return p, err
}

// Add inserts the product unless the name is already taken. A
// duplicate leaves the existing row (and its price) untouched.
func (r *ProductRepo) Add(name string, price float64) (AddResult, error) {
	res, err := r.db.Exec(`
		INSERT INTO products(name, price) VALUES(?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, price)
	if err != nil {
		return AlreadyExists, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return AlreadyExists, err
	}
	if n == 0 {
		return AlreadyExists, nil
	}
	return Added, nil
}

// UpdatePrice sets the price for the named product. A missing name is
// a no-op, not an error.
func (r *ProductRepo) UpdatePrice(name string, price float64) error {
	_, err := r.db.Exec(`UPDATE products SET price = ? WHERE name = ?`, price, name)
	return err
}

// Delete removes the named product. A missing name is a no-op.
func (r *ProductRepo) Delete(name string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE name = ?`, name)
	return err
}
