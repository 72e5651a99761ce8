package services

import (
	"database/sql"
	"fmt"

	"electromart/internal/cart"
	"electromart/internal/domain"
	"electromart/internal/pricing"
	"electromart/internal/repos"
)

type BillingService struct {
	Prods *repos.ProductRepo
	Bills *repos.BillRepo
}

func NewBillingService(prods *repos.ProductRepo, bills *repos.BillRepo) *BillingService {
	return &BillingService{Prods: prods, Bills: bills}
}

// AddLine snapshots the catalog price for the named product and
// appends a line to the session cart. The stored price never changes
// after this point, even if the catalog is updated.
func (s *BillingService) AddLine(sess *cart.Session, productName string, qty, discount, gst int) error {
	p, err := s.Prods.Get(productName)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("unknown product %q", productName)
		}
		return err
	}
	sess.AddLine(domain.CartEntry{
		ProductName:     p.Name,
		UnitPrice:       p.Price,
		Quantity:        qty,
		DiscountPercent: discount,
		GSTPercent:      gst,
	})
	return nil
}

// Finalize persists the cart as an immutable bill and empties the
// session. An empty cart is rejected before the bill store is touched.
// Customer name and phone are saved as-is, blank or not; the reference
// never validated them.
func (s *BillingService) Finalize(sess *cart.Session, customerName, phone, address string) (int64, error) {
	if sess.Empty() {
		return 0, cart.ErrEmptyCart
	}

	entries := sess.Entries()
	items, err := domain.EncodeItems(entries)
	if err != nil {
		return 0, fmt.Errorf("encode items: %w", err)
	}
	total, _ := pricing.GrandTotal(entries).Float64()

	billID, err := s.Bills.Save(customerName, phone, address, items, total)
	if err != nil {
		return 0, fmt.Errorf("save bill: %w", err)
	}

	sess.Clear()
	return billID, nil
}

// Search looks up saved bills by customer name or phone substring.
func (s *BillingService) Search(query string) ([]domain.Bill, error) {
	return s.Bills.Search(query)
}
