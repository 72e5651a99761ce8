package invoice

import (
	"net/url"
	"strconv"
	"strings"

	"electromart/internal/domain"
	"electromart/internal/pricing"
)

// Message builds the plaintext bill summary sent alongside the
// invoice. Layout follows the printable document: header, customer
// block, one line per item, grand total.
func (r *Renderer) Message(bill domain.Bill, entries []domain.CartEntry) string {
	var b strings.Builder
	b.WriteString(r.StoreName + "\n")
	b.WriteString("Customer: " + bill.CustomerName + "\n")
	b.WriteString("Phone: " + bill.Phone + "\n")
	b.WriteString("Address: " + bill.Address + "\n")
	b.WriteString("Date: " + bill.BillDate + "\n\n")

	for _, e := range entries {
		b.WriteString(e.ProductName + " x " + itoa(e.Quantity) + " = ₹" + pricing.Display(pricing.LineTotal(e)) + "\n")
	}

	b.WriteString("\nGrand Total: ₹" + pricing.Display(pricing.GrandTotal(entries)) + "\n")
	b.WriteString("Thank you for shopping!")
	return b.String()
}

// WhatsAppURL builds a wa.me share link for the given phone number.
// The leading "+" is stripped naively; the number is otherwise passed
// through unvalidated.
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + strings.ReplaceAll(phone, "+", "") + "?text=" + url.QueryEscape(message)
}

func itoa(n int) string { return strconv.Itoa(n) }

func money(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
