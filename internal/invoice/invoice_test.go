package invoice_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electromart/internal/domain"
	"electromart/internal/invoice"
)

var testBill = domain.Bill{
	BillID:       7,
	CustomerName: "Asha",
	Phone:        "+911234567890",
	Address:      "Pune",
	BillDate:     "2026-08-28 11:30:00",
	Total:        2124.0,
}

var testEntries = []domain.CartEntry{
	{ProductName: "Ceiling Fan", UnitPrice: 1000, Quantity: 2, DiscountPercent: 10, GSTPercent: 18},
}

func TestMessage(t *testing.T) {
	r := invoice.NewRenderer("INDIA ELECTRONICS MART")
	msg := r.Message(testBill, testEntries)

	assert.True(t, strings.HasPrefix(msg, "INDIA ELECTRONICS MART\n"))
	assert.Contains(t, msg, "Customer: Asha")
	assert.Contains(t, msg, "Phone: +911234567890")
	assert.Contains(t, msg, "Ceiling Fan x 2 = ₹2124.00")
	assert.Contains(t, msg, "Grand Total: ₹2124.00")
	assert.True(t, strings.HasSuffix(msg, "Thank you for shopping!"))
}

func TestWhatsAppURL(t *testing.T) {
	url := invoice.WhatsAppURL("+911234567890", "Grand Total: 2124.00")

	assert.True(t, strings.HasPrefix(url, "https://wa.me/911234567890?text="), url)
	assert.NotContains(t, url, "+91", "leading plus must be stripped")
	assert.NotContains(t, strings.TrimPrefix(url, "https://wa.me/911234567890?text="), " ", "message must be escaped")
}

func TestWritePDF(t *testing.T) {
	r := invoice.NewRenderer("INDIA ELECTRONICS MART")

	var buf bytes.Buffer
	require.NoError(t, r.WritePDF(&buf, testBill, testEntries))

	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
}
