// Package invoice turns a finalized bill into its output artifacts: a
// printable PDF and a plaintext summary with a WhatsApp share link.
package invoice

import (
	"io"

	"github.com/go-pdf/fpdf"

	"electromart/internal/domain"
	"electromart/internal/pricing"
)

type Renderer struct {
	StoreName string
}

func NewRenderer(storeName string) *Renderer {
	return &Renderer{StoreName: storeName}
}

// WritePDF renders the printable invoice: store header, customer
// block, a line-item table and a grand-total row. The core PDF fonts
// are cp1252-only, so amounts are prefixed "Rs." rather than the
// rupee sign used in plaintext output.
func (r *Renderer) WritePDF(w io.Writer, bill domain.Bill, entries []domain.CartEntry) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, r.StoreName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 8, "Customer: "+bill.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 8, "Phone: "+bill.Phone, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 8, "Address: "+bill.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 8, "Date: "+bill.BillDate, "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, e := range entries {
		pdf.CellFormat(70, 8, e.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, itoa(e.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, "Rs."+money(e.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, "Rs."+pricing.Display(pricing.LineTotal(e)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Grand Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Rs."+pricing.Display(pricing.GrandTotal(entries)), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
