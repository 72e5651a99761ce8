package handlers

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"electromart/internal/cart"
	"electromart/internal/domain"
	"electromart/internal/invoice"
	"electromart/internal/log"
	"electromart/internal/pricing"
	"electromart/internal/repos"
	"electromart/internal/services"
	"electromart/internal/validate"
)

type BillingHandler struct {
	Carts   *cart.Store
	Billing *services.BillingService
	Catalog *services.CatalogService
	Bills   *repos.BillRepo
	Invoice *invoice.Renderer
}

func (h *BillingHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

type cartLine struct {
	domain.CartEntry
	LineTotal string
}

func (h *BillingHandler) cartView(sess *cart.Session) ([]cartLine, string) {
	entries := sess.Entries()
	lines := make([]cartLine, len(entries))
	for i, e := range entries {
		lines[i] = cartLine{CartEntry: e, LineTotal: pricing.Display(pricing.LineTotal(e))}
	}
	return lines, pricing.Display(pricing.GrandTotal(entries))
}

// Page renders the billing screen: customer form, product picker and
// the current cart with line and grand totals.
func (h *BillingHandler) Page(c *fiber.Ctx) error {
	sess := h.Carts.Get(h.ensureSID(c))
	products, err := h.Catalog.List()
	if err != nil {
		log.Error(c, "billing.products.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please retry."})
	}
	lines, total := h.cartView(sess)
	return render(c, "billing", fiber.Map{
		"Products": products, "Cart": lines, "Total": total,
	})
}

// AddLine appends one product selection to the session cart, with the
// catalog price snapshotted at add time.
func (h *BillingHandler) AddLine(c *fiber.Ctx) error {
	sess := h.Carts.Get(h.ensureSID(c))

	name, ok := validate.ProductName(c.FormValue("product"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).SendString("missing product")
	}
	qty := validate.Qty(c.FormValue("qty"))
	discount := validate.Discount(c.FormValue("discount"))
	gst := validate.GST(c.FormValue("gst"))

	if err := h.Billing.AddLine(sess, name, qty, discount, gst); err != nil {
		log.Error(c, "cart.add.error", err, map[string]any{"product": name})
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	log.Info(c, "cart.add", map[string]any{"product": name, "qty": qty})
	return c.Redirect("/")
}

func (h *BillingHandler) ClearCart(c *fiber.Ctx) error {
	sess := h.Carts.Get(h.ensureSID(c))
	sess.Clear()
	return c.Redirect("/")
}

// Finalize persists the cart as a bill and shows the invoice page with
// the share link and PDF download.
func (h *BillingHandler) Finalize(c *fiber.Ctx) error {
	sess := h.Carts.Get(h.ensureSID(c))

	custName := c.FormValue("customer_name")
	phone := c.FormValue("phone")
	address := c.FormValue("address")

	// Snapshot before Finalize clears the session.
	entries := sess.Entries()

	billID, err := h.Billing.Finalize(sess, custName, phone, address)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			products, _ := h.Catalog.List()
			return c.Status(fiber.StatusBadRequest).Render("billing", fiber.Map{
				"Products": products, "Err": "Cart is empty. Add at least one item before generating a bill.",
			})
		}
		log.Error(c, "bill.finalize.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save the bill. Please retry."})
	}
	log.Audit(c, "bill.finalize", map[string]any{"bill_id": billID, "customer": custName})

	bill, err := h.Bills.Get(billID)
	if err != nil {
		log.Error(c, "bill.load.error", err, map[string]any{"bill_id": billID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Bill saved but could not be displayed."})
	}

	msg := h.Invoice.Message(bill, entries)
	lines := make([]cartLine, len(entries))
	for i, e := range entries {
		lines[i] = cartLine{CartEntry: e, LineTotal: pricing.Display(pricing.LineTotal(e))}
	}
	return render(c, "invoice", fiber.Map{
		"Bill":        bill,
		"Lines":       lines,
		"Total":       pricing.Display(pricing.GrandTotal(entries)),
		"WhatsAppURL": invoice.WhatsAppURL(bill.Phone, msg),
		"PDFPath":     "/bills/" + strconv.FormatInt(billID, 10) + "/invoice.pdf",
	})
}

// InvoicePDF serves the printable invoice for a saved bill, decoding
// the stored items blob back into typed entries.
func (h *BillingHandler) InvoicePDF(c *fiber.Ctx) error {
	billID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	bill, err := h.Bills.Get(billID)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	entries, err := domain.DecodeItems(bill.Items)
	if err != nil {
		log.Error(c, "bill.items.decode.error", err, map[string]any{"bill_id": billID})
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	var buf bytes.Buffer
	if err := h.Invoice.WritePDF(&buf, bill, entries); err != nil {
		log.Error(c, "invoice.render.error", err, map[string]any{"bill_id": billID})
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice.pdf"`)
	return c.Send(buf.Bytes())
}
