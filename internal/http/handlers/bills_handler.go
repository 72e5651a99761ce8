package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"electromart/internal/log"
	"electromart/internal/services"
	"electromart/internal/validate"
)

type BillsHandler struct {
	Billing *services.BillingService
}

// Search looks up saved bills by customer name or phone substring.
// An empty query shows the empty search form rather than every bill.
func (h *BillsHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return render(c, "bills", fiber.Map{"Q": "", "Bills": []any{}, "Count": 0})
	}
	q, ok := validate.Query(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q"})
		return c.Status(fiber.StatusBadRequest).Render("bills", fiber.Map{
			"Q": "", "Bills": []any{}, "Count": 0, "Err": "Enter a name or phone number to search",
		})
	}

	bills, err := h.Billing.Search(q)
	if err != nil {
		log.Error(c, "bills.search.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}
	return render(c, "bills", fiber.Map{"Q": q, "Bills": bills, "Count": len(bills)})
}
