package handlers

import (
	"github.com/gofiber/fiber/v2"

	"electromart/internal/log"
	"electromart/internal/repos"
	"electromart/internal/services"
	"electromart/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Page(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		log.Error(c, "catalog.list.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}
	return render(c, "products", fiber.Map{"Products": products})
}

func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	name, ok := validate.ProductName(c.FormValue("name"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "name"})
		return h.pageWithErr(c, "Enter a product name (max 80 characters)")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "price"})
		return h.pageWithErr(c, "Enter a non-negative price")
	}

	res, err := h.Catalog.Add(name, price)
	if err != nil {
		log.Error(c, "catalog.add.error", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not add the product. Please retry."})
	}
	// Duplicate adds keep the existing row; the screen reports success
	// either way, as the reference UI did.
	if res == repos.AlreadyExists {
		log.Info(c, "catalog.add.duplicate", map[string]any{"name": name})
	} else {
		log.Audit(c, "catalog.add", map[string]any{"name": name, "price": price})
	}
	return c.Redirect("/products")
}

func (h *CatalogHandler) UpdatePrice(c *fiber.Ctx) error {
	name, ok := validate.ProductName(c.FormValue("name"))
	if !ok {
		return h.pageWithErr(c, "Select a product")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return h.pageWithErr(c, "Enter a non-negative price")
	}
	if err := h.Catalog.UpdatePrice(name, price); err != nil {
		log.Error(c, "catalog.update.error", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update the price. Please retry."})
	}
	log.Audit(c, "catalog.update", map[string]any{"name": name, "price": price})
	return c.Redirect("/products")
}

func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	name, ok := validate.ProductName(c.FormValue("name"))
	if !ok {
		return h.pageWithErr(c, "Select a product")
	}
	if err := h.Catalog.Delete(name); err != nil {
		log.Error(c, "catalog.delete.error", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete the product. Please retry."})
	}
	log.Audit(c, "catalog.delete", map[string]any{"name": name})
	return c.Redirect("/products")
}

func (h *CatalogHandler) pageWithErr(c *fiber.Ctx, msg string) error {
	products, _ := h.Catalog.List()
	return c.Status(fiber.StatusBadRequest).Render("products", fiber.Map{
		"Products": products, "Err": msg,
	})
}
