package handlers

import (
	"electromart/internal/cart"
	"electromart/internal/config"
	"electromart/internal/invoice"
	"electromart/internal/repos"
	"electromart/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	BillingHandler *BillingHandler
	CatalogHandler *CatalogHandler
	BillsHandler   *BillsHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, carts *cart.Store) *Deps {
	prodRepo := repos.NewProductRepo(db)
	billRepo := repos.NewBillRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	billingSvc := services.NewBillingService(prodRepo, billRepo)
	renderer := invoice.NewRenderer(cfg.StoreName)

	return &Deps{
		BillingHandler: &BillingHandler{Carts: carts, Billing: billingSvc, Catalog: catalogSvc, Bills: billRepo, Invoice: renderer},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		BillsHandler:   &BillsHandler{Billing: billingSvc},
	}
}
