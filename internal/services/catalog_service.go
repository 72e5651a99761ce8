package services

import (
	"electromart/internal/domain"
	"electromart/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Add(name string, price float64) (repos.AddResult, error) {
	return s.Prods.Add(name, price)
}

func (s *CatalogService) UpdatePrice(name string, price float64) error {
	return s.Prods.UpdatePrice(name, price)
}

func (s *CatalogService) Delete(name string) error {
	return s.Prods.Delete(name)
}
