package services

import (
	"shop-service/models"
	"shop-service/repositories"
)

// PricingEngine turns requested (product, quantity) pairs into priced order
// lines. Prices are read from the live catalog exactly once, here; the drafts
// it returns are frozen snapshots from then on.
type PricingEngine struct {
	products repositories.ProductRepository
}

func NewPricingEngine(products repositories.ProductRepository) *PricingEngine {
	return &PricingEngine{products: products}
}

// PriceLines resolves every input against the catalog and computes the order
// total. If any product id is unresolvable the whole call fails and no drafts
// are returned.
func (e *PricingEngine) PriceLines(inputs []models.LineInput) ([]models.OrderLine, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, models.NewValidationError("products", "order must contain at least one product")
	}

	lines := make([]models.OrderLine, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, 0, models.NewValidationError("quantity", "must be at least 1")
		}
		product, err := e.products.GetByID(in.ProductID)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, models.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			Price:       product.Price,
			Subtotal:    models.RoundCents(product.Price * float64(in.Quantity)),
		})
		total += product.Price * float64(in.Quantity)
	}
	return lines, models.RoundCents(total), nil
}

