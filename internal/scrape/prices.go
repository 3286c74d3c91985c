package scrape

import (
	"context"
	"fmt"
	"log"

	"bizscan/internal/domain"
)

type PriceParams struct {
	NumProducts int
	// Products and Sites replace the built-in tables when non-empty.
	Products []domain.Product
	Sites    []string
}

// Prices observes the first NumProducts products on every site, so the
// result holds min(NumProducts, len(products)) × len(sites) records.
func Prices(ctx context.Context, g *Generator, p PriceParams) ([]domain.PriceObservation, error) {
	products := p.Products
	if len(products) == 0 {
		products = defaultProducts
	}
	sites := p.Sites
	if len(sites) == 0 {
		sites = defaultSites
	}
	log.Printf("[prices] generating price monitoring data...")

	n := capCount(p.NumProducts, len(products))
	out := make([]domain.PriceObservation, 0, n*len(sites))

	for _, prod := range products[:n] {
		for _, site := range sites {
			variation := uniform(g.Rng, -0.2, 0.3)
			current := prod.BasePrice * (1 + variation)
			available := g.Rng.IntN(4) != 0

			discount := 0.0
			if g.Rng.Float64() < 0.3 {
				discount = uniform(g.Rng, 0, 0.25)
			}

			status := domain.InStock
			if !available {
				status = domain.OutOfStock
			}

			stamp := g.stamp()
			out = append(out, domain.PriceObservation{
				ProductName:        prod.Name,
				Category:           prod.Category,
				Site:               site,
				CurrentPrice:       round(current, 2),
				OriginalPrice:      prod.BasePrice,
				DiscountPercentage: round(discount*100, 1),
				Availability:       available,
				StockStatus:        status,
				PriceChange:        round(current-prod.BasePrice, 2),
				PriceChangePercent: round((current-prod.BasePrice)/prod.BasePrice*100, 1),
				LastUpdated:        stamp,
				ScrapedAt:          stamp,
			})

			if len(out)%20 == 0 {
				log.Printf("[prices] monitored %d price points...", len(out))
			}
			if err := g.Pacer.Wait(ctx); err != nil {
				return nil, fmt.Errorf("generate prices: %w", err)
			}
		}
	}

	log.Printf("[prices] successfully monitored %d price points", len(out))
	return out, nil
}
