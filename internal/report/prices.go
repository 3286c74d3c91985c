package report

import (
	"context"

	"bizscan/internal/domain"
	"bizscan/internal/rank"
	"bizscan/internal/store"
)

func Prices(ctx context.Context, obs []domain.PriceObservation, opts Options) (Report, error) {
	if opts.Threshold <= 0 {
		opts.Threshold = rank.DefaultReportThreshold
	}
	return build(ctx, store.Prices, "Price Monitoring Report", obs, opts, func(b *builder) {
		b.count("total_price_points", "Total price points")
		b.countDistinct("unique_products", "Unique products", "product_name")
		b.countDistinct("sites_monitored", "Sites monitored", "site")

		avg, err := store.Mean(b.ctx, b.db.Pool, b.table, "current_price")
		b.fail(err)
		b.metric("average_price", "Average price", round(avg, 2))

		b.metric("significant_changes", "Significant changes", len(rank.SignificantChanges(obs, opts.Threshold)))
		b.countTrue("available", "Available", "availability")
		b.metric("out_of_stock", "Out of stock", len(rank.Filter(obs, func(p domain.PriceObservation) bool {
			return !p.Availability
		})))

		b.groupMeans("Avg Change % by Category", "Category", "Change %", "category", "price_change_percent", 1)
		b.groupMeans("Avg Price by Site", "Site", "Price", "site", "current_price", 2)
		b.top("Top Price Drops", []string{"Product", "Site", "Price", "Change %"},
			"price_change_percent", false, "product_name", "site", "current_price", "price_change_percent")
	})
}
