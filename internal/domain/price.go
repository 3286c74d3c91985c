package domain

// PriceObservation is one product price seen on one retailer site.
type PriceObservation struct {
	ProductName        string  `csv:"product_name" json:"product_name"`
	Category           string  `csv:"category" json:"category"`
	Site               string  `csv:"site" json:"site"`
	CurrentPrice       float64 `csv:"current_price" json:"current_price"`
	OriginalPrice      float64 `csv:"original_price" json:"original_price"`
	DiscountPercentage float64 `csv:"discount_percentage" json:"discount_percentage"`
	Availability       bool    `csv:"availability" json:"availability"`
	StockStatus        string  `csv:"stock_status" json:"stock_status"`
	PriceChange        float64 `csv:"price_change" json:"price_change"`
	PriceChangePercent float64 `csv:"price_change_percent" json:"price_change_percent"`
	LastUpdated        string  `csv:"last_updated" json:"last_updated"`
	ScrapedAt          string  `csv:"scraped_at" json:"scraped_at"`
}

var priceColumns = []string{
	"product_name", "category", "site", "current_price", "original_price",
	"discount_percentage", "availability", "stock_status", "price_change",
	"price_change_percent", "last_updated", "scraped_at",
}

func (PriceObservation) Columns() []string { return priceColumns }

func (p PriceObservation) Values() []any {
	return []any{
		p.ProductName, p.Category, p.Site, p.CurrentPrice, p.OriginalPrice,
		p.DiscountPercentage, p.Availability, p.StockStatus, p.PriceChange,
		p.PriceChangePercent, p.LastUpdated, p.ScrapedAt,
	}
}

const (
	InStock    = "In Stock"
	OutOfStock = "Out of Stock"
)
