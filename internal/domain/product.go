package domain

// Product is a reference-table entry used by the price generator.
type Product struct {
	Name      string  `yaml:"name" json:"name"`
	Category  string  `yaml:"category" json:"category"`
	BasePrice float64 `yaml:"base_price" json:"base_price"`
}
