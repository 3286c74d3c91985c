package main

import (
	"bizscan/internal/config"
	"bizscan/internal/pipeline"
	"bizscan/internal/rank"

	"github.com/spf13/cobra"
)

func init() {
	f := pricesCmd.Flags()
	f.Int("products", 20, "number of products to monitor (capped at the product table size)")
	f.Float64("threshold", rank.DefaultReportThreshold, "price change ratio counted as significant")
	f.String("output", "", "output format: csv, json or excel (default from config)")
	f.String("out-file", "", "explicit export path")
	f.String("config", config.PriceConfigPath, "price config file")
	rootCmd.AddCommand(pricesCmd)
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Generates synthetic price observations, exports them and prints a price report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		path, _ := f.GetString("config")
		cfg := config.LoadPrices(path)

		if out, _ := f.GetString("output"); out != "" {
			cfg.OutputFormat = out
		}
		n, _ := f.GetInt("products")
		threshold, _ := f.GetFloat64("threshold")
		outFile, _ := f.GetString("out-file")

		_, err := pipeline.RunPrices(cmd.Context(), env(), pipeline.PricesRequest{
			Config:      cfg,
			NumProducts: n,
			Threshold:   threshold,
			Output:      outFile,
		})
		return err
	},
}
