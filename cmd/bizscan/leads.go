package main

import (
	"bizscan/internal/config"
	"bizscan/internal/pipeline"

	"github.com/spf13/cobra"
)

func init() {
	f := leadsCmd.Flags()
	f.String("industry", "", "target industry: technology, healthcare or finance (default: first configured)")
	f.String("location", "", "target region: usa, canada or uk (default: first configured)")
	f.Int("max-results", 0, "number of leads to generate, capped at 100 (default from config)")
	f.String("output", "", "output format: csv, json or excel (default from config)")
	f.String("out-file", "", "explicit export path")
	f.Bool("qualified-only", false, "export only leads at or above --min-score")
	f.Int("min-score", 0, "minimum lead score for qualification (default from config)")
	f.String("config", config.LeadConfigPath, "lead config file")
	rootCmd.AddCommand(leadsCmd)
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Generates synthetic B2B leads, exports them and prints a quality report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		path, _ := f.GetString("config")
		cfg := config.LoadLeads(path)

		if f.Changed("max-results") {
			cfg.MaxResults, _ = f.GetInt("max-results")
		}
		if out, _ := f.GetString("output"); out != "" {
			cfg.OutputFormat = out
		}
		if f.Changed("min-score") {
			cfg.MinScore, _ = f.GetInt("min-score")
		}
		industry, _ := f.GetString("industry")
		location, _ := f.GetString("location")
		qualifiedOnly, _ := f.GetBool("qualified-only")
		outFile, _ := f.GetString("out-file")

		_, err := pipeline.RunLeads(cmd.Context(), env(), pipeline.LeadsRequest{
			Config:        cfg,
			Industry:      industry,
			Location:      location,
			QualifiedOnly: qualifiedOnly,
			Output:        outFile,
		})
		return err
	},
}
