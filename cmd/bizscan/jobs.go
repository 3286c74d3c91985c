package main

import (
	"bizscan/internal/config"
	"bizscan/internal/pipeline"

	"github.com/spf13/cobra"
)

func init() {
	f := jobsCmd.Flags()
	f.String("keywords", "", "comma separated search keywords (default from config)")
	f.String("location", "", "search location (default: first configured location)")
	f.Int("max-results", 0, "number of jobs to generate, capped at 50 (default from config)")
	f.String("output", "", "output format: csv, json or excel (default from config)")
	f.String("out-file", "", "explicit export path")
	f.String("config", config.JobConfigPath, "job config file")
	rootCmd.AddCommand(jobsCmd)
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Generates synthetic job postings, exports them and prints a report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		path, _ := f.GetString("config")
		cfg := config.LoadJobs(path)

		if kw, _ := f.GetString("keywords"); kw != "" {
			cfg.Keywords = splitList(kw)
		}
		if f.Changed("max-results") {
			cfg.MaxResults, _ = f.GetInt("max-results")
		}
		if out, _ := f.GetString("output"); out != "" {
			cfg.OutputFormat = out
		}
		location, _ := f.GetString("location")
		outFile, _ := f.GetString("out-file")

		_, err := pipeline.RunJobs(cmd.Context(), env(), pipeline.JobsRequest{
			Config:   cfg,
			Location: location,
			Output:   outFile,
		})
		return err
	},
}
