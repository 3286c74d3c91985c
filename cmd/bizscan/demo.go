package main

import (
	"fmt"

	"bizscan/internal/config"
	"bizscan/internal/pipeline"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Runs all three pipelines with spreadsheet output and summarises the results.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := pipeline.RunDemo(cmd.Context(), env(), pipeline.DemoConfigs{
			Jobs:   config.LoadJobs(config.JobConfigPath),
			Leads:  config.LoadLeads(config.LeadConfigPath),
			Prices: config.LoadPrices(config.PriceConfigPath),
		})

		t := newTable()
		t.SetTitle("Demo Results")
		t.AppendHeader(table.Row{"Step", "Status", "Records", "File"})
		for _, s := range res.Steps {
			status := "passed"
			if s.Err != nil {
				status = "failed: " + s.Err.Error()
			}
			t.AppendRow(table.Row{s.Name, status, s.Result.Records, s.Result.Path})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d passed", res.Passed(), len(res.Steps)), "", ""})
		t.Render()

		if err := printSummary(res.DataDir); err != nil {
			return err
		}
		if res.Failed() > 0 {
			return fmt.Errorf("%d of %d demos failed", res.Failed(), len(res.Steps))
		}
		return nil
	},
}

func printSummary(dir string) error {
	files, err := pipeline.Artifacts(dir)
	if err != nil {
		return err
	}

	t := newTable()
	t.SetTitle("Executive Summary: " + dir)
	t.AppendHeader(table.Row{"File", "Size", "Written"})
	var total uint64
	for _, f := range files {
		total += uint64(f.Size)
		t.AppendRow(table.Row{f.Name, humanize.Bytes(uint64(f.Size)), humanize.Time(f.ModTime)})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(files)), humanize.Bytes(total), ""})
	t.Render()
	return nil
}
