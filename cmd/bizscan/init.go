package main

import (
	"fmt"
	"path/filepath"

	"bizscan/internal/config"
	"bizscan/internal/domain"
	"bizscan/internal/sites"

	"github.com/spf13/cobra"
)

func init() {
	initCmd.Flags().String("dir", filepath.Dir(config.JobConfigPath), "directory for the config files")
	rootCmd.AddCommand(initCmd)
}

var sampleSites = []domain.Site{
	{URL: "https://www.indeed.com", Category: "jobs", Priority: domain.PriorityHigh, Enabled: true},
	{URL: "https://www.linkedin.com/jobs", Category: "jobs", Priority: domain.PriorityHigh, Enabled: true},
	{URL: "https://www.glassdoor.com", Category: "jobs", Priority: domain.PriorityMedium, Enabled: true},
	{URL: "https://www.monster.com", Category: "jobs", Priority: domain.PriorityLow, Enabled: false},
	{URL: "https://www.crunchbase.com", Category: "leads", Priority: domain.PriorityMedium, Enabled: true},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes default config files and a sample site registry unless they already exist.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		files := []struct {
			name string
			def  any
		}{
			{filepath.Base(config.JobConfigPath), config.DefaultJobs()},
			{filepath.Base(config.LeadConfigPath), config.DefaultLeads()},
			{filepath.Base(config.PriceConfigPath), config.DefaultPrices()},
		}
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			wrote, err := config.EnsureUserConfig(path, f.def)
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			if wrote {
				fmt.Println("created", path)
			} else {
				fmt.Println("exists ", path)
			}
		}

		regPath := filepath.Join(dir, filepath.Base(config.SitesPath))
		reg, err := sites.Open(regPath, sites.Filter{})
		if err != nil {
			return err
		}
		if len(reg.Sites()) > 0 {
			fmt.Println("exists ", regPath)
			return nil
		}
		if err := reg.BulkAdd(sampleSites); err != nil {
			return err
		}
		fmt.Println("created", regPath)
		return nil
	},
}
