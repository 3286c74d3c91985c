package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"bizscan/internal/config"
	"bizscan/internal/domain"
	"bizscan/internal/export"
	"bizscan/internal/report"
	"bizscan/internal/sites"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	pf := sitesCmd.PersistentFlags()
	pf.String("config", config.JobConfigPath, "job config file holding the site filter")
	pf.String("registry", "", "site registry CSV (default: target_sites_csv from config, else "+config.SitesPath+")")

	af := sitesAddCmd.Flags()
	af.String("category", "", "category for URLs given as arguments")
	af.String("priority", string(domain.PriorityMedium), "priority for URLs given as arguments: low, medium or high")
	af.Bool("disabled", false, "add the URLs disabled")
	af.String("file", "", "CSV file of entries to add (site_url, category, priority, enabled)")

	sitesCmd.AddCommand(sitesListCmd, sitesStatsCmd, sitesCategoryCmd, sitesPriorityCmd,
		sitesAddCmd, sitesEnableCmd, sitesDisableCmd)
	rootCmd.AddCommand(sitesCmd)
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Inspects and edits the target site registry.",
}

func openRegistry(cmd *cobra.Command) (*sites.Registry, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg := config.LoadJobs(cfgPath)

	path, _ := cmd.Flags().GetString("registry")
	if path == "" {
		path = cfg.TargetSitesCSV
	}
	if path == "" {
		path = config.SitesPath
	}
	return sites.Open(path, sites.FilterFromConfig(cfg.SiteFilter))
}

func printSites(title string, rows []domain.Site, active []string) {
	isActive := map[string]bool{}
	for _, u := range active {
		isActive[u] = true
	}

	t := newTable()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"URL", "Category", "Priority", "Enabled", "Active"})
	for _, s := range rows {
		t.AppendRow(table.Row{s.URL, s.Category, s.Priority, s.Enabled, isActive[s.URL]})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(rows)})
	t.Render()
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every site in the registry and whether it is active.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		printSites("Sites", reg.Sites(), reg.Active())
		return nil
	},
}

var sitesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints registry statistics.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		st := reg.Stats()
		r, err := report.Sites(cmd.Context(), reg.Sites(), st.Active, report.Options{})
		if err != nil {
			if errors.Is(err, report.ErrNoRecords) {
				fmt.Fprintln(os.Stderr, "registry is empty")
				return nil
			}
			return err
		}
		report.Render(os.Stdout, r)
		return nil
	},
}

var sitesCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Lists enabled sites in a category.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		printSites("Category: "+args[0], reg.ByCategory(args[0]), reg.Active())
		return nil
	},
}

var sitesPriorityCmd = &cobra.Command{
	Use:   "priority <low|medium|high>",
	Short: "Lists enabled sites of a priority.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := domain.Priority(strings.ToLower(args[0]))
		if p.Rank() == 0 {
			return fmt.Errorf("unknown priority %q (want low, medium or high)", args[0])
		}
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		printSites("Priority: "+string(p), reg.ByPriority(p), reg.Active())
		return nil
	},
}

var sitesAddCmd = &cobra.Command{
	Use:   "add [url...]",
	Short: "Adds sites to the registry. A later entry for the same URL replaces the earlier one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		category, _ := f.GetString("category")
		priority, _ := f.GetString("priority")
		disabled, _ := f.GetBool("disabled")
		file, _ := f.GetString("file")

		var entries []domain.Site
		if file != "" {
			fh, err := os.Open(file)
			if err != nil {
				return err
			}
			fromFile, err := export.ReadCSV[domain.Site](fh)
			_ = fh.Close()
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			entries = append(entries, fromFile...)
		}
		for _, u := range args {
			entries = append(entries, domain.Site{
				URL:      strings.TrimSpace(u),
				Category: category,
				Priority: domain.Priority(strings.ToLower(priority)),
				Enabled:  !disabled,
			})
		}
		if len(entries) == 0 {
			return fmt.Errorf("nothing to add: pass URLs or --file")
		}

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		if err := reg.BulkAdd(entries); err != nil {
			return err
		}
		fmt.Printf("%d active sites of %d\n", len(reg.Active()), len(reg.Sites()))
		return nil
	},
}

var sitesEnableCmd = &cobra.Command{
	Use:   "enable <url...>",
	Short: "Enables sites by URL.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setEnabled(true),
}

var sitesDisableCmd = &cobra.Command{
	Use:   "disable <url...>",
	Short: "Disables sites by URL.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setEnabled(false),
}

func setEnabled(enabled bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		n, err := reg.SetEnabled(args, enabled)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(os.Stderr, "no sites matched")
		}
		fmt.Printf("updated %d sites, %d now active\n", n, len(reg.Active()))
		return nil
	}
}
