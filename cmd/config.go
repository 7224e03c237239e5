package cmd

import (
	"fmt"

	"ttgrab/pkg/config"
	"ttgrab/pkg/dom"
	"ttgrab/pkg/timetable"
	"ttgrab/pkg/tui"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ttgrab configuration",
	Long:  "View or edit your local configuration settings (default layout, output location, term dates).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		flags := cmd.Flags()

		if flags.Changed("variant") {
			name, _ := flags.GetString("variant")
			v, err := timetable.VariantByName(name)
			if err != nil {
				return err
			}
			cfg.Variant = v.Name
			changed = true
		}
		if flags.Changed("span-attr") {
			attr, _ := flags.GetString("span-attr")
			if attr != dom.AttrID && attr != dom.AttrSAPUI {
				return fmt.Errorf("span attribute must be %s or %s", dom.AttrID, dom.AttrSAPUI)
			}
			cfg.SpanAttribute = attr
			changed = true
		}
		if flags.Changed("term-start") {
			term, _ := flags.GetString("term-start")
			if _, err := dateparse.ParseAny(term); err != nil {
				return fmt.Errorf("could not read term start %q: %w", term, err)
			}
			cfg.TermStart = term
			changed = true
		}
		if flags.Changed("filename") {
			cfg.DefaultFilename, _ = flags.GetString("filename")
			changed = true
		}
		if flags.Changed("output-dir") {
			cfg.OutputDir, _ = flags.GetString("output-dir")
			changed = true
		}
		if flags.Changed("weeks") {
			cfg.Weeks, _ = flags.GetInt("weeks")
			changed = true
		}

		if changed {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			path, _ := config.Path()
			fmt.Printf("✅ Configuration saved to %s\n", path)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("variant", "", "default table layout: dated, plain or full")
	configCmd.Flags().String("span-attr", "", "attribute carrying the span ids: id or data-sap-ui")
	configCmd.Flags().String("filename", "", "default export file name for layouts that ask for one")
	configCmd.Flags().String("output-dir", "", "default export directory")
	configCmd.Flags().String("term-start", "", "first day of term")
	configCmd.Flags().Int("weeks", 0, "number of teaching weeks")
}
