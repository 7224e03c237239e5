package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ttgrab/pkg/config"
	"ttgrab/pkg/logger"
	"ttgrab/pkg/timetable"
	"ttgrab/pkg/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ttgrab",
	Short: "Extract class timetables from SAP UI5 course pages",
	Long: `ttgrab reads a saved or live SAP UI5 timetable page, fills its empty
text fields, pulls the course table apart row by row and exports the
classes as JSON, YAML or Excel.

The exported file then feeds the planning commands: pick classes with
"add", check which others still fit with "fit", view the week with
"timetable" and import it into a calendar with "calendar".

Examples:
  # Export a saved page
  ttgrab extract timetable.html

  # Render the live page in a visible browser so you can log in
  ttgrab extract --url "https://portal.example.edu/timetable" --render --headful

  # Pick a class and see your week
  ttgrab add CS302-02 --data matrix.json
  ttgrab timetable`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("json_log"),
			File:  viper.GetString("log_file"),
		})
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("json-log", false, "log as JSON")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file, rotated")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("json_log", rootCmd.PersistentFlags().Lookup("json-log"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig layers ~/.ttgrab.json under TTGRAB_* environment variables
// and command-line flags.
func initConfig() {
	stored, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		stored = &config.AppConfig{}
	}
	if err := stored.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		stored = &config.AppConfig{}
	}
	cfg := stored.WithDefaults()

	viper.SetDefault("variant", cfg.Variant)
	viper.SetDefault("default_filename", cfg.DefaultFilename)
	viper.SetDefault("output_dir", cfg.OutputDir)
	viper.SetDefault("span_attribute", cfg.SpanAttribute)
	viper.SetDefault("scan_end", cfg.ScanEnd)
	viper.SetDefault("selection_file", cfg.SelectionFile)
	viper.SetDefault("timezone", cfg.Timezone)
	viper.SetDefault("term_start", cfg.TermStart)
	viper.SetDefault("weeks", cfg.Weeks)
	viper.SetDefault("log_file", cfg.LogFile)

	viper.SetEnvPrefix("TTGRAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// stringSetting returns the flag's value when it was given on the command
// line and the viper value for key otherwise. Several commands share keys,
// so flags are looked up per command instead of bound globally.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		if n, err := strconv.Atoi(f.Value.String()); err == nil {
			return n
		}
	}
	return viper.GetInt(key)
}

// interactive reports whether the user can answer prompts.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, timetable.ErrNoRows) {
			tui.Alert("No classes found.")
		} else {
			tui.Alert(err.Error())
		}
		os.Exit(1)
	}
}
