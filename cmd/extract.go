package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ttgrab/pkg/exporter"
	"ttgrab/pkg/fetcher"
	"ttgrab/pkg/logger"
	"ttgrab/pkg/schedule"
	"ttgrab/pkg/timetable"
	"ttgrab/pkg/tui"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract [page.html|-]",
	Short: "Extract the course table of a timetable page",
	Long: `Fill the page's empty text spans with NULL, collect the course table
rows by their generated ids and export the cleaned classes.

Layouts:
  dated  name, section, teacher, time and the raw schedule text (default)
  plain  name, section, teacher, time; always saved as classes.json
  full   name, section, teacher, time, room and capacity

Without --output the file name is asked for when the layout allows it
and a terminal is attached; otherwise the layout default is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()

	// Input
	flags.StringP("url", "u", "", "fetch the page from this URL instead of a file")
	flags.Bool("render", false, "render the page in Chrome before reading it")
	flags.Bool("headful", false, "show the browser window (implies --render)")
	flags.String("cookie", "", "Cookie header for the portal session")
	flags.String("wait-selector", fetcher.DefaultWaitSelector, "CSS selector to wait for when rendering")
	flags.Duration("timeout", 30*time.Second, "fetch timeout")

	// Extraction
	flags.StringP("variant", "l", "", "table layout: dated, plain or full")
	flags.String("span-attr", "", "attribute carrying the span ids: id or data-sap-ui")
	flags.Int("scan-end", 0, "scan __textN- spans for N below this")
	flags.Bool("no-normalize", false, "do not fill empty spans")
	flags.Bool("fail-on-gap", false, "fail when a row index is missing instead of skipping it")

	// Output
	flags.StringP("output", "o", "", "output file name")
	flags.String("output-dir", "", "directory for the output file")
	flags.StringP("format", "f", "json", "output format: json, yaml, xlsx")
	flags.Bool("legacy-shape", false, "write the older array-based JSON layout")
	flags.Bool("preview", false, "print the extracted classes as a table")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, _ := cmd.Flags().GetString("url")
	if source == "" {
		if len(args) == 0 {
			return cmd.Help()
		}
		source = args[0]
	}

	v, err := timetable.VariantByName(stringSetting(cmd, "variant", "variant"))
	if err != nil {
		return err
	}
	v = v.WithDefaultFilename(viper.GetString("default_filename"))

	formatName, _ := cmd.Flags().GetString("format")
	format, err := exporter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	shape := exporter.Tagged
	if legacy, _ := cmd.Flags().GetBool("legacy-shape"); legacy {
		if format != exporter.FormatJSON {
			return fmt.Errorf("--legacy-shape only applies to json output")
		}
		shape = exporter.Legacy
	}

	opts := timetable.DefaultOptions()
	opts.Variant = v
	opts.SpanAttr = stringSetting(cmd, "span-attr", "span_attribute")
	opts.ScanTo = intSetting(cmd, "scan-end", "scan_end")
	opts.SkipNormalize, _ = cmd.Flags().GetBool("no-normalize")
	if failOnGap, _ := cmd.Flags().GetBool("fail-on-gap"); failOnGap {
		opts.Gaps = timetable.FailOnGap
	}

	fetchOpts := fetcher.DefaultOptions()
	fetchOpts.Cookie, _ = cmd.Flags().GetString("cookie")
	fetchOpts.WaitSelector, _ = cmd.Flags().GetString("wait-selector")
	fetchOpts.Timeout, _ = cmd.Flags().GetDuration("timeout")
	fetchOpts.Headful, _ = cmd.Flags().GetBool("headful")
	render, _ := cmd.Flags().GetBool("render")

	logger.Debug("extract starting", "source", source, "variant", v.Name, "format", format)

	var res *timetable.Result
	load := func() {
		doc, loadErr := fetcher.Load(ctx, source, fetchOpts, render || fetchOpts.Headful)
		if loadErr != nil {
			err = loadErr
			return
		}
		res, err = timetable.Run(doc, opts)
	}

	// A visible browser needs the terminal left alone while the user logs in
	if fetcher.IsURL(source) && !fetchOpts.Headful && interactive() {
		tui.Spin("Fetching timetable page...", load)
	} else {
		load()
	}
	if err != nil {
		return err
	}

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		fmt.Println(schedule.RenderList(res.Records))
	}

	var prompt exporter.Prompter
	if interactive() {
		prompt = tui.PromptFilename
	}
	output, _ := cmd.Flags().GetString("output")
	name, err := exporter.ResolveFilename(output, v, prompt, format)
	if err != nil {
		return err
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(stringSetting(cmd, "output-dir", "output_dir"), name)
	}

	if err := exporter.Save(path, format, res.Records, v, shape); err != nil {
		return err
	}

	size := ""
	if info, statErr := os.Stat(path); statErr == nil {
		size = " (" + humanize.Bytes(uint64(info.Size())) + ")"
	}
	tui.Success(fmt.Sprintf("Exported %d classes to %s%s", len(res.Records), path, size))
	if len(res.Gaps) > 0 {
		fmt.Printf("Skipped %d missing rows\n", len(res.Gaps))
	}
	return nil
}
