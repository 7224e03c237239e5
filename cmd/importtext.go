package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"ttgrab/pkg/exporter"
	"ttgrab/pkg/timetable"
	"ttgrab/pkg/tui"

	"github.com/spf13/cobra"
)

var importTextCmd = &cobra.Command{
	Use:   "import-text [dump.txt|-]",
	Short: "Turn a copied page text dump into class records",
	Long: `Read the visible text of a class list, as produced by the text
command, and rebuild one class from every eight blank-line separated
blocks: course code, course name, section, full name, instructor,
schedule, location and capacity.

Classes are appended to the output file when it already exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImportText,
}

func init() {
	rootCmd.AddCommand(importTextCmd)
	importTextCmd.Flags().StringP("output", "o", "course_data.json", "record file to append to")
}

func runImportText(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	parsed, err := exporter.ParsePageText(in)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	format, err := exporter.ParseFormat(filepath.Ext(output))
	if err != nil {
		return err
	}

	records, err := exporter.LoadRecords(output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	appended := len(records) > 0
	records = append(records, parsed...)

	if err := exporter.Save(output, format, records, timetable.Full, exporter.Tagged); err != nil {
		return err
	}

	if appended {
		tui.Success(fmt.Sprintf("Appended %d classes to %s", len(parsed), output))
	} else {
		tui.Success(fmt.Sprintf("Saved %d classes to %s", len(parsed), output))
	}
	return nil
}
