package cmd

import (
	"fmt"
	"io"
	"time"

	"ttgrab/pkg/exporter"
	"ttgrab/pkg/selection"
	"ttgrab/pkg/tui"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export your selected classes to an ICS file",
	Long: `Turn every time slot of the selected classes into a weekly repeating
calendar event, starting on the first matching weekday of the term.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		termStr := stringSetting(cmd, "term-start", "term_start")
		if termStr == "" {
			return fmt.Errorf("no term start given, use --term-start or set it with 'ttgrab config'")
		}

		loc, err := time.LoadLocation(stringSetting(cmd, "timezone", "timezone"))
		if err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}

		termStart, err := dateparse.ParseIn(termStr, loc)
		if err != nil {
			return fmt.Errorf("could not read term start %q: %w", termStr, err)
		}

		selected, err := selection.Load(stringSetting(cmd, "selection", "selection_file"))
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return fmt.Errorf("no classes selected yet, add some with 'ttgrab add'")
		}

		opts := exporter.CalendarOptions{
			TermStart: termStart,
			Weeks:     intSetting(cmd, "weeks", "weeks"),
			Location:  loc,
		}

		output, _ := cmd.Flags().GetString("output")
		err = exporter.SaveFile(output, func(w io.Writer) error {
			return exporter.GenerateICS(selected, w, opts)
		})
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		tui.Success(fmt.Sprintf("Exported %d classes for %d weeks from %s to %s",
			len(selected), opts.Weeks, termStart.Format("Mon 2 Jan 2006"), output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	calendarCmd.Flags().StringP("selection", "s", "", "selection file (default from config)")
	calendarCmd.Flags().String("term-start", "", "first day of term, e.g. 2024-09-30")
	calendarCmd.Flags().Int("weeks", 0, "number of teaching weeks (default from config)")
	calendarCmd.Flags().String("timezone", "", "timezone of the class times (default from config)")
}
