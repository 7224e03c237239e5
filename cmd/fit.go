package cmd

import (
	"fmt"

	"ttgrab/pkg/exporter"
	"ttgrab/pkg/logger"
	"ttgrab/pkg/schedule"
	"ttgrab/pkg/selection"
	"ttgrab/pkg/tui"

	"github.com/spf13/cobra"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "List classes that fit around your selection",
	Long: `Build your week from the selection file and list every class in the
data file whose weekday slots are all still free. Classes without a
readable schedule are left out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, _ := cmd.Flags().GetString("data")
		selPath := stringSetting(cmd, "selection", "selection_file")

		selected, err := selection.Load(selPath)
		if err != nil {
			return err
		}
		candidates, err := exporter.LoadRecords(data)
		if err != nil {
			return err
		}

		week := schedule.BuildWeek(selected)
		fitting := schedule.FindFitting(week, candidates)
		logger.Debug("fit search done", "selected", len(selected), "candidates", len(candidates), "fitting", len(fitting))

		if len(fitting) == 0 {
			tui.Alert("No classes fit into your week.")
		} else {
			tui.Success(fmt.Sprintf("%d classes fit:", len(fitting)))
			fmt.Println(schedule.RenderList(fitting))
		}

		fmt.Println(schedule.RenderAgenda(week))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fitCmd.Flags().StringP("data", "d", "matrix.json", "exported class file with the candidates")
	fitCmd.Flags().StringP("selection", "s", "", "selection file (default from config)")
}
