package cmd

import (
	"fmt"

	"ttgrab/pkg/schedule"
	"ttgrab/pkg/selection"

	"github.com/spf13/cobra"
)

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Show your selected classes as a weekly grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selection.Load(stringSetting(cmd, "selection", "selection_file"))
		if err != nil {
			return err
		}

		week := schedule.BuildWeek(selected)
		if agenda, _ := cmd.Flags().GetBool("agenda"); agenda {
			fmt.Println(schedule.RenderAgenda(week))
			return nil
		}
		fmt.Println(schedule.RenderGrid(week))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timetableCmd)
	timetableCmd.Flags().StringP("selection", "s", "", "selection file (default from config)")
	timetableCmd.Flags().BoolP("agenda", "a", false, "list classes per day instead of drawing the grid")
}
