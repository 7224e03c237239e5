package cmd

import (
	"errors"
	"fmt"

	"ttgrab/pkg/selection"
	"ttgrab/pkg/tui"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <course-code>",
	Short: "Add a class to your selection",
	Long: `Look up a class by its course code (or section name) in an exported
class file and append it to the selection file. Unknown codes print the
closest matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, _ := cmd.Flags().GetString("data")
		selPath := stringSetting(cmd, "selection", "selection_file")

		rec, err := selection.Add(data, args[0], selPath)
		if err != nil {
			var nf *selection.NotFoundError
			if errors.As(err, &nf) && len(nf.Suggestions) > 0 {
				return fmt.Errorf("no class %s in %s, did you mean %v?", args[0], data, nf.Suggestions)
			}
			return err
		}

		tui.Success(fmt.Sprintf("✅ Added %s %s to %s", rec.Name, rec.Section, selPath))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <course-code>",
	Short: "Remove a class from your selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selPath := stringSetting(cmd, "selection", "selection_file")

		rec, err := selection.Remove(selPath, args[0])
		if err != nil {
			return err
		}

		tui.Success(fmt.Sprintf("Removed %s %s from %s", rec.Name, rec.Section, selPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)

	addCmd.Flags().StringP("data", "d", "matrix.json", "exported class file to look the code up in")
	addCmd.Flags().StringP("selection", "s", "", "selection file (default from config)")
	removeCmd.Flags().StringP("selection", "s", "", "selection file (default from config)")
}
