package cmd

import (
	"context"
	"fmt"

	"ttgrab/pkg/clipboard"
	"ttgrab/pkg/dom"
	"ttgrab/pkg/fetcher"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text [page.html|-]",
	Short: "Copy the visible text of a page to the clipboard",
	Long: `Copy everything a reader would see on the page to the system
clipboard, skipping scripts and styles. Use --print to write it to
stdout instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runText,
}

var copyText = clipboard.CopyAsync

func runText(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("url")
	if source == "" {
		if len(args) == 0 {
			return cmd.Help()
		}
		source = args[0]
	}
	render, _ := cmd.Flags().GetBool("render")

	doc, err := fetcher.Load(context.Background(), source, fetcher.DefaultOptions(), render)
	if err != nil {
		return err
	}

	text := dom.PageText(doc)

	if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
		fmt.Println(text)
		return nil
	}

	// Wait so the process outlives the copy. A failed copy is logged
	// by the clipboard package and does not fail the command.
	<-copyText(text)
	return nil
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.Flags().StringP("url", "u", "", "fetch the page from this URL instead of a file")
	textCmd.Flags().Bool("render", false, "render the page in Chrome before reading it")
	textCmd.Flags().BoolP("print", "p", false, "print the text instead of copying it")
}
