package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// PromptFilename asks for the export file name, pre-filled with def.
// It satisfies exporter.Prompter.
func PromptFilename(def string) (string, error) {
	name := def

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the file name (without extension)").
				Value(&name),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

// Alert prints a blocking-style notice in the error color.
func Alert(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
}

// Success prints msg in the accent color.
func Success(msg string) {
	fmt.Println(accentStyle.Render(msg))
}

// Spin runs action behind a spinner titled title.
func Spin(title string, action func()) {
	_ = spinner.New().
		Title(title).
		Action(action).
		Run()
}
