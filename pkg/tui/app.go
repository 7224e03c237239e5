package tui

import (
	"ttgrab/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// formTheme reads the saved accent color, applies it to plain output
// and returns a form theme tinted with it.
func formTheme() *huh.Theme {
	accent := config.Defaults().AccentColor
	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		accent = cfg.AccentColor
	}
	accentStyle = accentStyle.Foreground(lipgloss.Color(accent))
	return accentTheme(accent)
}

func accentTheme(accent string) *huh.Theme {
	c := lipgloss.Color(accent)
	t := huh.ThemeBase16()

	f := &t.Focused
	f.Title = f.Title.Foreground(c).Bold(true)
	f.Base = f.Base.BorderForeground(c)
	f.SelectSelector = f.SelectSelector.Foreground(c)
	f.MultiSelectSelector = f.MultiSelectSelector.Foreground(c)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(c)
	f.FocusedButton = f.FocusedButton.Background(c)
	return t
}

// RunTUI shows the main menu and runs the chosen flow.
func RunTUI() error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📥 Extract Timetable Page", "extract"),
					huh.NewOption("✅ Pick Classes", "select"),
					huh.NewOption("🗓️ Plan My Week", "plan"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(formTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "select":
		return RunSelectTUI()
	case "plan":
		return RunPlanTUI()
	case "config":
		return RunConfigTUI()
	}

	return RunExtractTUI()
}
