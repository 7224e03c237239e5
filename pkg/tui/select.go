package tui

import (
	"fmt"
	"strings"

	"ttgrab/pkg/config"
	"ttgrab/pkg/dom"
	"ttgrab/pkg/exporter"
	"ttgrab/pkg/selection"
	"ttgrab/pkg/timetable"

	"github.com/charmbracelet/huh"
)

func classLabel(r timetable.Record) string {
	parts := []string{r.Name}
	if r.Section != "" {
		parts = append(parts, r.Section)
	}
	if r.Teacher != "" && r.Teacher != dom.NullSentinel {
		parts = append(parts, r.Teacher)
	}
	return strings.Join(parts, " · ")
}

// RunSelectTUI lets the user tick classes from an exported file into the selection file
func RunSelectTUI() error {
	stored, err := config.Load()
	if err != nil {
		return err
	}
	cfg := stored.WithDefaults()

	var dataPath string
	pathForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exported class file").
				Description("JSON, YAML or Excel written by the exporter.").
				Placeholder("matrix.json").
				Value(&dataPath),
		),
	).WithTheme(formTheme())

	if err := pathForm.Run(); err != nil {
		return err
	}
	if strings.TrimSpace(dataPath) == "" {
		dataPath = "matrix.json"
	}

	data, err := exporter.LoadRecords(strings.TrimSpace(dataPath))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		Alert("No classes found.")
		return nil
	}

	selected, err := selection.Load(cfg.SelectionFile)
	if err != nil {
		return err
	}

	var options []huh.Option[int]
	for i, r := range data {
		opt := huh.NewOption(classLabel(r), i)
		if _, ok := selection.Find(selected, r.Name); ok {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	var picked []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Select your classes").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&picked).
				Filterable(true).
				Height(14),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}

	// Classes chosen from other files stay selected
	var next []timetable.Record
	for _, r := range selected {
		if _, fromHere := selection.Find(data, r.Name); !fromHere {
			next = append(next, r)
		}
	}
	for _, i := range picked {
		next = append(next, data[i])
	}

	if err := selection.Save(cfg.SelectionFile, next); err != nil {
		return err
	}

	Success(fmt.Sprintf("\n✅ Saved %d classes to %s\n", len(next), cfg.SelectionFile))
	return nil
}
