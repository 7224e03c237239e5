package tui

import (
	"fmt"
	"strings"

	"ttgrab/pkg/config"
	"ttgrab/pkg/exporter"
	"ttgrab/pkg/schedule"
	"ttgrab/pkg/selection"

	"github.com/charmbracelet/huh"
)

// RunPlanTUI shows the week built from the selection file and optionally
// lists classes from an exported file that still fit into it
func RunPlanTUI() error {
	stored, err := config.Load()
	if err != nil {
		return err
	}
	cfg := stored.WithDefaults()

	selected, err := selection.Load(cfg.SelectionFile)
	if err != nil {
		return err
	}

	week := schedule.BuildWeek(selected)
	fmt.Println(schedule.RenderGrid(week))

	var dataPath string
	lookForMore := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Look for classes that fit into free slots?").
				Value(&lookForMore),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Exported class file").
				Placeholder("matrix.json").
				Value(&dataPath),
		).WithHideFunc(func() bool { return !lookForMore }),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if !lookForMore {
		return nil
	}
	if strings.TrimSpace(dataPath) == "" {
		dataPath = "matrix.json"
	}

	candidates, err := exporter.LoadRecords(strings.TrimSpace(dataPath))
	if err != nil {
		return err
	}

	fitting := schedule.FindFitting(week, candidates)
	if len(fitting) == 0 {
		Alert("No classes fit into your week.")
		return nil
	}

	Success(fmt.Sprintf("%d classes fit:", len(fitting)))
	fmt.Println(schedule.RenderList(fitting))
	return nil
}
