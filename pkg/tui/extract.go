package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ttgrab/pkg/config"
	"ttgrab/pkg/exporter"
	"ttgrab/pkg/fetcher"
	"ttgrab/pkg/timetable"

	"github.com/charmbracelet/huh"
)

// RunExtractTUI walks through reading a timetable page and exporting its classes
func RunExtractTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the ttgrab Exporter!"))

	stored, err := config.Load()
	if err != nil {
		return err
	}
	cfg := stored.WithDefaults()

	var (
		source string
		render bool
		format = string(exporter.FormatJSON)
		vname  = cfg.Variant
	)

	var variantOptions []huh.Option[string]
	for _, name := range timetable.VariantNames() {
		variantOptions = append(variantOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timetable page").
				Description("A saved HTML file or the page URL.").
				Placeholder("timetable.html").
				Value(&source).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("page cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Table layout").
				Options(variantOptions...).
				Value(&vname),
			huh.NewSelect[string]().
				Title("Output format").
				Options(
					huh.NewOption("JSON", string(exporter.FormatJSON)),
					huh.NewOption("YAML", string(exporter.FormatYAML)),
					huh.NewOption("Excel", string(exporter.FormatXLSX)),
				).
				Value(&format),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Render the page in a browser first?").
				Description("Needed when the table is only built by script.").
				Value(&render),
		).WithHideFunc(func() bool {
			return !fetcher.IsURL(strings.TrimSpace(source))
		}),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}

	v, err := timetable.VariantByName(vname)
	if err != nil {
		return err
	}
	v = v.WithDefaultFilename(cfg.DefaultFilename)

	opts := timetable.DefaultOptions()
	opts.Variant = v
	opts.SpanAttr = cfg.SpanAttribute
	opts.ScanTo = cfg.ScanEnd

	var res *timetable.Result
	Spin("Reading timetable...", func() {
		doc, loadErr := fetcher.Load(context.Background(), strings.TrimSpace(source), fetcher.DefaultOptions(), render)
		if loadErr != nil {
			err = loadErr
			return
		}
		res, err = timetable.Run(doc, opts)
	})

	if errors.Is(err, timetable.ErrNoRows) {
		Alert("No classes found.")
		return nil
	}
	if err != nil {
		return err
	}

	f := exporter.Format(format)
	name, err := exporter.ResolveFilename("", v, PromptFilename, f)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.OutputDir, name)

	if err := exporter.Save(path, f, res.Records, v, exporter.Tagged); err != nil {
		return err
	}

	Success(fmt.Sprintf("\nSuccess! Exported %d classes to %s", len(res.Records), path))
	if len(res.Gaps) > 0 {
		fmt.Printf("Skipped %d missing rows\n", len(res.Gaps))
	}
	return nil
}
