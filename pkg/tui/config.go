package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ttgrab/pkg/config"
	"ttgrab/pkg/dom"
	"ttgrab/pkg/timetable"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Export Defaults", "export"),
						huh.NewOption("Set Page Scanning", "scan"),
						huh.NewOption("Set Term (For Calendar Export)", "term"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(formTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "export":
			err = runSetExportTUI(cfg)
		case "scan":
			err = runSetScanTUI(cfg)
		case "term":
			err = runSetTermTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	def := config.Defaults()
	or := func(v, fallback string) string {
		if v == "" {
			return fallback + " (default)"
		}
		return v
	}

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.ttgrab.json) ---"))
	fmt.Printf("Layout: %s\n", or(cfg.Variant, def.Variant))
	fmt.Printf("File Name: %s\n", or(cfg.DefaultFilename, "layout default"))
	fmt.Printf("Output Directory: %s\n", or(cfg.OutputDir, def.OutputDir))
	fmt.Printf("Span Attribute: %s\n", or(cfg.SpanAttribute, def.SpanAttribute))
	if cfg.ScanEnd == 0 {
		fmt.Printf("Span Scan: 0..%d (default)\n", def.ScanEnd)
	} else {
		fmt.Printf("Span Scan: 0..%d\n", cfg.ScanEnd)
	}
	fmt.Printf("Selection File: %s\n", or(cfg.SelectionFile, def.SelectionFile))
	fmt.Printf("Term Start: %s\n", or(cfg.TermStart, "Not set"))
	fmt.Printf("Timezone: %s\n", or(cfg.Timezone, def.Timezone))
	fmt.Printf("Accent Color: %s\n", or(cfg.AccentColor, def.AccentColor))
	fmt.Println()
}

func runSetExportTUI(cfg *config.AppConfig) error {
	variant := cfg.Variant
	if variant == "" {
		variant = config.Defaults().Variant
	}
	filename := cfg.DefaultFilename
	outputDir := cfg.OutputDir
	selectionFile := cfg.SelectionFile

	var variantOptions []huh.Option[string]
	for _, name := range timetable.VariantNames() {
		variantOptions = append(variantOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default table layout").
				Description("dated keeps the raw schedule text, full adds room and capacity.").
				Options(variantOptions...).
				Value(&variant),
			huh.NewInput().
				Title("Default file name").
				Description("Leave empty to use the layout's own default.").
				Value(&filename),
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(&outputDir),
			huh.NewInput().
				Title("Selection file").
				Description("Where picked classes are kept.").
				Placeholder(config.Defaults().SelectionFile).
				Value(&selectionFile),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Variant = variant
	cfg.DefaultFilename = strings.TrimSpace(filename)
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.SelectionFile = strings.TrimSpace(selectionFile)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Exports now default to the %s layout.\n", variant)))
	return nil
}

func runSetScanTUI(cfg *config.AppConfig) error {
	attr := cfg.SpanAttribute
	if attr == "" {
		attr = dom.AttrID
	}
	scanEnd := ""
	if cfg.ScanEnd > 0 {
		scanEnd = strconv.Itoa(cfg.ScanEnd)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which attribute carries the generated span ids?").
				Options(
					huh.NewOption("id", dom.AttrID),
					huh.NewOption("data-sap-ui", dom.AttrSAPUI),
				).
				Value(&attr),
			huh.NewInput().
				Title("Highest __textN- index to scan").
				Placeholder(strconv.Itoa(config.Defaults().ScanEnd)).
				Value(&scanEnd).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SpanAttribute = attr
	cfg.ScanEnd, _ = strconv.Atoi(scanEnd)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Scan settings saved.\n"))
	return nil
}

func runSetTermTUI(cfg *config.AppConfig) error {
	termStart := cfg.TermStart
	tz := cfg.Timezone
	if tz == "" {
		tz = config.Defaults().Timezone
	}
	weeks := ""
	if cfg.Weeks > 0 {
		weeks = strconv.Itoa(cfg.Weeks)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Placeholder(config.Defaults().Timezone).
				Value(&tz).
				Validate(func(s string) error {
					_, err := time.LoadLocation(s)
					return err
				}),
			huh.NewInput().
				Title("First day of term").
				Description("Most date formats work, e.g. 2024-09-30 or Sep 30 2024.").
				Value(&termStart).
				Validate(func(s string) error {
					_, err := dateparse.ParseAny(s)
					return err
				}),
			huh.NewInput().
				Title("Teaching weeks").
				Placeholder(strconv.Itoa(config.Defaults().Weeks)).
				Value(&weeks).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = tz
	cfg.TermStart = termStart
	cfg.Weeks, _ = strconv.Atoi(weeks)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Term starting %s saved.\n", termStart)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for ttgrab").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Violet", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(formTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validHex),
			),
		).WithTheme(formTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

func validHex(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
