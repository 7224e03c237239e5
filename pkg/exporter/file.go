package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ttgrab/pkg/timetable"
)

// Prompter asks for a file name without extension, offering def as the
// default answer.
type Prompter func(def string) (string, error)

// ResolveFilename picks the export file name. An explicit name wins;
// otherwise layouts that prompt ask through prompt and fall back to
// their default on a blank answer; layouts that do not prompt always use
// their default. The format extension is appended when missing.
func ResolveFilename(provided string, v timetable.Variant, prompt Prompter, f Format) (string, error) {
	name := strings.TrimSpace(provided)

	if name == "" && v.Prompt && prompt != nil {
		answer, err := prompt(v.DefaultFilename)
		if err != nil {
			return "", fmt.Errorf("failed to read file name: %w", err)
		}
		name = strings.TrimSpace(answer)
	}

	if name == "" {
		name = v.DefaultFilename
	}

	ext := "." + f.Ext()
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name, nil
}

// SaveFile writes a file through a temporary sibling and renames it into
// place, so a failed export never leaves a truncated file behind.
func SaveFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ttgrab-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return os.Chmod(path, 0644)
}
