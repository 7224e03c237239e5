package selection

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const classData = `[
  {"name": "MATH201-01", "section": "Linear Algebra", "teacher": "Dr. Ayse Kaya", "time": ["MON : 09:20 - 11:20"], "room": "B-204", "capacity": "40"},
  {"name": "MATH201-02", "section": "Linear Algebra", "teacher": "Dr. Ayse Kaya", "time": ["TUE : 09:20 - 11:20"], "room": "B-204", "capacity": "40"},
  {"name": "CS302-02", "section": "Operating Systems", "teacher": "NULL", "time": ["TUE : 14:20 - 16:20"], "room": "NULL", "capacity": "60"}
]`

func setup(t *testing.T) (dataPath, selPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "classes.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(classData), 0644))
	return dataPath, filepath.Join(dir, "selected.json")
}

func TestAdd(t *testing.T) {
	dataPath, selPath := setup(t)

	rec, err := Add(dataPath, "cs302-02", selPath)
	require.NoError(t, err)
	require.Equal(t, "Operating Systems", rec.Section)

	_, err = Add(dataPath, "MATH201-02", selPath)
	require.NoError(t, err)

	selected, err := Load(selPath)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	require.Equal(t, "CS302-02", selected[0].Name)
	require.Equal(t, []string{"TUE : 09:20 - 11:20"}, selected[1].Time)
	require.Equal(t, "B-204", selected[1].Room)
}

func TestAdd_Duplicate(t *testing.T) {
	dataPath, selPath := setup(t)

	_, err := Add(dataPath, "MATH201-01", selPath)
	require.NoError(t, err)

	_, err = Add(dataPath, "MATH201-01", selPath)
	require.ErrorIs(t, err, ErrAlreadySelected)
}

func TestAdd_NotFoundSuggests(t *testing.T) {
	dataPath, selPath := setup(t)

	_, err := Add(dataPath, "MATH201-03", selPath)
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.NotEmpty(t, nf.Suggestions)
	require.Contains(t, nf.Suggestions, "MATH201-01")
	require.Contains(t, err.Error(), "did you mean")

	_, statErr := os.Stat(selPath)
	require.True(t, os.IsNotExist(statErr), "selection file must not be created on failure")
}

func TestRemove(t *testing.T) {
	dataPath, selPath := setup(t)

	_, err := Add(dataPath, "MATH201-01", selPath)
	require.NoError(t, err)
	_, err = Add(dataPath, "CS302-02", selPath)
	require.NoError(t, err)

	removed, err := Remove(selPath, "MATH201-01")
	require.NoError(t, err)
	require.Equal(t, "MATH201-01", removed.Name)

	selected, err := Load(selPath)
	require.NoError(t, err)
	require.Len(t, selected, 1)

	_, err = Remove(selPath, "MATH201-01")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Missing(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	require.Empty(t, records)
}
