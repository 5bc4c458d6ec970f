package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
)

// useTempStore points the CLI at a fresh SQLite file so state survives
// between invocations within one test.
func useTempStore(t *testing.T) {
	t.Helper()
	t.Setenv("NOTES_STORAGE_DRIVER", "sqlite")
	t.Setenv("NOTES_STORAGE_SQLITE_PATH", filepath.Join(t.TempDir(), "notes.db"))
	t.Setenv("NOTES_CLASSIFIER_ENABLED", "false")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{}
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	a.close()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

func runJSON[T any](t *testing.T, args ...string) T {
	t.Helper()
	out := mustRun(t, append([]string{"--json"}, args...)...)
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestNoteCommands(t *testing.T) {
	useTempStore(t)

	note := runJSON[models.Note](t, "note", "create", "-t", "Groceries", "-c", "milk and eggs")
	require.NotEmpty(t, note.ID)

	out := mustRun(t, "note", "list")
	assert.Contains(t, out, note.ID)
	assert.Contains(t, out, "Groceries")

	edited := runJSON[models.Note](t, "note", "edit", note.ID, "--title", "Shopping")
	assert.Equal(t, "Shopping", edited.Title)
	assert.Equal(t, "milk and eggs", edited.Content)

	out = mustRun(t, "note", "star", note.ID)
	assert.Contains(t, out, "Starred: Shopping")

	favorites := runJSON[[]models.Note](t, "favorites")
	require.Len(t, favorites, 1)
	assert.Equal(t, note.ID, favorites[0].ID)

	found := runJSON[[]models.Note](t, "note", "search", "EGGS")
	assert.Len(t, found, 1)
	assert.Empty(t, runJSON[[]models.Note](t, "note", "search", "bread"))

	out = mustRun(t, "note", "show", note.ID)
	assert.Contains(t, out, "milk and eggs")

	mustRun(t, "note", "delete", note.ID)
	assert.Empty(t, runJSON[[]models.Note](t, "note", "list"))
	assert.Empty(t, runJSON[[]models.Note](t, "favorites"))
}

func TestNoteCommandErrors(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "note", "show", "missing")
	assert.ErrorIs(t, err, notebook.ErrNotFound)

	_, err = run(t, "note", "create", "-t", "  ", "-c", "body")
	assert.ErrorIs(t, err, notebook.ErrEmptyTitle)

	_, err = run(t, "color", "set", "blue")
	assert.ErrorIs(t, err, notebook.ErrInvalidColor)

	_, err = run(t, "note", "show")
	assert.Error(t, err)
}

func TestTrashCommands(t *testing.T) {
	useTempStore(t)

	keep := runJSON[models.Note](t, "note", "create", "-t", "keep", "-c", "me")
	drop := runJSON[models.Note](t, "note", "create", "-t", "drop", "-c", "me")

	mustRun(t, "trash", "move", keep.ID)
	mustRun(t, "trash", "move", drop.ID)
	assert.Len(t, runJSON[[]models.TrashedNote](t, "trash", "list"), 2)

	restored := runJSON[models.Note](t, "trash", "restore", keep.ID)
	assert.Equal(t, keep.ID, restored.ID)

	mustRun(t, "trash", "delete", drop.ID)
	assert.Empty(t, runJSON[[]models.TrashedNote](t, "trash", "list"))

	mustRun(t, "trash", "move", keep.ID)
	purged := runJSON[map[string]int](t, "trash", "purge", "--older-than", "720h")
	assert.Equal(t, 0, purged["purged"])

	_, err := run(t, "trash", "purge", "--older-than=-1h")
	assert.ErrorIs(t, err, notebook.ErrNegativeAge)
	assert.Len(t, runJSON[[]models.TrashedNote](t, "trash", "list"), 1)

	out := mustRun(t, "trash", "empty")
	assert.Contains(t, out, "Trash emptied.")
	assert.Empty(t, runJSON[[]models.TrashedNote](t, "trash", "list"))
}

func TestCategoryCommands(t *testing.T) {
	useTempStore(t)

	work := runJSON[models.Category](t, "category", "add", "Day", "job")
	assert.Equal(t, "Day job", work.Name)

	note := runJSON[models.Note](t, "note", "create", "-t", "Standup", "-c", "9am", "--category", work.ID)
	assert.Equal(t, work.ID, note.CategoryID)

	list := runJSON[models.Checklist](t, "checklist", "create", "Sprint")
	mustRun(t, "checklist", "category", list.ID, work.ID)

	out := mustRun(t, "category", "notes", work.ID)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Sprint")

	renamed := runJSON[models.Category](t, "category", "rename", work.ID, "Office")
	assert.Equal(t, "Office", renamed.Name)

	mustRun(t, "category", "delete", work.ID)
	assert.Empty(t, runJSON[[]models.Category](t, "category", "list"))

	// The note keeps its dangling category id.
	assert.Equal(t, work.ID, runJSON[models.Note](t, "note", "show", note.ID).CategoryID)
	cleared := runJSON[models.Note](t, "note", "category", note.ID)
	assert.Empty(t, cleared.CategoryID)
}

func TestAutoCategory(t *testing.T) {
	useTempStore(t)

	travel := runJSON[models.Category](t, "category", "add", "Travel")
	note := runJSON[models.Note](t, "note", "create", "--auto", "-t", "Flights", "-c", "book #travel tickets")
	assert.Equal(t, travel.ID, note.CategoryID)
}

func TestChecklistCommands(t *testing.T) {
	useTempStore(t)

	list := runJSON[models.Checklist](t, "checklist", "create", "Packing", "list")
	assert.Equal(t, "Packing list", list.Title)

	item := runJSON[models.ChecklistItem](t, "checklist", "add", list.ID, "passport")
	toggled := runJSON[models.ChecklistItem](t, "checklist", "toggle", list.ID, item.ID)
	assert.True(t, toggled.IsChecked)

	out := mustRun(t, "checklist", "show", list.ID)
	assert.Contains(t, out, "[x] passport")
	assert.Contains(t, out, "(1/1)")

	starred := runJSON[models.Checklist](t, "checklist", "star", list.ID)
	assert.True(t, starred.Starred)

	renamed := runJSON[models.Checklist](t, "checklist", "rename", list.ID, "Trip")
	assert.Equal(t, "Trip", renamed.Title)

	emptied := runJSON[models.Checklist](t, "checklist", "remove", list.ID, item.ID)
	assert.Empty(t, emptied.Items)

	mustRun(t, "checklist", "delete", list.ID)
	assert.Empty(t, runJSON[[]models.Checklist](t, "checklist", "list"))
}

func TestColorCommands(t *testing.T) {
	useTempStore(t)

	assert.Equal(t, "#000000\n", mustRun(t, "color", "get"))
	mustRun(t, "color", "set", "#a1b2c3")
	assert.Equal(t, "#A1B2C3\n", mustRun(t, "color", "get"))

	palette := strings.Fields(mustRun(t, "color", "palette"))
	assert.Equal(t, models.Palette(), palette)
}

func TestExportCommand(t *testing.T) {
	useTempStore(t)

	mustRun(t, "note", "create", "-t", "Export", "-c", "me")
	mustRun(t, "color", "set", "#FF0000")

	var snap notebook.Snapshot
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "export")), &snap))
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "#FF0000", snap.IconColor)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	mustRun(t, "export", "--format", "yaml", "--output", path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fromYAML notebook.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML.Notes, 1)
	assert.Equal(t, "Export", fromYAML.Notes[0].Title)

	_, err = run(t, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "storage:\n  driver: sqlite\n  sqlite_path: " + filepath.Join(dir, "from-file.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	mustRun(t, "--config", path, "category", "add", "Home")
	_, err := os.Stat(filepath.Join(dir, "from-file.db"))
	assert.NoError(t, err)

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "color", "get")
	assert.Error(t, err)
}

func TestHelpDoesNotOpenStorage(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "notes.db")
	t.Setenv("NOTES_STORAGE_DRIVER", "sqlite")
	t.Setenv("NOTES_STORAGE_SQLITE_PATH", dbPath)

	for _, args := range [][]string{
		{"help"},
		{"help", "note"},
		{"note"},
		{"completion", "bash"},
		{"--help"},
	} {
		out, err := run(t, args...)
		require.NoError(t, err, "notes %v", args)
		assert.NotEmpty(t, out, "notes %v", args)
	}

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "help and completion must not create the store")

	mustRun(t, "color", "get")
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestBotCommandRequiresToken(t *testing.T) {
	useTempStore(t)
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("NOTES_TELEGRAM_TOKEN", "")

	_, err := run(t, "bot")
	assert.ErrorIs(t, err, errNoTelegramToken)
}

func TestExportRejectsUnknownFormatWithoutCreatingFile(t *testing.T) {
	useTempStore(t)

	path := filepath.Join(t.TempDir(), "dump.xml")
	_, err := run(t, "export", "--format", "xml", "--output", path)
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportReportsWriteFailures(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	useTempStore(t)
	mustRun(t, "note", "create", "-t", "Export", "-c", "me")

	_, err := run(t, "export", "--output", "/dev/full")
	assert.Error(t, err)
}
