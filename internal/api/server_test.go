package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
	"github.com/xaenox/memo-notes/internal/storage"
)

type fixedClassifier string

func (f fixedClassifier) SuggestCategory(context.Context, string, []string) string {
	return string(f)
}

func newTestServer(t *testing.T) (*echo.Echo, *notebook.Notebook) {
	t.Helper()
	nb := notebook.New(storage.NewMemoryStorage())
	return NewServer(nb, fixedClassifier("Work"), nil), nb
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := do(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNoteRoutes(t *testing.T) {
	e, nb := newTestServer(t)
	ctx := context.Background()

	rec := do(t, e, http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk, eggs"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Note](t, rec)
	assert.Equal(t, "Groceries", created.Title)
	assert.NotEmpty(t, created.ID)

	rec = do(t, e, http.MethodGet, "/api/notes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[models.Note](t, rec).ID)

	rec = do(t, e, http.MethodPut, "/api/notes/"+created.ID, `{"title":"Shopping","content":"bread"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Note](t, rec)
	assert.Equal(t, "Shopping", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)

	rec = do(t, e, http.MethodPost, "/api/notes/"+created.ID+"/star", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Note](t, rec).Starred)

	rec = do(t, e, http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Note](t, rec), 1)

	rec = do(t, e, http.MethodGet, "/api/search?q=BREAD", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Note](t, rec), 1)

	rec = do(t, e, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Note](t, rec), 1)

	rec = do(t, e, http.MethodDelete, "/api/notes/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	notes, err := nb.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
	favorites, err := nb.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestCreateNoteAutoCategory(t *testing.T) {
	e, nb := newTestServer(t)
	work, err := nb.AddCategory(context.Background(), "Work")
	require.NoError(t, err)

	rec := do(t, e, http.MethodPost, "/api/notes", `{"title":"Standup","content":"notes","autoCategory":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, work.ID, decode[models.Note](t, rec).CategoryID)

	rec = do(t, e, http.MethodGet, "/api/notes?category="+work.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Note](t, rec), 1)

	rec = do(t, e, http.MethodGet, "/api/notes?uncategorized=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Note](t, rec))
}

func TestErrorMapping(t *testing.T) {
	e, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"missing note", http.MethodGet, "/api/notes/nope", "", http.StatusNotFound},
		{"empty title", http.MethodPost, "/api/notes", `{"title":" ","content":"x"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/notes", `{"title":`, http.StatusBadRequest},
		{"bad color", http.MethodPut, "/api/preferences/icon-color", `{"color":"red"}`, http.StatusBadRequest},
		{"unknown category", http.MethodGet, "/api/categories/nope/notes", "", http.StatusNotFound},
		{"bad purge duration", http.MethodPost, "/api/trash/purge?olderThan=soon", "", http.StatusBadRequest},
		{"negative purge duration", http.MethodPost, "/api/trash/purge?olderThan=-1h", "", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
		})
	}

	// A live note with the trashed id makes a restore conflict.
	ctx := context.Background()
	const id = "fixed"
	conflicting := notebook.New(storage.NewMemoryStorage(), notebook.WithIDGenerator(func() string { return id }))
	_, err := conflicting.CreateNote(ctx, notebook.NoteInput{Title: "x", Content: "y"})
	require.NoError(t, err)
	_, err = conflicting.MoveToTrash(ctx, id)
	require.NoError(t, err)
	_, err = conflicting.CreateNote(ctx, notebook.NoteInput{Title: "x", Content: "y"})
	require.NoError(t, err)

	rec := do(t, NewServer(conflicting, nil, nil), http.MethodPost, "/api/trash/"+id+"/restore", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTrashRoutes(t *testing.T) {
	e, nb := newTestServer(t)
	ctx := context.Background()

	keep, err := nb.CreateNote(ctx, notebook.NoteInput{Title: "keep", Content: "me"})
	require.NoError(t, err)
	drop, err := nb.CreateNote(ctx, notebook.NoteInput{Title: "drop", Content: "me"})
	require.NoError(t, err)

	rec := do(t, e, http.MethodPost, "/api/notes/"+keep.ID+"/trash", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.TrashedNote](t, rec).DeletedAt.IsZero())
	rec = do(t, e, http.MethodPost, "/api/notes/"+drop.ID+"/trash", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/trash", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.TrashedNote](t, rec), 2)

	rec = do(t, e, http.MethodPost, "/api/trash/"+keep.ID+"/restore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, keep.ID, decode[models.Note](t, rec).ID)

	rec = do(t, e, http.MethodDelete, "/api/trash/"+drop.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/trash/purge?olderThan=0s", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"purged":0}`, rec.Body.String())

	rec = do(t, e, http.MethodDelete, "/api/trash", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	notes, err := nb.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, keep.ID, notes[0].ID)
}

func TestPurgeTrashRoute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	nb := notebook.New(storage.NewMemoryStorage(), notebook.WithClock(func() time.Time { return now }))
	e := NewServer(nb, nil, nil)
	ctx := context.Background()

	note, err := nb.CreateNote(ctx, notebook.NoteInput{Title: "old", Content: "news"})
	require.NoError(t, err)
	_, err = nb.MoveToTrash(ctx, note.ID)
	require.NoError(t, err)

	now = now.Add(48 * time.Hour)
	rec := do(t, e, http.MethodPost, "/api/trash/purge?olderThan=24h", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"purged":1}`, rec.Body.String())
}

func TestCategoryRoutes(t *testing.T) {
	e, nb := newTestServer(t)
	ctx := context.Background()

	rec := do(t, e, http.MethodPost, "/api/categories", `{"name":"Home"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	home := decode[models.Category](t, rec)

	rec = do(t, e, http.MethodPut, "/api/categories/"+home.ID, `{"name":"House"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "House", decode[models.Category](t, rec).Name)

	note, err := nb.CreateNote(ctx, notebook.NoteInput{Title: "rent", Content: "due"})
	require.NoError(t, err)
	rec = do(t, e, http.MethodPut, "/api/notes/"+note.ID+"/category", `{"categoryId":"`+home.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	checklist, err := nb.CreateChecklist(ctx, "chores")
	require.NoError(t, err)
	rec = do(t, e, http.MethodPut, "/api/checklists/"+checklist.ID+"/category", `{"categoryId":"`+home.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/categories/"+home.ID+"/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	contents := decode[categoryContentsResponse](t, rec)
	assert.Equal(t, "House", contents.Category.Name)
	assert.Len(t, contents.Notes, 1)
	assert.Len(t, contents.Checklists, 1)

	rec = do(t, e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Category](t, rec), 1)

	rec = do(t, e, http.MethodDelete, "/api/categories/"+home.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodGet, "/api/categories/"+home.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChecklistRoutes(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/checklists", `{"title":"Packing"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	list := decode[models.Checklist](t, rec)

	rec = do(t, e, http.MethodPost, "/api/checklists/"+list.ID+"/items", `{"text":"passport"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decode[models.ChecklistItem](t, rec)
	assert.False(t, item.IsChecked)

	rec = do(t, e, http.MethodPost, "/api/checklists/"+list.ID+"/items/"+item.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.ChecklistItem](t, rec).IsChecked)

	rec = do(t, e, http.MethodPut, "/api/checklists/"+list.ID, `{"title":"Trip"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip", decode[models.Checklist](t, rec).Title)

	rec = do(t, e, http.MethodPost, "/api/checklists/"+list.ID+"/star", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Checklist](t, rec).Starred)

	rec = do(t, e, http.MethodDelete, "/api/checklists/"+list.ID+"/items/"+item.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.Checklist](t, rec).Items)

	rec = do(t, e, http.MethodPost, "/api/checklists/"+list.ID+"/items", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/checklists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Checklist](t, rec), 1)

	rec = do(t, e, http.MethodDelete, "/api/checklists/"+list.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodGet, "/api/checklists/"+list.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreferenceRoutes(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/preferences/icon-color", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"color":"#000000"}`, rec.Body.String())

	rec = do(t, e, http.MethodPut, "/api/preferences/icon-color", `{"color":"#ff5733"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"color":"#FF5733"}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/preferences/palette", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Palette(), decode[[]string](t, rec))

	rec = do(t, e, http.MethodGet, "/api/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#FF5733", decode[notebook.Snapshot](t, rec).IconColor)
}
