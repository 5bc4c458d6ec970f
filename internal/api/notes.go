package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xaenox/memo-notes/internal/classifier"
	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
)

type noteRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	CategoryID   string `json:"categoryId"`
	AutoCategory bool   `json:"autoCategory"`
}

type categoryRequest struct {
	CategoryID string `json:"categoryId"`
}

func listNotes(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var (
			notes []models.Note
			err   error
		)
		uncategorized, _ := strconv.ParseBool(c.QueryParam("uncategorized"))
		switch category := c.QueryParam("category"); {
		case category != "":
			notes, err = nb.NotesInCategory(ctx, category)
		case uncategorized:
			notes, err = nb.NotesInCategory(ctx, "")
		default:
			notes, err = nb.ListNotes(ctx)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, notes)
	}
}

func createNote(nb *notebook.Notebook, clf classifier.Classifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid note payload")
		}

		if req.CategoryID == "" && req.AutoCategory && clf != nil {
			categories, err := nb.ListCategories(ctx)
			if err != nil {
				return err
			}
			names := make([]string, len(categories))
			for i, cat := range categories {
				names[i] = cat.Name
			}
			suggested := clf.SuggestCategory(ctx, req.Title+"\n"+req.Content, names)
			for _, cat := range categories {
				if cat.Name == suggested {
					req.CategoryID = cat.ID
					break
				}
			}
		}

		note, err := nb.CreateNote(ctx, notebook.NoteInput{
			Title:      req.Title,
			Content:    req.Content,
			CategoryID: req.CategoryID,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, note)
	}
}

func getNote(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		note, err := nb.GetNote(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func updateNote(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req noteRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid note payload")
		}
		note, err := nb.UpdateNote(c.Request().Context(), c.Param("id"), req.Title, req.Content)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func deleteNote(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.DeleteNote(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func toggleNoteStar(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		note, err := nb.ToggleNoteStar(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func moveToTrash(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		trashed, err := nb.MoveToTrash(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, trashed)
	}
}

func setNoteCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req categoryRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid category payload")
		}
		note, err := nb.SetNoteCategory(c.Request().Context(), c.Param("id"), req.CategoryID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func searchNotes(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		notes, err := nb.SearchNotes(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, notes)
	}
}

func listFavorites(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		notes, err := nb.FavoriteNotes(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, notes)
	}
}

func addFavorite(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.AddFavorite(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func removeFavorite(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.RemoveFavorite(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
