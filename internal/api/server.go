// Package api exposes a notebook over a JSON HTTP interface.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/classifier"
	"github.com/xaenox/memo-notes/internal/notebook"
)

// NewServer returns an Echo instance with every route registered.
func NewServer(nb *notebook.Notebook, clf classifier.Classifier, logger *zap.Logger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	Register(e, nb, clf)
	return e
}

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, nb *notebook.Notebook, clf classifier.Classifier) {
	e.GET("/healthz", healthz(nb))

	g := e.Group("/api")

	g.GET("/notes", listNotes(nb))
	g.POST("/notes", createNote(nb, clf))
	g.GET("/notes/:id", getNote(nb))
	g.PUT("/notes/:id", updateNote(nb))
	g.DELETE("/notes/:id", deleteNote(nb))
	g.POST("/notes/:id/star", toggleNoteStar(nb))
	g.POST("/notes/:id/trash", moveToTrash(nb))
	g.PUT("/notes/:id/category", setNoteCategory(nb))
	g.GET("/search", searchNotes(nb))

	g.GET("/favorites", listFavorites(nb))
	g.PUT("/favorites/:id", addFavorite(nb))
	g.DELETE("/favorites/:id", removeFavorite(nb))

	g.GET("/trash", listTrash(nb))
	g.DELETE("/trash", emptyTrash(nb))
	g.POST("/trash/purge", purgeTrash(nb))
	g.POST("/trash/:id/restore", restoreFromTrash(nb))
	g.DELETE("/trash/:id", deletePermanently(nb))

	g.GET("/categories", listCategories(nb))
	g.POST("/categories", addCategory(nb))
	g.GET("/categories/:id", getCategory(nb))
	g.PUT("/categories/:id", renameCategory(nb))
	g.DELETE("/categories/:id", deleteCategory(nb))
	g.GET("/categories/:id/notes", categoryContents(nb))

	g.GET("/checklists", listChecklists(nb))
	g.POST("/checklists", createChecklist(nb))
	g.GET("/checklists/:id", getChecklist(nb))
	g.PUT("/checklists/:id", renameChecklist(nb))
	g.DELETE("/checklists/:id", deleteChecklist(nb))
	g.POST("/checklists/:id/star", toggleChecklistStar(nb))
	g.PUT("/checklists/:id/category", setChecklistCategory(nb))
	g.POST("/checklists/:id/items", addChecklistItem(nb))
	g.POST("/checklists/:id/items/:itemID/toggle", toggleChecklistItem(nb))
	g.DELETE("/checklists/:id/items/:itemID", removeChecklistItem(nb))

	g.GET("/preferences/icon-color", getIconColor(nb))
	g.PUT("/preferences/icon-color", setIconColor(nb))
	g.GET("/preferences/palette", getPalette(nb))

	g.GET("/export", exportSnapshot(nb))
}

func healthz(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := nb.IconColor(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "storage unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
