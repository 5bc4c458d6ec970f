package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xaenox/memo-notes/internal/notebook"
)

func listTrash(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		trash, err := nb.TrashedNotes(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, trash)
	}
}

func emptyTrash(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.EmptyTrash(c.Request().Context()); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func purgeTrash(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		olderThan, err := time.ParseDuration(c.QueryParam("olderThan"))
		if err != nil {
			return badRequest("olderThan must be a duration such as 720h")
		}
		purged, err := nb.PurgeTrash(c.Request().Context(), olderThan)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]int{"purged": purged})
	}
}

func restoreFromTrash(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		note, err := nb.RestoreFromTrash(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func deletePermanently(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.DeletePermanently(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
