package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xaenox/memo-notes/internal/notebook"
)

type checklistRequest struct {
	Title string `json:"title"`
}

type itemRequest struct {
	Text string `json:"text"`
}

func listChecklists(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		checklists, err := nb.ListChecklists(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklists)
	}
}

func createChecklist(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req checklistRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid checklist payload")
		}
		checklist, err := nb.CreateChecklist(c.Request().Context(), req.Title)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, checklist)
	}
}

func getChecklist(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		checklist, err := nb.GetChecklist(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklist)
	}
}

func renameChecklist(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req checklistRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid checklist payload")
		}
		checklist, err := nb.RenameChecklist(c.Request().Context(), c.Param("id"), req.Title)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklist)
	}
}

func deleteChecklist(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.DeleteChecklist(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func toggleChecklistStar(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		checklist, err := nb.ToggleChecklistStar(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklist)
	}
}

func setChecklistCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req categoryRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid category payload")
		}
		checklist, err := nb.SetChecklistCategory(c.Request().Context(), c.Param("id"), req.CategoryID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklist)
	}
}

func addChecklistItem(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req itemRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid item payload")
		}
		item, err := nb.AddChecklistItem(c.Request().Context(), c.Param("id"), req.Text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, item)
	}
}

func toggleChecklistItem(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		item, err := nb.ToggleChecklistItem(c.Request().Context(), c.Param("id"), c.Param("itemID"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, item)
	}
}

func removeChecklistItem(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		checklist, err := nb.RemoveChecklistItem(c.Request().Context(), c.Param("id"), c.Param("itemID"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, checklist)
	}
}
