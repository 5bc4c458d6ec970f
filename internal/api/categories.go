package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
)

type nameRequest struct {
	Name string `json:"name"`
}

type categoryContentsResponse struct {
	Category   models.Category    `json:"category"`
	Notes      []models.Note      `json:"notes"`
	Checklists []models.Checklist `json:"checklists"`
}

func listCategories(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := nb.ListCategories(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, categories)
	}
}

func addCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req nameRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid category payload")
		}
		category, err := nb.AddCategory(c.Request().Context(), req.Name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, category)
	}
}

func getCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, err := nb.GetCategory(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, category)
	}
}

func renameCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req nameRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid category payload")
		}
		category, err := nb.RenameCategory(c.Request().Context(), c.Param("id"), req.Name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, category)
	}
}

func deleteCategory(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := nb.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func categoryContents(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		category, err := nb.GetCategory(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		notes, err := nb.NotesInCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		checklists, err := nb.ChecklistsInCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, categoryContentsResponse{
			Category:   category,
			Notes:      notes,
			Checklists: checklists,
		})
	}
}
