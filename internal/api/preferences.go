package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xaenox/memo-notes/internal/notebook"
)

type colorPayload struct {
	Color string `json:"color"`
}

func getIconColor(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		color, err := nb.IconColor(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, colorPayload{Color: color})
	}
}

func setIconColor(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req colorPayload
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid color payload")
		}
		color, err := nb.SetIconColor(c.Request().Context(), req.Color)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, colorPayload{Color: color})
	}
}

func getPalette(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, nb.Palette())
	}
}

func exportSnapshot(nb *notebook.Notebook) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := nb.Snapshot(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, snap)
	}
}
