package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/notebook"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorHandler maps notebook errors onto status codes and renders every
// failure as {"error": "..."}.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal error"

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		case errors.Is(err, notebook.ErrNotFound):
			status, message = http.StatusNotFound, err.Error()
		case errors.Is(err, notebook.ErrConflict):
			status, message = http.StatusConflict, err.Error()
		case notebook.IsValidation(err):
			status, message = http.StatusBadRequest, err.Error()
		default:
			logger.Error("Request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Error: message})
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
