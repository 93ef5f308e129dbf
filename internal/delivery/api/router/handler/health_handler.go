package handler

import (
	"net/http"

	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	uc usecase.HealthUsecase
}

func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// Check always answers 200; the body reports which collaborators are usable.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Check(c.Request().Context()))
}
