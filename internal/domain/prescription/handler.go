package prescription

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/healthdesk/healthdesk/internal/platform/navigation"
	"github.com/healthdesk/healthdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/prescriptions", h.List)
	api.GET("/prescriptions/:id", h.Get)
	api.POST("/prescriptions/check-availability", h.CheckAvailability)
	api.POST("/prescriptions/reminder", h.Remind)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.List(c.Request().Context())
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

type medicineRequest struct {
	Medicine string `json:"medicine"`
}

type intentResponse struct {
	Next navigation.Intent `json:"next"`
}

func (h *Handler) CheckAvailability(c echo.Context) error {
	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Medicine) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "medicine is required")
	}
	next := h.svc.CheckAvailability(c.Request().Context(), req.Medicine)
	return c.JSON(http.StatusOK, intentResponse{Next: next})
}

func (h *Handler) Remind(c echo.Context) error {
	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Medicine) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "medicine is required")
	}
	h.svc.Remind(c.Request().Context(), req.Medicine)
	return c.NoContent(http.StatusNoContent)
}
