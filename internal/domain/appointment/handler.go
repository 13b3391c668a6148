package appointment

import (
	"errors"
	"net/http"

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
	api.GET("/appointments", h.List)
	api.POST("/appointments", h.Book)
	api.DELETE("/appointments/:id", h.Cancel)
	api.POST("/appointments/:id/reminder", h.Remind)
}

// bookResponse pairs the created appointment with the view the presentation
// layer should move to next.
type bookResponse struct {
	Appointment Appointment       `json:"appointment"`
	Next        navigation.Intent `json:"next"`
}

func (h *Handler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, next, err := h.svc.Book(c.Request().Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		case errors.Is(err, ErrDoctorNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrDoctorUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, bookResponse{Appointment: appt, Next: next})
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	appts := h.svc.List(c.Request().Context())
	lo, hi := pg.Slice(len(appts))
	return c.JSON(http.StatusOK, pagination.NewResponse(appts[lo:hi], len(appts), pg.Limit, pg.Offset))
}

func (h *Handler) Cancel(c echo.Context) error {
	if err := h.svc.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Remind(c echo.Context) error {
	if err := h.svc.Remind(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
