package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthdesk/healthdesk/internal/platform/directions"
	"github.com/healthdesk/healthdesk/pkg/pagination"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/hospitals", h.ListHospitals)
	api.GET("/hospitals/:id", h.GetHospital)
	api.GET("/hospitals/:id/doctors", h.ListHospitalDoctors)
	api.GET("/hospitals/:id/directions", h.HospitalDirections)
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.GET("/medicines", h.ListMedicines)
	api.GET("/medicines/resolve", h.ResolveMedicine)
	api.GET("/medicines/:id", h.GetMedicine)
	api.POST("/medicines/:id/pharmacies/:pharmacyID/quote", h.QuoteOrder)
	api.GET("/medicines/:id/pharmacies/:pharmacyID/directions", h.PharmacyDirections)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.store.FilterHospitals(c.QueryParam("q"))
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) GetHospital(c echo.Context) error {
	hosp, err := h.store.Hospital(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, hosp)
}

func (h *Handler) ListHospitalDoctors(c echo.Context) error {
	if _, err := h.store.Hospital(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	pg := pagination.FromContext(c)
	items := FilterDoctors(h.store.DoctorsAtHospital(c.Param("id")), c.QueryParam("q"))
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

type directionsResponse struct {
	URL string `json:"url"`
}

func (h *Handler) HospitalDirections(c echo.Context) error {
	hosp, err := h.store.Hospital(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, directionsResponse{URL: directions.MapsURL(hosp.Latitude, hosp.Longitude)})
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := FilterDoctors(h.store.Doctors(), c.QueryParam("q"))
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) GetDoctor(c echo.Context) error {
	doc, err := h.store.Doctor(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.store.FilterMedicines(c.QueryParam("q"))
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) GetMedicine(c echo.Context) error {
	m, err := h.store.Medicine(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

// ResolveMedicine is the best-effort lookup from a free-form name to a
// directory entry; a miss is a legitimate 404, not a server fault.
func (h *Handler) ResolveMedicine(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	m, err := h.store.FindMedicineByFragment(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

type quoteRequest struct {
	HomeDelivery bool `json:"home_delivery"`
}

func (h *Handler) QuoteOrder(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	q, err := h.store.QuoteOrder(c.Param("id"), c.Param("pharmacyID"), req.HomeDelivery)
	if err != nil {
		switch {
		case errors.Is(err, ErrOutOfStock):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) PharmacyDirections(c echo.Context) error {
	m, err := h.store.Medicine(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	for _, p := range m.Pharmacies {
		if p.ID == c.Param("pharmacyID") {
			return c.JSON(http.StatusOK, directionsResponse{URL: directions.MapsURLForAddress(p.Address)})
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
}
