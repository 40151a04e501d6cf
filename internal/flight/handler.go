package flight

import (
	"errors"
	"net/http"

	"flightdemo/pkg/idgen"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  *Service
	airports *AirportDirectory
	sessions *Sessions
	builder  *Builder
}

func NewFlightHandler(s *Service, airports *AirportDirectory, sessions *Sessions, builder *Builder) *FlightHandler {
	return &FlightHandler{
		service:  s,
		airports: airports,
		sessions: sessions,
		builder:  builder,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1")
	v1.GET("/airports", h.SearchAirportsHandler)
	v1.GET("/airports/:code/coordinates", h.AirportCoordinatesHandler)
	v1.POST("/flights/search", h.SearchFlightsHandler)
	v1.GET("/provider/status", h.ProviderStatusHandler)

	v1.POST("/sessions", h.OpenSessionHandler)
	v1.GET("/sessions/:id", h.GetSessionHandler)
	v1.POST("/sessions/:id/search", h.SubmitSessionHandler)
	v1.DELETE("/sessions/:id", h.CloseSessionHandler)
}

type AirportsResponse struct {
	Airports []Airport `json:"airports"`
}

type CoordinatesResponse struct {
	Code        string       `json:"code"`
	Available   bool         `json:"available"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type SearchResponse struct {
	Request SearchRequest `json:"request"`
	Results Presentation  `json:"results"`
}

type ProviderStatusResponse struct {
	Online bool `json:"online"`
}

// SearchAirportsHandler godoc
// @Summary      Airport autocomplete
// @Description  Returns airport options for a free-text query longer than two characters
// @Tags         airports
// @Produce      json
// @Param        query query string true "Partial airport or city name"
// @Success      200 {object} AirportsResponse
// @Router       /v1/airports [get]
func (h *FlightHandler) SearchAirportsHandler(c *gin.Context) {
	airports := h.airports.Search(c.Request.Context(), c.Query("query"))
	c.JSON(http.StatusOK, AirportsResponse{Airports: airports})
}

// AirportCoordinatesHandler godoc
// @Summary      Airport coordinates
// @Tags         airports
// @Produce      json
// @Param        code path string true "Airport code"
// @Success      200 {object} CoordinatesResponse
// @Router       /v1/airports/{code}/coordinates [get]
func (h *FlightHandler) AirportCoordinatesHandler(c *gin.Context) {
	code := c.Param("code")
	coords := h.airports.Coordinates(c.Request.Context(), code)
	c.JSON(http.StatusOK, CoordinatesResponse{
		Code:        code,
		Available:   coords != nil,
		Coordinates: coords,
	})
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Validates the search form, queries the provider and returns display-ready offers
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchForm true "Search form"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var form SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	req, err := h.builder.Build(form.Input())
	if err != nil {
		sendError(c, err)
		return
	}

	result := h.service.SearchFlights(c.Request.Context(), req)
	c.JSON(http.StatusOK, SearchResponse{
		Request: req,
		Results: Present(result, req),
	})
}

// ProviderStatusHandler godoc
// @Summary      Provider reachability
// @Tags         flights
// @Produce      json
// @Success      200 {object} ProviderStatusResponse
// @Router       /v1/provider/status [get]
func (h *FlightHandler) ProviderStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ProviderStatusResponse{Online: h.service.ProviderOnline(c.Request.Context())})
}

// OpenSessionHandler godoc
// @Summary      Open a results-page session
// @Tags         sessions
// @Produce      json
// @Success      201 {object} SessionSnapshot
// @Router       /v1/sessions [post]
func (h *FlightHandler) OpenSessionHandler(c *gin.Context) {
	s := h.sessions.Open()
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetSessionHandler godoc
// @Summary      Read session state
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session id"
// @Success      200 {object} SessionSnapshot
// @Failure      404 {object} map[string]string
// @Router       /v1/sessions/{id} [get]
func (h *FlightHandler) GetSessionHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// SubmitSessionHandler godoc
// @Summary      Submit a search within a session
// @Description  Stale responses overtaken by a newer submission are discarded
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session id"
// @Param        request body SearchForm true "Search form"
// @Success      200 {object} SessionSnapshot
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/sessions/{id}/search [post]
func (h *FlightHandler) SubmitSessionHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var form SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	snap, err := h.sessions.Submit(c.Request.Context(), id, form.Input())
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CloseSessionHandler godoc
// @Summary      Close a session
// @Tags         sessions
// @Param        id path string true "Session id"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /v1/sessions/{id} [delete]
func (h *FlightHandler) CloseSessionHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Close(id); err != nil {
		sendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionID(c *gin.Context) (int64, bool) {
	id, err := idgen.ParseID(c.Param("id"))
	if err != nil {
		sendError(c, ErrSessionNotFound)
		return 0, false
	}
	return id, true
}

func sendError(c *gin.Context, err error) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": valErr.Error(),
			"code":  valErr.Code,
			"field": valErr.Field,
		})
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
