// Package http is the inbound HTTP adapter. It translates JSON requests into
// commands and queries and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"rateshop/internal/core/application/usecases/commands"
	"rateshop/internal/core/application/usecases/queries"
	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
	"rateshop/internal/core/ports"
	"rateshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	fetchRatesHandler commands.FetchRatesCommandHandler
	selectRateHandler commands.SelectRateCommandHandler

	getRateViewHandler        queries.GetRateViewQueryHandler
	getActiveSelectionHandler queries.GetActiveSelectionQueryHandler
	resolveDimensionsHandler  queries.ResolveDimensionsQueryHandler
	classifyVolumeHandler     queries.ClassifyVolumeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	fetchRatesHandler commands.FetchRatesCommandHandler,
	selectRateHandler commands.SelectRateCommandHandler,
	getRateViewHandler queries.GetRateViewQueryHandler,
	getActiveSelectionHandler queries.GetActiveSelectionQueryHandler,
	resolveDimensionsHandler queries.ResolveDimensionsQueryHandler,
	classifyVolumeHandler queries.ClassifyVolumeQueryHandler,
) *Server {
	return &Server{
		fetchRatesHandler:         fetchRatesHandler,
		selectRateHandler:         selectRateHandler,
		getRateViewHandler:        getRateViewHandler,
		getActiveSelectionHandler: getActiveSelectionHandler,
		resolveDimensionsHandler:  resolveDimensionsHandler,
		classifyVolumeHandler:     classifyVolumeHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/shipments/:shipmentID/rates/:rateType/fetch", s.FetchRates)
	v1.GET("/shipments/:shipmentID/rates/:rateType", s.GetRateView)
	v1.GET("/shipments/:shipmentID/selection/:rateType", s.GetActiveSelection)
	v1.PUT("/shipments/:shipmentID/selection/:rateType", s.SelectRate)
	v1.POST("/dimensions/resolve", s.ResolveDimensions)
	v1.POST("/dimensions/classify", s.ClassifyVolume)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShipmentProfileRequest carries the raw dimension-bearing fields of a shipment.
type ShipmentProfileRequest struct {
	DeclaredLength float64 `json:"declared_length"`
	DeclaredWidth  float64 `json:"declared_width"`
	DeclaredHeight float64 `json:"declared_height"`
	DeclaredWeight float64 `json:"declared_weight"`

	ItemLength         float64 `json:"item_length"`
	ItemWidth          float64 `json:"item_width"`
	ItemHeight         float64 `json:"item_height"`
	ItemDeclaredWeight float64 `json:"item_declared_weight"`
	ItemActualWeight   float64 `json:"item_actual_weight"`

	OrderLength float64 `json:"order_length"`
	OrderWidth  float64 `json:"order_width"`
	OrderHeight float64 `json:"order_height"`
	OrderWeight float64 `json:"order_weight"`
}

func (r ShipmentProfileRequest) toDomain() dimensions.ShipmentProfile {
	return dimensions.ShipmentProfile{
		DeclaredLength:     r.DeclaredLength,
		DeclaredWidth:      r.DeclaredWidth,
		DeclaredHeight:     r.DeclaredHeight,
		DeclaredWeight:     r.DeclaredWeight,
		ItemLength:         r.ItemLength,
		ItemWidth:          r.ItemWidth,
		ItemHeight:         r.ItemHeight,
		ItemDeclaredWeight: r.ItemDeclaredWeight,
		ItemActualWeight:   r.ItemActualWeight,
		OrderLength:        r.OrderLength,
		OrderWidth:         r.OrderWidth,
		OrderHeight:        r.OrderHeight,
		OrderWeight:        r.OrderWeight,
	}
}

// DestinationRequest is the ship-to address of a rate fetch.
type DestinationRequest struct {
	Zip     string `json:"zip"`
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// FetchRatesRequest is the body of the rate fetch endpoint. Dimensions are
// resolved server-side from the profile so callers never compute them.
type FetchRatesRequest struct {
	Profile     ShipmentProfileRequest `json:"profile"`
	Quantity    int                    `json:"quantity"`
	Destination DestinationRequest     `json:"destination"`
}

// SelectRateRequest is the body of the selection endpoint.
type SelectRateRequest struct {
	RateID  string  `json:"rate_id"`
	Carrier string  `json:"carrier"`
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// RateItem is one ranked quote in the rate view response.
type RateItem struct {
	RateID              string  `json:"rate_id"`
	Carrier             string  `json:"carrier"`
	Service             string  `json:"service"`
	Price               float64 `json:"price"`
	IsCheapestInCarrier bool    `json:"is_cheapest_in_carrier"`
	IsGlobalCheapest    bool    `json:"is_global_cheapest"`
}

// CarrierGroup is one carrier's ranked quotes in the rate view response.
type CarrierGroup struct {
	Carrier       string     `json:"carrier"`
	CheapestPrice float64    `json:"cheapest_price"`
	Rates         []RateItem `json:"rates"`
}

// RateViewResponse is the rate-shopping view.
type RateViewResponse struct {
	GlobalCheapest RateItem       `json:"global_cheapest"`
	Carriers       []CarrierGroup `json:"carriers"`
}

// SelectionResponse is the active rate selection.
type SelectionResponse struct {
	ShipmentID string  `json:"shipment_id"`
	RateType   string  `json:"rate_type"`
	RateID     string  `json:"rate_id"`
	Carrier    string  `json:"carrier"`
	Service    string  `json:"service"`
	Price      float64 `json:"price"`
}

// ResolvedContext is one pricing context in the dimension resolution response.
type ResolvedContext struct {
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	IsComplete bool    `json:"is_complete"`
}

// ResolveDimensionsResponse carries both pricing contexts.
type ResolveDimensionsResponse struct {
	Declared ResolvedContext `json:"declared"`
	Measured ResolvedContext `json:"measured"`
}

// ClassifyVolumeRequest is the body of the volume classification endpoint.
type ClassifyVolumeRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// ClassifyVolumeResponse is the advisory overage classification.
type ClassifyVolumeResponse struct {
	CubicSize  float64 `json:"cubic_size"`
	OverLimit  bool    `json:"over_limit"`
	Applicable bool    `json:"applicable"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// FetchRates handles POST /api/v1/shipments/:shipmentID/rates/:rateType/fetch.
// Resolves the dimensions for the requested context, fetches and normalizes
// quotes, auto-selects the global cheapest, and returns the fresh rate view.
func (s *Server) FetchRates(ctx echo.Context) error {
	shipmentID, rateType, err := pathKey(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body FetchRatesRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}
	if body.Quantity < 1 {
		body.Quantity = 1
	}

	profile := body.Profile.toDomain()
	var dims dimensions.DimensionSet
	if rateType == kernel.RateTypeDeclared {
		dims = dimensions.ResolveDeclared(profile)
	} else {
		dims = dimensions.ResolveMeasured(profile, body.Quantity)
	}

	cmd, err := commands.NewFetchRatesCommand(shipmentID, rateType, dims, ports.Destination{
		Zip:     body.Destination.Zip,
		State:   body.Destination.State,
		City:    body.Destination.City,
		Country: body.Destination.Country,
	})
	if errors.Is(err, dimensions.ErrIncompleteDimensions) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "shipment dimensions are incomplete",
		})
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.fetchRatesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, rate.ErrNoRatesAvailable) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "no rates available for shipment",
			})
		}
		return internalError(ctx, "failed to fetch rates")
	}

	return s.renderRateView(ctx, shipmentID, rateType)
}

// GetRateView handles GET /api/v1/shipments/:shipmentID/rates/:rateType.
func (s *Server) GetRateView(ctx echo.Context) error {
	shipmentID, rateType, err := pathKey(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.renderRateView(ctx, shipmentID, rateType)
}

func (s *Server) renderRateView(ctx echo.Context, shipmentID kernel.UUID, rateType kernel.RateType) error {
	query, err := queries.NewGetRateViewQuery(shipmentID, rateType)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getRateViewHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, rate.ErrNoRatesAvailable) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "no rates available for shipment",
		})
	}
	if err != nil {
		return internalError(ctx, "failed to retrieve rates")
	}

	response := RateViewResponse{
		GlobalCheapest: mapRateItem(view.GlobalCheapest),
		Carriers:       make([]CarrierGroup, 0, len(view.Carriers)),
	}
	for _, group := range view.Carriers {
		groupResp := CarrierGroup{
			Carrier:       group.Carrier,
			CheapestPrice: group.CheapestPrice,
			Rates:         make([]RateItem, 0, len(group.Rates)),
		}
		for _, item := range group.Rates {
			groupResp.Rates = append(groupResp.Rates, mapRateItem(item))
		}
		response.Carriers = append(response.Carriers, groupResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectRate handles PUT /api/v1/shipments/:shipmentID/selection/:rateType.
func (s *Server) SelectRate(ctx echo.Context) error {
	shipmentID, rateType, err := pathKey(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body SelectRateRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	price, err := kernel.NewPriceFromFloat(body.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	quote, err := rate.NewQuote(body.RateID, body.Carrier, body.Service, price, "")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSelectRateCommand(shipmentID, rateType, quote)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.selectRateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to select rate")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveSelection handles GET /api/v1/shipments/:shipmentID/selection/:rateType.
func (s *Server) GetActiveSelection(ctx echo.Context) error {
	shipmentID, rateType, err := pathKey(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetActiveSelectionQuery(shipmentID, rateType)
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.getActiveSelectionHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "no active selection for shipment",
		})
	}
	if err != nil {
		return internalError(ctx, "failed to retrieve selection")
	}

	return ctx.JSON(http.StatusOK, SelectionResponse{
		ShipmentID: found.ShipmentID.String(),
		RateType:   found.RateType.String(),
		RateID:     found.RateID,
		Carrier:    found.Carrier,
		Service:    found.Service,
		Price:      found.Price,
	})
}

// ResolveDimensions handles POST /api/v1/dimensions/resolve.
func (s *Server) ResolveDimensions(ctx echo.Context) error {
	var body struct {
		Profile  ShipmentProfileRequest `json:"profile"`
		Quantity int                    `json:"quantity"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}
	if body.Quantity < 1 {
		body.Quantity = 1
	}

	query, err := queries.NewResolveDimensionsQuery(body.Profile.toDomain(), body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	resolved, err := s.resolveDimensionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to resolve dimensions")
	}

	return ctx.JSON(http.StatusOK, ResolveDimensionsResponse{
		Declared: mapResolvedContext(resolved.Declared),
		Measured: mapResolvedContext(resolved.Measured),
	})
}

// ClassifyVolume handles POST /api/v1/dimensions/classify.
func (s *Server) ClassifyVolume(ctx echo.Context) error {
	var body ClassifyVolumeRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	query := queries.NewClassifyVolumeQuery(
		dimensions.NewDimensionSet(body.Length, body.Width, body.Height, body.Weight))

	classified, err := s.classifyVolumeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to classify volume")
	}

	return ctx.JSON(http.StatusOK, ClassifyVolumeResponse{
		CubicSize:  classified.CubicSize,
		OverLimit:  classified.OverLimit,
		Applicable: classified.Applicable,
	})
}

func pathKey(ctx echo.Context) (kernel.UUID, kernel.RateType, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return kernel.UUID{}, kernel.RateTypeUnknown, errors.New("invalid shipment id")
	}

	rateType, err := kernel.RateTypeFromString(ctx.Param("rateType"))
	if err != nil {
		return kernel.UUID{}, kernel.RateTypeUnknown, errors.New("invalid rate type")
	}

	return shipmentID, rateType, nil
}

func mapRateItem(item queries.RateItemResponse) RateItem {
	return RateItem{
		RateID:              item.RateID,
		Carrier:             item.Carrier,
		Service:             item.Service,
		Price:               item.Price,
		IsCheapestInCarrier: item.IsCheapestInCarrier,
		IsGlobalCheapest:    item.IsGlobalCheapest,
	}
}

func mapResolvedContext(resolved queries.ResolvedContextResponse) ResolvedContext {
	return ResolvedContext{
		Length:     resolved.Dimensions.Length,
		Width:      resolved.Dimensions.Width,
		Height:     resolved.Dimensions.Height,
		Weight:     resolved.Dimensions.Weight,
		IsComplete: resolved.IsComplete,
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
