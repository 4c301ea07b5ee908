// Package http exposes the shipping use cases over a REST API. Handlers are
// thin: bind and validate the request, build a command or query, delegate to
// its handler and translate the result.
package http

import (
	"net/http"
	"strconv"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAddressHandler        commands.CreateAddressCommandHandler
	updateAddressHandler        commands.UpdateAddressCommandHandler
	removeAddressHandler        commands.RemoveAddressCommandHandler
	createMethodHandler         commands.CreateMethodCommandHandler
	createZoneHandler           commands.CreateZoneCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	removeShipmentHandler       commands.RemoveShipmentCommandHandler

	// Query handlers
	listAddressesHandler    queries.ListAddressesQueryHandler
	getAddressHandler       queries.GetAddressQueryHandler
	listMethodsHandler      queries.ListMethodsQueryHandler
	listZonesHandler        queries.ListZonesQueryHandler
	calculateRatesHandler   queries.CalculateRatesQueryHandler
	getShipmentHandler      queries.GetShipmentQueryHandler
	trackShipmentHandler    queries.TrackShipmentQueryHandler
	listShipmentsHandler    queries.ListShipmentsQueryHandler
	getShipmentStatsHandler queries.GetShipmentStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createAddressHandler commands.CreateAddressCommandHandler,
	updateAddressHandler commands.UpdateAddressCommandHandler,
	removeAddressHandler commands.RemoveAddressCommandHandler,
	createMethodHandler commands.CreateMethodCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	removeShipmentHandler commands.RemoveShipmentCommandHandler,
	listAddressesHandler queries.ListAddressesQueryHandler,
	getAddressHandler queries.GetAddressQueryHandler,
	listMethodsHandler queries.ListMethodsQueryHandler,
	listZonesHandler queries.ListZonesQueryHandler,
	calculateRatesHandler queries.CalculateRatesQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentStatsHandler queries.GetShipmentStatsQueryHandler,
) *Server {
	return &Server{
		createAddressHandler:        createAddressHandler,
		updateAddressHandler:        updateAddressHandler,
		removeAddressHandler:        removeAddressHandler,
		createMethodHandler:         createMethodHandler,
		createZoneHandler:           createZoneHandler,
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		removeShipmentHandler:       removeShipmentHandler,
		listAddressesHandler:        listAddressesHandler,
		getAddressHandler:           getAddressHandler,
		listMethodsHandler:          listMethodsHandler,
		listZonesHandler:            listZonesHandler,
		calculateRatesHandler:       calculateRatesHandler,
		getShipmentHandler:          getShipmentHandler,
		trackShipmentHandler:        trackShipmentHandler,
		listShipmentsHandler:        listShipmentsHandler,
		getShipmentStatsHandler:     getShipmentStatsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/addresses", s.CreateAddress)
	api.GET("/addresses", s.ListAddresses)
	api.GET("/addresses/:addressId", s.GetAddress)
	api.PATCH("/addresses/:addressId", s.UpdateAddress)
	api.DELETE("/addresses/:addressId", s.RemoveAddress)

	api.POST("/shipping-methods", s.CreateMethod)
	api.GET("/shipping-methods", s.ListMethods)
	api.POST("/shipping-zones", s.CreateZone)
	api.GET("/shipping-zones", s.ListZones)
	api.POST("/rates", s.CalculateRates)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/stats", s.GetShipmentStats)
	api.GET("/shipments/:shipmentId", s.GetShipment)
	api.PATCH("/shipments/:shipmentId/status", s.UpdateShipmentStatus)
	api.DELETE("/shipments/:shipmentId", s.RemoveShipment)

	api.GET("/tracking/:number", s.TrackShipment)
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseUUIDQuery(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.QueryParam(name))
}

// CreateAddress handles POST /api/v1/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	var req CreateAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeBadRequest(ctx, "invalid userId")
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(addressID, userID,
		req.Line1, req.Line2, req.City, req.State,
		req.PostalCode, req.Country, req.Phone, req.IsDefault)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: addressID.String()})
}

// ListAddresses handles GET /api/v1/addresses?userId=...
func (s *Server) ListAddresses(ctx echo.Context) error {
	userID, err := parseUUIDQuery(ctx, "userId")
	if err != nil {
		return writeBadRequest(ctx, "invalid userId")
	}

	query, err := queries.NewListAddressesQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	addresses, err := s.listAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AddressJSON, len(addresses))
	for i, a := range addresses {
		response[i] = toAddressJSON(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAddress handles GET /api/v1/addresses/:addressId?userId=...
func (s *Server) GetAddress(ctx echo.Context) error {
	addressID, err := parseUUIDParam(ctx, "addressId")
	if err != nil {
		return writeBadRequest(ctx, "invalid addressId")
	}
	userID, err := parseUUIDQuery(ctx, "userId")
	if err != nil {
		return writeBadRequest(ctx, "invalid userId")
	}

	query, err := queries.NewGetAddressQuery(addressID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getAddressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAddressJSON(found))
}

// UpdateAddress handles PATCH /api/v1/addresses/:addressId.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	addressID, err := parseUUIDParam(ctx, "addressId")
	if err != nil {
		return writeBadRequest(ctx, "invalid addressId")
	}

	var req UpdateAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeBadRequest(ctx, "invalid userId")
	}

	patch := address.Patch{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}

	cmd, err := commands.NewUpdateAddressCommand(addressID, userID, patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveAddress handles DELETE /api/v1/addresses/:addressId?userId=...
func (s *Server) RemoveAddress(ctx echo.Context) error {
	addressID, err := parseUUIDParam(ctx, "addressId")
	if err != nil {
		return writeBadRequest(ctx, "invalid addressId")
	}
	userID, err := parseUUIDQuery(ctx, "userId")
	if err != nil {
		return writeBadRequest(ctx, "invalid userId")
	}

	cmd, err := commands.NewRemoveAddressCommand(addressID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateMethod handles POST /api/v1/shipping-methods.
func (s *Server) CreateMethod(ctx echo.Context) error {
	var req CreateMethodRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	methodType, err := catalog.MethodTypeFromString(req.MethodType)
	if err != nil {
		return writeError(ctx, err)
	}

	methodID := kernel.NewUUID()
	cmd, err := commands.NewCreateMethodCommand(methodID, req.Name, methodType,
		req.BasePrice, req.AdditionalItemPrice,
		req.MinDeliveryDays, req.MaxDeliveryDays,
		req.MaxWeightKG, req.Regions)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: methodID.String()})
}

// ListMethods handles GET /api/v1/shipping-methods.
func (s *Server) ListMethods(ctx echo.Context) error {
	methods, err := s.listMethodsHandler.Handle(ctx.Request().Context(), queries.NewListMethodsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MethodJSON, len(methods))
	for i, m := range methods {
		response[i] = toMethodJSON(m)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/shipping-zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req CreateZoneRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateZoneCommand(zoneID, req.Name,
		req.Countries, req.States, req.PostalCodes,
		req.BaseCost, req.AdditionalItemCost)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createZoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: zoneID.String()})
}

// ListZones handles GET /api/v1/shipping-zones.
func (s *Server) ListZones(ctx echo.Context) error {
	zones, err := s.listZonesHandler.Handle(ctx.Request().Context(), queries.NewListZonesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ZoneJSON, len(zones))
	for i, z := range zones {
		response[i] = toZoneJSON(z)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CalculateRates handles POST /api/v1/rates.
func (s *Server) CalculateRates(ctx echo.Context) error {
	var req CalculateRatesRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	query, err := queries.NewCalculateRatesQuery(req.Country, req.State, req.PostalCode,
		req.WeightKG, req.ItemCount, req.PreferredMethodType)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.calculateRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRateQuoteJSON(quote))
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderId")
	}
	methodID, err := kernel.UUIDFromString(req.MethodID)
	if err != nil {
		return writeBadRequest(ctx, "invalid methodId")
	}
	createdBy, err := kernel.UUIDFromString(req.CreatedBy)
	if err != nil {
		return writeBadRequest(ctx, "invalid createdBy")
	}

	carrier, err := shipment.CarrierFromString(req.Carrier)
	if err != nil {
		return writeError(ctx, err)
	}
	origin, err := toSnapshot(req.Origin)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := toSnapshot(req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID,
		carrier, methodID, req.Cost, origin, destination,
		req.WeightKG, req.Dimensions, req.Metadata, createdBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

func toSnapshot(req AddressSnapshotRequest) (shipment.AddressSnapshot, error) {
	return shipment.NewAddressSnapshot(req.Line1, req.Line2, req.City, req.State,
		req.PostalCode, req.Country, req.Phone)
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:shipmentId/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return writeBadRequest(ctx, "invalid shipmentId")
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	newStatus, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}
	updatedBy, err := kernel.UUIDFromString(req.UpdatedBy)
	if err != nil {
		return writeBadRequest(ctx, "invalid updatedBy")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, newStatus, shipment.StatusUpdate{
		TrackingNumber: req.TrackingNumber,
		TrackingURL:    req.TrackingURL,
		Location:       req.Location,
		Description:    req.Description,
		DeliveryNotes:  req.DeliveryNotes,
		FailureReason:  req.FailureReason,
		UpdatedBy:      updatedBy,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveShipment handles DELETE /api/v1/shipments/:shipmentId.
func (s *Server) RemoveShipment(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return writeBadRequest(ctx, "invalid shipmentId")
	}

	cmd, err := commands.NewRemoveShipmentCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:shipmentId.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return writeBadRequest(ctx, "invalid shipmentId")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentJSON(found))
}

// TrackShipment handles GET /api/v1/tracking/:number. The number matches
// either the shipment number or a carrier tracking number.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("number"))
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentJSON(found))
}

// ListShipments handles GET /api/v1/shipments with optional orderId, status
// and carrier filters.
func (s *Server) ListShipments(ctx echo.Context) error {
	var orderID *kernel.UUID
	if raw := ctx.QueryParam("orderId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, "invalid orderId")
		}
		orderID = &parsed
	}

	limit, offset, err := parsePaging(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid paging")
	}

	query, err := queries.NewListShipmentsQuery(orderID,
		ctx.QueryParam("status"), ctx.QueryParam("carrier"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentJSON, len(shipments))
	for i, found := range shipments {
		response[i] = toShipmentJSON(found)
	}
	return ctx.JSON(http.StatusOK, response)
}

const defaultPageSize = 50

func parsePaging(ctx echo.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}

// GetShipmentStats handles GET /api/v1/shipments/stats.
func (s *Server) GetShipmentStats(ctx echo.Context) error {
	stats, err := s.getShipmentStatsHandler.Handle(ctx.Request().Context(), queries.NewGetShipmentStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatsJSON(stats))
}
