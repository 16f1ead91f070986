// Package http exposes the restaurant operations over HTTP. Handlers bind
// the request, build a command or query, dispatch it, and translate typed
// domain errors into status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/core/application/usecases/queries"
	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	occupyTableHandler          commands.OccupyTableCommandHandler
	confirmTableOrderHandler    commands.ConfirmTableOrderCommandHandler
	sendTableToKitchenHandler   commands.SendTableToKitchenCommandHandler
	startPreparationHandler     commands.StartPreparationCommandHandler
	markTableReadyHandler       commands.MarkTableReadyCommandHandler
	serveTableHandler           commands.ServeTableCommandHandler
	requestBillHandler          commands.RequestBillCommandHandler
	payTableHandler             commands.PayTableCommandHandler
	freeTableHandler            commands.FreeTableCommandHandler
	cancelTableOrderHandler     commands.CancelTableOrderCommandHandler
	createDeliveryOrderHandler  commands.CreateDeliveryOrderCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	sendDeliveryHandler         commands.SendDeliveryToKitchenCommandHandler

	getAllTablesHandler         queries.GetAllTablesQueryHandler
	getTableOrderHandler        queries.GetTableOrderQueryHandler
	getCompletedOrdersHandler   queries.GetCompletedOrdersQueryHandler
	getDeliveryOrderHandler     queries.GetDeliveryOrderQueryHandler
	getAllDeliveryOrdersHandler queries.GetAllDeliveryOrdersQueryHandler
	getDeliveryByStatusHandler  queries.GetDeliveryOrdersByStatusQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	occupyTableHandler commands.OccupyTableCommandHandler,
	confirmTableOrderHandler commands.ConfirmTableOrderCommandHandler,
	sendTableToKitchenHandler commands.SendTableToKitchenCommandHandler,
	startPreparationHandler commands.StartPreparationCommandHandler,
	markTableReadyHandler commands.MarkTableReadyCommandHandler,
	serveTableHandler commands.ServeTableCommandHandler,
	requestBillHandler commands.RequestBillCommandHandler,
	payTableHandler commands.PayTableCommandHandler,
	freeTableHandler commands.FreeTableCommandHandler,
	cancelTableOrderHandler commands.CancelTableOrderCommandHandler,
	createDeliveryOrderHandler commands.CreateDeliveryOrderCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	sendDeliveryHandler commands.SendDeliveryToKitchenCommandHandler,
	getAllTablesHandler queries.GetAllTablesQueryHandler,
	getTableOrderHandler queries.GetTableOrderQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	getDeliveryOrderHandler queries.GetDeliveryOrderQueryHandler,
	getAllDeliveryOrdersHandler queries.GetAllDeliveryOrdersQueryHandler,
	getDeliveryByStatusHandler queries.GetDeliveryOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		occupyTableHandler:          occupyTableHandler,
		confirmTableOrderHandler:    confirmTableOrderHandler,
		sendTableToKitchenHandler:   sendTableToKitchenHandler,
		startPreparationHandler:     startPreparationHandler,
		markTableReadyHandler:       markTableReadyHandler,
		serveTableHandler:           serveTableHandler,
		requestBillHandler:          requestBillHandler,
		payTableHandler:             payTableHandler,
		freeTableHandler:            freeTableHandler,
		cancelTableOrderHandler:     cancelTableOrderHandler,
		createDeliveryOrderHandler:  createDeliveryOrderHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		sendDeliveryHandler:         sendDeliveryHandler,
		getAllTablesHandler:         getAllTablesHandler,
		getTableOrderHandler:        getTableOrderHandler,
		getCompletedOrdersHandler:   getCompletedOrdersHandler,
		getDeliveryOrderHandler:     getDeliveryOrderHandler,
		getAllDeliveryOrdersHandler: getAllDeliveryOrdersHandler,
		getDeliveryByStatusHandler:  getDeliveryByStatusHandler,
	}
}

// RegisterRoutes binds every resource operation onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/tables", s.GetTables)
	e.GET("/tables/orders/completed", s.GetCompletedOrders)
	e.GET("/tables/:id/order-details", s.GetTableOrderDetails)
	e.POST("/tables/:id/occupy", s.OccupyTable)
	e.POST("/tables/:id/confirm", s.ConfirmTableOrder)
	e.POST("/tables/:id/send-to-kitchen", s.SendTableToKitchen)
	e.POST("/tables/:id/start-preparation", s.StartPreparation)
	e.POST("/tables/:id/ready", s.MarkTableReady)
	e.POST("/tables/:id/serve", s.ServeTable)
	e.POST("/tables/:id/request-bill", s.RequestBill)
	e.POST("/tables/:id/pay", s.PayTable)
	e.POST("/tables/:id/free", s.FreeTable)
	e.POST("/tables/:id/cancel-order", s.CancelTableOrder)

	e.POST("/delivery/create", s.CreateDeliveryOrder)
	e.GET("/delivery", s.GetAllDeliveryOrders)
	e.GET("/delivery/status/:status", s.GetDeliveryOrdersByStatus)
	e.GET("/delivery/:id", s.GetDeliveryOrder)
	e.PUT("/delivery/:id/status", s.UpdateDeliveryStatus)
	e.POST("/delivery/:id/send-to-kitchen", s.SendDeliveryToKitchen)
}

// errorStatus maps the typed error kinds onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	status := errorStatus(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func pathID(ctx echo.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return uint(id), nil
}

func deliveryOrderToResponse(d *deliveryorder.DeliveryOrder) queries.DeliveryOrderResponse {
	items := make([]queries.DeliveryOrderItemResponse, 0, len(d.Items()))
	for _, item := range d.Items() {
		items = append(items, queries.DeliveryOrderItemResponse{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return queries.DeliveryOrderResponse{
		ID:           d.ID(),
		CustomerName: d.CustomerName(),
		Phone:        d.Phone(),
		Address:      d.Address(),
		Reference:    d.Reference(),
		Notes:        d.Notes(),
		Status:       d.Status().String(),
		TotalAmount:  d.TotalAmount(),
		CreatedAt:    d.CreatedAt(),
		ReadyAt:      d.ReadyAt(),
		DispatchedAt: d.DispatchedAt(),
		DeliveredAt:  d.DeliveredAt(),
		Items:        items,
	}
}

// GetTables handles GET /tables.
func (s *Server) GetTables(ctx echo.Context) error {
	query := queries.NewGetAllTablesQuery()

	tables, err := s.getAllTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tables)
}

// OccupyTable handles POST /tables/{id}/occupy.
func (s *Server) OccupyTable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewOccupyTableCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.occupyTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "table occupied")
}

type confirmItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// ConfirmTableOrder handles POST /tables/{id}/confirm. The body is the list
// of requested lines; prices come from the catalog, not the client.
func (s *Server) ConfirmTableOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var items []confirmItemRequest
	if err = ctx.Bind(&items); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, commands.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewConfirmTableOrderCommand(id, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	total, err := s.confirmTableOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK,
		"order confirmed, total: "+strconv.FormatFloat(total, 'f', 2, 64))
}

// SendTableToKitchen handles POST /tables/{id}/send-to-kitchen.
func (s *Server) SendTableToKitchen(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSendTableToKitchenCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.sendTableToKitchenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "order sent to kitchen")
}

// StartPreparation handles POST /tables/{id}/start-preparation.
func (s *Server) StartPreparation(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartPreparationCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startPreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "preparation started")
}

// MarkTableReady handles POST /tables/{id}/ready.
func (s *Server) MarkTableReady(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkTableReadyCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markTableReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "order ready")
}

// ServeTable handles POST /tables/{id}/serve.
func (s *Server) ServeTable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewServeTableCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.serveTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "order served")
}

// RequestBill handles POST /tables/{id}/request-bill.
func (s *Server) RequestBill(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestBillCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "bill requested")
}

// PayTable handles POST /tables/{id}/pay.
func (s *Server) PayTable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPayTableCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.payTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "table paid and released")
}

// FreeTable handles POST /tables/{id}/free.
func (s *Server) FreeTable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFreeTableCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.freeTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "table freed")
}

// CancelTableOrder handles POST /tables/{id}/cancel-order.
func (s *Server) CancelTableOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelTableOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelTableOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, "order cancelled")
}

// GetTableOrderDetails handles GET /tables/{id}/order-details.
func (s *Server) GetTableOrderDetails(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetTableOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	ord, err := s.getTableOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ord)
}

// GetCompletedOrders handles GET /tables/orders/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	query := queries.NewGetCompletedOrdersQuery()

	orders, err := s.getCompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

type deliveryItemRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type createDeliveryOrderRequest struct {
	CustomerName string                `json:"customerName"`
	Phone        string                `json:"phone"`
	Address      string                `json:"address"`
	Reference    string                `json:"reference"`
	Notes        string                `json:"notes"`
	TotalAmount  float64               `json:"totalAmount"`
	Items        []deliveryItemRequest `json:"items"`
}

// CreateDeliveryOrder handles POST /delivery/create.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	var req createDeliveryOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.DeliveryLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.DeliveryLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(
		req.CustomerName, req.Phone, req.Address, req.Reference, req.Notes,
		req.TotalAmount, lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDeliveryOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryOrderToResponse(created))
}

// GetDeliveryOrder handles GET /delivery/{id}.
func (s *Server) GetDeliveryOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	d, err := s.getDeliveryOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, d)
}

// GetAllDeliveryOrders handles GET /delivery.
func (s *Server) GetAllDeliveryOrders(ctx echo.Context) error {
	query := queries.NewGetAllDeliveryOrdersQuery()

	orders, err := s.getAllDeliveryOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetDeliveryOrdersByStatus handles GET /delivery/status/{status}.
func (s *Server) GetDeliveryOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryOrdersByStatusQuery(ctx.Param("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getDeliveryByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateDeliveryStatus handles PUT /delivery/{id}/status. The target status
// comes from the "status" query parameter.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryOrderToResponse(updated))
}

type kitchenItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// SendDeliveryToKitchen handles POST /delivery/{id}/send-to-kitchen.
func (s *Server) SendDeliveryToKitchen(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var items []kitchenItemRequest
	if err = ctx.Bind(&items); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.KitchenLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, commands.KitchenLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewSendDeliveryToKitchenCommand(id, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmation, err := s.sendDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, confirmation)
}
