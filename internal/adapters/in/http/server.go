// Package http exposes the delivery lifecycle over an echo HTTP server.
// Handlers translate requests into commands and queries, and map domain
// errors onto status codes: validation, business rule and not-found failures
// all answer 400 with an error body, infrastructure faults answer 500.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/problem"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultPageLimit = 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	pickupDeliveryHandler   commands.PickupDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	reportProblemHandler    commands.ReportProblemCommandHandler
	cancelDeliveryHandler   commands.CancelDeliveryCommandHandler

	getDeliveriesHandler       queries.GetDeliveriesQueryHandler
	getDeliveryProblemsHandler queries.GetDeliveryProblemsQueryHandler
	getOpenProblemsHandler     queries.GetOpenDeliveryProblemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	pickupDeliveryHandler commands.PickupDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getDeliveryProblemsHandler queries.GetDeliveryProblemsQueryHandler,
	getOpenProblemsHandler queries.GetOpenDeliveryProblemsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		pickupDeliveryHandler:      pickupDeliveryHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		reportProblemHandler:       reportProblemHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		getDeliveriesHandler:       getDeliveriesHandler,
		getDeliveryProblemsHandler: getDeliveryProblemsHandler,
		getOpenProblemsHandler:     getOpenProblemsHandler,
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/delivery", s.CreateDelivery)
	e.GET("/delivery", s.GetDeliveries)
	e.POST("/delivery/:delivery_id", s.PickupDelivery)
	e.PUT("/delivery/:delivery_id", s.CompleteDelivery)
	e.POST("/delivery/:delivery_id/problems", s.ReportProblem)
	e.GET("/delivery/:delivery_id/problems", s.GetDeliveryProblems)
	e.GET("/delivery/all/problems", s.GetOpenDeliveryProblems)
	e.DELETE("/problem/:delivery_problem_id/cancel-delivery", s.CancelDelivery)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateDeliveryRequest is the body of POST /delivery.
type CreateDeliveryRequest struct {
	RecipientID string `json:"recipient_id"`
	CourierID   string `json:"courier_id"`
	Product     string `json:"product"`
}

// PickupDeliveryRequest is the body of POST /delivery/:delivery_id.
type PickupDeliveryRequest struct {
	StartDate time.Time `json:"start_date"`
}

// CompleteDeliveryRequest is the body of PUT /delivery/:delivery_id.
type CompleteDeliveryRequest struct {
	EndDate     *time.Time `json:"end_date"`
	SignatureID *string    `json:"signature_id"`
}

// ReportProblemRequest is the body of POST /delivery/:delivery_id/problems.
type ReportProblemRequest struct {
	Description string `json:"description"`
}

// DeliveryResponse represents one delivery in API responses.
type DeliveryResponse struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	CourierID   string     `json:"courier_id"`
	SignatureID *string    `json:"signature_id"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CanceledAt  *time.Time `json:"canceled_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ProblemResponse represents one problem report in API responses.
type ProblemResponse struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"delivery_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(recipientID, courierID, req.Product)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(aggregate))
}

// GetDeliveries handles GET /delivery.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	page, limit, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(page, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:          d.ID.String(),
			RecipientID: d.RecipientID.String(),
			CourierID:   d.CourierID.String(),
			Product:     d.Product,
			Status:      d.Status,
			StartDate:   d.StartDate,
			EndDate:     d.EndDate,
			CanceledAt:  d.CanceledAt,
			CreatedAt:   d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PickupDelivery handles POST /delivery/:delivery_id.
func (s *Server) PickupDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req PickupDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewPickupDeliveryCommand(deliveryID, req.StartDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.pickupDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(aggregate))
}

// CompleteDelivery handles PUT /delivery/:delivery_id.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CompleteDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	var signatureID *kernel.UUID
	if req.SignatureID != nil {
		id, sigErr := kernel.UUIDFromString(*req.SignatureID)
		if sigErr != nil {
			return badRequest(ctx, sigErr)
		}
		signatureID = &id
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, req.EndDate, signatureID)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(aggregate))
}

// ReportProblem handles POST /delivery/:delivery_id/problems.
func (s *Server) ReportProblem(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ReportProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewReportProblemCommand(deliveryID, req.Description)
	if err != nil {
		return badRequest(ctx, err)
	}

	report, err := s.reportProblemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProblemResponse(report))
}

// GetDeliveryProblems handles GET /delivery/:delivery_id/problems.
func (s *Server) GetDeliveryProblems(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDeliveryProblemsQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	problems, err := s.getDeliveryProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]ProblemResponse, len(problems))
	for i, p := range problems {
		response[i] = ProblemResponse{
			ID:          p.ID.String(),
			DeliveryID:  p.DeliveryID.String(),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OpenProblemsResponse is the body of GET /delivery/all/problems.
type OpenProblemsResponse struct {
	Total    int64                 `json:"total"`
	Problems []OpenProblemResponse `json:"problems"`
}

// OpenProblemResponse represents one open problem row with its delivery's product.
type OpenProblemResponse struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"delivery_id"`
	Product     string    `json:"product"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetOpenDeliveryProblems handles GET /delivery/all/problems.
func (s *Server) GetOpenDeliveryProblems(ctx echo.Context) error {
	page, limit, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOpenDeliveryProblemsQuery(page, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOpenProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := OpenProblemsResponse{
		Total:    result.Total,
		Problems: make([]OpenProblemResponse, len(result.Problems)),
	}
	for i, p := range result.Problems {
		response.Problems[i] = OpenProblemResponse{
			ID:          p.ID.String(),
			DeliveryID:  p.DeliveryID.String(),
			Product:     p.Product,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelDelivery handles DELETE /problem/:delivery_problem_id/cancel-delivery.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	problemID, err := kernel.UUIDFromString(ctx.Param("delivery_problem_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(problemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	aggregate, err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(aggregate))
}

func toDeliveryResponse(aggregate *delivery.Delivery) DeliveryResponse {
	var signatureID *string
	if id := aggregate.SignatureID(); id != nil {
		s := id.String()
		signatureID = &s
	}

	return DeliveryResponse{
		ID:          aggregate.ID().String(),
		RecipientID: aggregate.RecipientID().String(),
		CourierID:   aggregate.CourierID().String(),
		SignatureID: signatureID,
		Product:     aggregate.Product(),
		Status:      aggregate.Status().String(),
		StartDate:   aggregate.StartDate(),
		EndDate:     aggregate.EndDate(),
		CanceledAt:  aggregate.CanceledAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toProblemResponse(report *problem.Problem) ProblemResponse {
	return ProblemResponse{
		ID:          report.ID().String(),
		DeliveryID:  report.DeliveryID().String(),
		Description: report.Description(),
		CreatedAt:   report.CreatedAt(),
	}
}

func pagination(ctx echo.Context) (page, limit int, err error) {
	page, limit = 1, defaultPageLimit

	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("page must be a number")
		}
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("limit must be a number")
		}
	}

	return page, limit, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// domainError maps command failures onto status codes. Validation, business
// rule and not-found errors are the caller's fault; anything else is ours.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrBusinessRuleViolation),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return internalError(ctx)
	}
}
