package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StartPicking handles POST /api/v1/picking/start.
//
//	@Summary	Start picking an invoice
//	@Tags		picking
//	@Accept		json
//	@Produce	json
//	@Param		request	body		WorkerStageRequest	true	"Scan"
//	@Success	201		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/picking/start [post]
func (s *Server) StartPicking(c echo.Context) error {
	return s.startWorkerStage(c, commands.NewStartPickingCommand)
}

// CompletePicking handles POST /api/v1/picking/complete.
//
//	@Summary	Complete picking an invoice
//	@Tags		picking
//	@Accept		json
//	@Produce	json
//	@Param		request	body		WorkerStageRequest	true	"Scan"
//	@Success	200		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/picking/complete [post]
func (s *Server) CompletePicking(c echo.Context) error {
	return s.completeWorkerStage(c, commands.NewCompletePickingCommand)
}

// StartPacking handles POST /api/v1/packing/start.
//
//	@Summary	Start packing an invoice
//	@Tags		packing
//	@Accept		json
//	@Produce	json
//	@Param		request	body		WorkerStageRequest	true	"Scan"
//	@Success	201		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/packing/start [post]
func (s *Server) StartPacking(c echo.Context) error {
	return s.startWorkerStage(c, commands.NewStartPackingCommand)
}

// CompletePacking handles POST /api/v1/packing/complete.
//
//	@Summary	Complete packing an invoice
//	@Tags		packing
//	@Accept		json
//	@Produce	json
//	@Param		request	body		WorkerStageRequest	true	"Scan"
//	@Success	200		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/packing/complete [post]
func (s *Server) CompletePacking(c echo.Context) error {
	return s.completeWorkerStage(c, commands.NewCompletePackingCommand)
}

// StartDelivery handles POST /api/v1/delivery/start.
//
//	@Summary	Dispatch a packed invoice
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		request	body		StartDeliveryRequest	true	"Dispatch"
//	@Success	201		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/delivery/start [post]
func (s *Server) StartDelivery(c echo.Context) error {
	var req StartDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewStartDeliveryCommand(
		actorFrom(c),
		kernel.NewUUID(),
		req.InvoiceNo, req.UserEmail, req.DeliveryType, req.CourierName, req.TrackingNo, req.Notes,
	)
	if err != nil {
		return err
	}

	result, err := s.handlers.StartStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toStageResponse(result))
}

// CompleteDelivery handles POST /api/v1/delivery/complete. Status IN_TRANSIT
// records a progress note and keeps the session open.
//
//	@Summary	Complete or update a delivery
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CompleteDeliveryRequest	true	"Delivery outcome"
//	@Success	200		{object}	StageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/delivery/complete [post]
func (s *Server) CompleteDelivery(c echo.Context) error {
	var req CompleteDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actorFrom(c), req.InvoiceNo, req.UserEmail, req.Status, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.handlers.CompleteStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStageResponse(result))
}

func (s *Server) startWorkerStage(
	c echo.Context,
	newCommand func(access.Actor, kernel.UUID, string, string, string) (commands.StartStageCommand, error),
) error {
	var req WorkerStageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := newCommand(actorFrom(c), kernel.NewUUID(), req.InvoiceNo, req.UserEmail, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.handlers.StartStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toStageResponse(result))
}

func (s *Server) completeWorkerStage(
	c echo.Context,
	newCommand func(access.Actor, string, string, string) (commands.CompleteStageCommand, error),
) error {
	var req WorkerStageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := newCommand(actorFrom(c), req.InvoiceNo, req.UserEmail, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.handlers.CompleteStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStageResponse(result))
}
