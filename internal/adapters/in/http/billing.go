package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ReturnToBilling handles POST /api/v1/billing/return.
//
//	@Summary	Send an invoice back to billing for review
//	@Tags		billing
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ReturnToBillingRequest	true	"Return"
//	@Success	201		{object}	ReturnToBillingResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/billing/return [post]
func (s *Server) ReturnToBilling(c echo.Context) error {
	var req ReturnToBillingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReturnToBillingCommand(
		actorFrom(c), kernel.NewUUID(), req.InvoiceNo, req.ReturnReason, req.ReturnedBy)
	if err != nil {
		return err
	}

	result, err := s.handlers.ReturnToBilling.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	cancelled := make([]string, 0, len(result.CancelledSessions))
	for _, id := range result.CancelledSessions {
		cancelled = append(cancelled, id.String())
	}
	return c.JSON(http.StatusCreated, ReturnToBillingResponse{
		ReturnID:          result.ReturnID.String(),
		InvoiceNo:         result.InvoiceNo,
		Section:           string(result.Section),
		CancelledSessions: cancelled,
	})
}

// ListReturns handles GET /api/v1/billing/returns.
//
//	@Summary	List return-to-billing history
//	@Tags		billing
//	@Produce	json
//	@Param		state		query		string	false	"open or resolved"
//	@Param		section		query		string	false	"picking or packing"
//	@Param		date_from	query		string	false	"Returned from (YYYY-MM-DD)"
//	@Param		date_to		query		string	false	"Returned to (YYYY-MM-DD)"
//	@Param		search		query		string	false	"Invoice number or customer name"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	PageResponse[ReturnResponse]
//	@Failure	400			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/billing/returns [get]
func (s *Server) ListReturns(c echo.Context) error {
	req := ListReturnsRequest{PageRequest: newPageRequest()}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pagination, err := req.pagination()
	if err != nil {
		return err
	}
	dates, err := req.dates()
	if err != nil {
		return err
	}

	query, err := queries.NewListReturnsQuery(actorFrom(c), queries.ReturnFilter{
		State:   req.State,
		Section: req.Section,
		Dates:   dates,
		Search:  req.Search,
	}, pagination)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListReturns.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toReturnResponse))
}
