package http

import (
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ImportInvoice handles POST /api/v1/invoices/import.
//
//	@Summary	Import an invoice from the billing system
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		invoice	body		ImportInvoiceRequest	true	"Invoice"
//	@Success	201		{object}	ImportInvoiceResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Security	ApiKeyAuth
//	@Router		/invoices/import [post]
func (s *Server) ImportInvoice(c echo.Context) error {
	var req ImportInvoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	invoiceDate, err := parseDate("invoice_date", req.InvoiceDate)
	if err != nil {
		return err
	}
	items, err := toItemInputs(req.Items)
	if err != nil {
		return err
	}

	input := commands.ImportInvoiceInput{
		InvoiceNo:    req.InvoiceNo,
		InvoiceDate:  *invoiceDate,
		Priority:     req.Priority,
		Customer:     toCustomerInput(req.Customer),
		SalesmanName: req.SalesmanName,
		CreatedBy:    req.CreatedBy,
		Remarks:      req.Remarks,
		Items:        items,
	}
	cmd, err := commands.NewImportInvoiceCommand(actorFrom(c), kernel.NewUUID(), input)
	if err != nil {
		return err
	}
	result, err := s.handlers.ImportInvoice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ImportInvoiceResponse{
		ID:          result.ID.String(),
		InvoiceNo:   result.InvoiceNo,
		TotalAmount: result.TotalAmount.String(),
	})
}

// ListInvoices handles GET /api/v1/invoices.
//
//	@Summary	List invoices visible to the caller
//	@Tags		invoices
//	@Produce	json
//	@Param		status			query		[]string	false	"Fulfillment status"	collectionFormat(multi)
//	@Param		billing_status	query		string		false	"Billing status"
//	@Param		priority		query		string		false	"Priority"
//	@Param		date_from		query		string		false	"Invoice date from (YYYY-MM-DD)"
//	@Param		date_to			query		string		false	"Invoice date to (YYYY-MM-DD)"
//	@Param		search			query		string		false	"Invoice number or customer name"
//	@Param		page			query		int			false	"Page"
//	@Param		page_size		query		int			false	"Page size"
//	@Success	200				{object}	PageResponse[InvoiceResponse]
//	@Failure	400				{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/invoices [get]
func (s *Server) ListInvoices(c echo.Context) error {
	req := ListInvoicesRequest{PageRequest: newPageRequest()}
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

	query, err := queries.NewListInvoicesQuery(actorFrom(c), queries.InvoiceFilter{
		Statuses:      splitValues(req.Status),
		BillingStatus: req.BillingStatus,
		Priority:      req.Priority,
		Dates:         dates,
		Search:        req.Search,
	}, pagination)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListInvoices.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toInvoiceResponse))
}

// GetInvoice handles GET /api/v1/invoices/:invoice_no.
//
//	@Summary	Get an invoice with items, returns and sessions
//	@Tags		invoices
//	@Produce	json
//	@Param		invoice_no	path		string	true	"Invoice number"
//	@Success	200			{object}	InvoiceDetailResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/invoices/{invoice_no} [get]
func (s *Server) GetInvoice(c echo.Context) error {
	query, err := queries.NewGetInvoiceQuery(actorFrom(c), c.Param("invoice_no"))
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetInvoice.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceDetailResponse(detail))
}

// CorrectInvoice handles PATCH /api/v1/invoices/:invoice_no.
//
//	@Summary	Correct an invoice under review
//	@Tags		invoices
//	@Accept		json
//	@Param		invoice_no	path	string					true	"Invoice number"
//	@Param		correction	body	CorrectInvoiceRequest	true	"Correction"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/invoices/{invoice_no} [patch]
func (s *Server) CorrectInvoice(c echo.Context) error {
	var req CorrectInvoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		return err
	}
	input := commands.CorrectInvoiceInput{
		Priority:        req.Priority,
		SalesmanName:    req.SalesmanName,
		Remarks:         req.Remarks,
		Items:           items,
		ReplaceItems:    req.ReplaceItems,
		ResolutionNotes: req.ResolutionNotes,
	}
	if req.Customer != nil {
		customer := toCustomerInput(*req.Customer)
		input.Customer = &customer
	}

	cmd, err := commands.NewCorrectInvoiceCommand(actorFrom(c), c.Param("invoice_no"), input)
	if err != nil {
		return err
	}
	if err := s.handlers.CorrectInvoice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReleaseInvoice handles POST /api/v1/invoices/:invoice_no/release.
//
//	@Summary	Release a re-invoiced invoice back to picking
//	@Tags		invoices
//	@Param		invoice_no	path	string	true	"Invoice number"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/invoices/{invoice_no}/release [post]
func (s *Server) ReleaseInvoice(c echo.Context) error {
	cmd, err := commands.NewReleaseInvoiceCommand(actorFrom(c), c.Param("invoice_no"))
	if err != nil {
		return err
	}
	if err := s.handlers.ReleaseInvoice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// splitValues accepts both repeated and comma-separated query values.
func splitValues(values []string) []string {
	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
