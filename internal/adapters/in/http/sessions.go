package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetActiveTask handles GET /api/v1/sessions/active. A worker without an open
// session gets {"active": false, "session": null}.
//
//	@Summary	Get a worker's open session
//	@Tags		sessions
//	@Produce	json
//	@Param		user_email	query		string	true	"Worker email"
//	@Param		stage		query		string	false	"picking, packing or delivery"
//	@Success	200			{object}	ActiveTaskResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/sessions/active [get]
func (s *Server) GetActiveTask(c echo.Context) error {
	var req ActiveTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	query, err := queries.NewGetActiveTaskQuery(actorFrom(c), req.UserEmail, req.Stage)
	if err != nil {
		return err
	}

	task, err := s.handlers.GetActiveTask.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if task == nil {
		return c.JSON(http.StatusOK, ActiveTaskResponse{})
	}

	view := toSessionResponse(task.Session)
	return c.JSON(http.StatusOK, ActiveTaskResponse{
		Active:        true,
		Session:       &view,
		InvoiceStatus: task.InvoiceStatus,
		Priority:      task.Priority,
		ItemCount:     task.ItemCount,
	})
}

// ListSessionHistory handles GET /api/v1/sessions/history.
//
//	@Summary	List work sessions, most recent first
//	@Tags		sessions
//	@Produce	json
//	@Param		stage		query		string	false	"picking, packing or delivery"
//	@Param		status		query		string	false	"Session status"
//	@Param		date_from	query		string	false	"Started from (YYYY-MM-DD)"
//	@Param		date_to		query		string	false	"Started to (YYYY-MM-DD)"
//	@Param		search		query		string	false	"Invoice number, customer or worker name"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	PageResponse[SessionResponse]
//	@Failure	400			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/sessions/history [get]
func (s *Server) ListSessionHistory(c echo.Context) error {
	req := SessionHistoryRequest{PageRequest: newPageRequest()}
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

	query, err := queries.NewListSessionHistoryQuery(actorFrom(c), queries.SessionFilter{
		Stage:  req.Stage,
		Status: req.Status,
		Dates:  dates,
		Search: req.Search,
	}, pagination)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListSessionHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toSessionResponse))
}
