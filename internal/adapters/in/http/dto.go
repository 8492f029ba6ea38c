package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CustomerRequest struct {
	Code    string `json:"code" validate:"required,max=64"`
	Name    string `json:"name" validate:"required,max=255"`
	Area    string `json:"area" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=64"`
	Address string `json:"address"`
}

type ItemRequest struct {
	ItemCode      string          `json:"item_code" validate:"required,max=64"`
	Name          string          `json:"name" validate:"required,max=255"`
	Quantity      int             `json:"quantity" validate:"gt=0"`
	MRP           decimal.Decimal `json:"mrp"`
	BatchNo       string          `json:"batch_no" validate:"max=64"`
	ExpiryDate    string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	ShelfLocation string          `json:"shelf_location" validate:"max=64"`
}

type ImportInvoiceRequest struct {
	InvoiceNo    string          `json:"invoice_no" validate:"required,max=64"`
	InvoiceDate  string          `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	Priority     string          `json:"priority"`
	Customer     CustomerRequest `json:"customer"`
	SalesmanName string          `json:"salesman_name" validate:"max=255"`
	CreatedBy    string          `json:"created_by" validate:"max=255"`
	Remarks      string          `json:"remarks"`
	Items        []ItemRequest   `json:"items" validate:"required,min=1,dive"`
}

type CorrectInvoiceRequest struct {
	Priority        *string          `json:"priority"`
	Customer        *CustomerRequest `json:"customer"`
	SalesmanName    *string          `json:"salesman_name"`
	Remarks         *string          `json:"remarks"`
	Items           []ItemRequest    `json:"items" validate:"dive"`
	ReplaceItems    bool             `json:"replace_items"`
	ResolutionNotes string           `json:"resolution_notes"`
}

type WorkerStageRequest struct {
	InvoiceNo string `json:"invoice_no" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Notes     string `json:"notes"`
}

type StartDeliveryRequest struct {
	InvoiceNo    string `json:"invoice_no" validate:"required"`
	UserEmail    string `json:"user_email" validate:"omitempty,email"`
	DeliveryType string `json:"delivery_type" validate:"required"`
	CourierName  string `json:"courier_name"`
	TrackingNo   string `json:"tracking_no"`
	Notes        string `json:"notes"`
}

type CompleteDeliveryRequest struct {
	InvoiceNo string `json:"invoice_no" validate:"required"`
	UserEmail string `json:"user_email" validate:"omitempty,email"`
	Status    string `json:"status" validate:"required"`
	Notes     string `json:"notes"`
}

type ReturnToBillingRequest struct {
	InvoiceNo    string `json:"invoice_no" validate:"required"`
	ReturnReason string `json:"return_reason" validate:"required"`
	ReturnedBy   string `json:"returned_by"`
}

// PageRequest carries the common list parameters. Defaults are filled in before
// binding.
type PageRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	Search   string `query:"search"`
}

func newPageRequest() PageRequest {
	return PageRequest{Page: queries.DefaultPage, PageSize: queries.DefaultPageSize}
}

func (r PageRequest) pagination() (queries.Pagination, error) {
	return queries.NewPagination(r.Page, r.PageSize)
}

func (r PageRequest) dates() (queries.DateRange, error) {
	from, fromErr := parseDate("date_from", r.DateFrom)
	to, toErr := parseDate("date_to", r.DateTo)
	if fromErr != nil {
		return queries.DateRange{}, fromErr
	}
	if toErr != nil {
		return queries.DateRange{}, toErr
	}
	return queries.DateRange{From: from, To: to}, nil
}

type ListInvoicesRequest struct {
	PageRequest
	Status        []string `query:"status"`
	BillingStatus string   `query:"billing_status"`
	Priority      string   `query:"priority"`
}

type SessionHistoryRequest struct {
	PageRequest
	Stage  string `query:"stage"`
	Status string `query:"status"`
}

type ListReturnsRequest struct {
	PageRequest
	State   string `query:"state"`
	Section string `query:"section"`
}

type ActiveTaskRequest struct {
	UserEmail string `query:"user_email" validate:"required"`
	Stage     string `query:"stage"`
}

func parseDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return &t, nil
}

func toCustomerInput(r CustomerRequest) commands.CustomerInput {
	return commands.CustomerInput{
		Code:    r.Code,
		Name:    r.Name,
		Area:    r.Area,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

func toItemInputs(items []ItemRequest) ([]commands.ItemInput, error) {
	result := make([]commands.ItemInput, 0, len(items))
	for _, it := range items {
		expiry, err := parseDate("expiry_date", it.ExpiryDate)
		if err != nil {
			return nil, err
		}
		result = append(result, commands.ItemInput{
			ItemCode:      it.ItemCode,
			Name:          it.Name,
			Quantity:      it.Quantity,
			MRP:           it.MRP.String(),
			BatchNo:       it.BatchNo,
			ExpiryDate:    expiry,
			ShelfLocation: it.ShelfLocation,
		})
	}
	return result, nil
}

// Responses

type PageResponse[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

func toPageResponse[S, T any](page queries.Page[S], convert func(S) T) PageResponse[T] {
	results := make([]T, 0, len(page.Results))
	for _, r := range page.Results {
		results = append(results, convert(r))
	}
	return PageResponse[T]{Count: page.Count, Page: page.Page, PageSize: page.PageSize, Results: results}
}

type ImportInvoiceResponse struct {
	ID          string `json:"id"`
	InvoiceNo   string `json:"invoice_no"`
	TotalAmount string `json:"total_amount"`
}

type CustomerResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Area    string `json:"area"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type InvoiceResponse struct {
	ID            string           `json:"id"`
	InvoiceNo     string           `json:"invoice_no"`
	InvoiceDate   string           `json:"invoice_date"`
	Status        string           `json:"status"`
	BillingStatus string           `json:"billing_status"`
	Priority      string           `json:"priority"`
	Customer      CustomerResponse `json:"customer"`
	SalesmanName  string           `json:"salesman_name"`
	TotalAmount   string           `json:"total_amount"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ItemResponse struct {
	ItemCode      string  `json:"item_code"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	MRP           string  `json:"mrp"`
	Amount        string  `json:"amount"`
	BatchNo       string  `json:"batch_no,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	ShelfLocation string  `json:"shelf_location,omitempty"`
}

type ReturnResponse struct {
	ID              string     `json:"id"`
	InvoiceNo       string     `json:"invoice_no"`
	CustomerName    string     `json:"customer_name"`
	ReturnReason    string     `json:"return_reason"`
	ReturnedBy      string     `json:"returned_by"`
	Section         string     `json:"section"`
	ReturnedAt      time.Time  `json:"returned_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
}

type SessionResponse struct {
	ID              string     `json:"id"`
	InvoiceNo       string     `json:"invoice_no"`
	CustomerName    string     `json:"customer_name"`
	Stage           string     `json:"stage"`
	Status          string     `json:"status"`
	UserEmail       string     `json:"user_email,omitempty"`
	UserName        string     `json:"user_name,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds *int64     `json:"duration_seconds"`
	Notes           string     `json:"notes,omitempty"`
	CancelReason    string     `json:"cancel_reason,omitempty"`
	DeliveryType    string     `json:"delivery_type,omitempty"`
	CourierName     string     `json:"courier_name,omitempty"`
	TrackingNo      string     `json:"tracking_no,omitempty"`
}

type InvoiceDetailResponse struct {
	InvoiceResponse
	Remarks  string            `json:"remarks,omitempty"`
	Items    []ItemResponse    `json:"items"`
	Returns  []ReturnResponse  `json:"returns"`
	Sessions []SessionResponse `json:"sessions"`
}

type StageResponse struct {
	SessionID     string `json:"session_id"`
	InvoiceNo     string `json:"invoice_no"`
	Stage         string `json:"stage"`
	SessionStatus string `json:"session_status"`
	InvoiceStatus string `json:"invoice_status"`
}

type ReturnToBillingResponse struct {
	ReturnID          string   `json:"return_id"`
	InvoiceNo         string   `json:"invoice_no"`
	Section           string   `json:"section"`
	CancelledSessions []string `json:"cancelled_sessions"`
}

type ActiveTaskResponse struct {
	Active        bool             `json:"active"`
	Session       *SessionResponse `json:"session"`
	InvoiceStatus string           `json:"invoice_status,omitempty"`
	Priority      string           `json:"priority,omitempty"`
	ItemCount     int              `json:"item_count,omitempty"`
}

func toInvoiceResponse(s queries.InvoiceSummary) InvoiceResponse {
	return InvoiceResponse{
		ID:            s.ID.String(),
		InvoiceNo:     s.InvoiceNo,
		InvoiceDate:   s.InvoiceDate.Format(dateLayout),
		Status:        s.Status,
		BillingStatus: s.BillingStatus,
		Priority:      s.Priority,
		Customer: CustomerResponse{
			Code: s.CustomerCode,
			Name: s.CustomerName,
			Area: s.CustomerArea,
		},
		SalesmanName: s.SalesmanName,
		TotalAmount:  s.TotalAmount.StringFixed(2),
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toInvoiceDetailResponse(d queries.InvoiceDetail) InvoiceDetailResponse {
	head := toInvoiceResponse(d.InvoiceSummary)
	head.Customer.Phone = d.CustomerPhone
	head.Customer.Address = d.CustomerAddress

	items := make([]ItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		var expiry *string
		if it.ExpiryDate != nil {
			formatted := it.ExpiryDate.Format(dateLayout)
			expiry = &formatted
		}
		items = append(items, ItemResponse{
			ItemCode:      it.ItemCode,
			Name:          it.Name,
			Quantity:      it.Quantity,
			MRP:           it.MRP.StringFixed(2),
			Amount:        it.Amount.StringFixed(2),
			BatchNo:       it.BatchNo,
			ExpiryDate:    expiry,
			ShelfLocation: it.ShelfLocation,
		})
	}

	returns := make([]ReturnResponse, 0, len(d.Returns))
	for _, r := range d.Returns {
		returns = append(returns, toReturnResponse(r))
	}
	sessions := make([]SessionResponse, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		sessions = append(sessions, toSessionResponse(s))
	}

	return InvoiceDetailResponse{
		InvoiceResponse: head,
		Remarks:         d.Remarks,
		Items:           items,
		Returns:         returns,
		Sessions:        sessions,
	}
}

func toReturnResponse(r queries.ReturnView) ReturnResponse {
	return ReturnResponse{
		ID:              r.ID.String(),
		InvoiceNo:       r.InvoiceNo,
		CustomerName:    r.CustomerName,
		ReturnReason:    r.Reason,
		ReturnedBy:      r.ReturnedBy,
		Section:         r.Section,
		ReturnedAt:      r.ReturnedAt,
		ResolvedAt:      r.ResolvedAt,
		ResolvedBy:      r.ResolvedBy,
		ResolutionNotes: r.ResolutionNotes,
	}
}

func toSessionResponse(s queries.SessionView) SessionResponse {
	var duration *int64
	if s.Duration != nil {
		seconds := int64(s.Duration.Seconds())
		duration = &seconds
	}
	return SessionResponse{
		ID:              s.ID.String(),
		InvoiceNo:       s.InvoiceNo,
		CustomerName:    s.CustomerName,
		Stage:           s.Stage,
		Status:          s.Status,
		UserEmail:       s.WorkerEmail,
		UserName:        s.WorkerName,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationSeconds: duration,
		Notes:           s.Notes,
		CancelReason:    s.CancelReason,
		DeliveryType:    s.DeliveryType,
		CourierName:     s.CourierName,
		TrackingNo:      s.TrackingNo,
	}
}

func toStageResponse(r commands.StageResult) StageResponse {
	return StageResponse{
		SessionID:     r.SessionID.String(),
		InvoiceNo:     r.InvoiceNo,
		Stage:         r.Stage.String(),
		SessionStatus: r.SessionStatus.String(),
		InvoiceStatus: r.InvoiceStatus.String(),
	}
}
