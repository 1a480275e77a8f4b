package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/catalog"
	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/logger"
	"toolrental-pos/internal/render"
	"toolrental-pos/internal/repository"
	"toolrental-pos/internal/service"
)

// CheckoutHandler exposes the checkout engine and the agreement archive over
// JSON.
type CheckoutHandler struct {
	checkout service.CheckoutService
	archive  repository.AgreementRepository
}

func NewCheckoutHandler(checkout service.CheckoutService, archive repository.AgreementRepository) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		archive:  archive,
	}
}

type checkoutRequest struct {
	ToolCode        string `json:"tool_code"`
	RentalDays      int    `json:"rental_days"`
	CheckoutDate    string `json:"checkout_date"` // yyyy-mm-dd
	DiscountPercent int    `json:"discount_percent"`
}

type agreementResponse struct {
	ID              string            `json:"id"`
	ToolCode        string            `json:"tool_code"`
	ToolType        string            `json:"tool_type"`
	ToolBrand       string            `json:"tool_brand"`
	RentalDays      int               `json:"rental_days"`
	CheckoutDate    string            `json:"checkout_date"`
	DueDate         string            `json:"due_date"`
	DailyCharge     string            `json:"daily_charge"`
	DailyCharges    map[string]string `json:"daily_charges"`
	ChargeDays      int               `json:"charge_days"`
	Subtotal        string            `json:"subtotal"`
	DiscountPercent int               `json:"discount_percent"`
	DiscountAmount  string            `json:"discount_amount"`
	Total           string            `json:"total"`
	Report          string            `json:"report,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleCheckout processes a checkout transaction.
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svcReq := service.CheckoutRequest{
		ToolCode:        domain.ToolCode(req.ToolCode),
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
	}
	if req.CheckoutDate != "" {
		d, err := calendar.ParseDate(req.CheckoutDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svcReq.CheckoutDate = &d
	}

	a, err := h.checkout.Checkout(r.Context(), svcReq)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case domain.IsUnknownToolError(err):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Error("Checkout failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	report, err := render.Agreement(a)
	if err != nil {
		logger.Error("Failed to render completed agreement", "agreement_id", a.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := toAgreementResponse(a)
	resp.Report = report
	writeJSON(w, http.StatusCreated, resp)
}

// HandleListTools returns the rentable tool catalog.
func (h *CheckoutHandler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.List())
}

// HandleGetAgreement fetches an archived agreement by ID.
func (h *CheckoutHandler) HandleGetAgreement(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeError(w, http.StatusNotFound, "agreement archive is not configured")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agreement id")
		return
	}

	a, err := h.archive.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "agreement not found")
		return
	}
	writeJSON(w, http.StatusOK, toAgreementResponse(a))
}

// HandleHealth is the unauthenticated liveness probe.
func (h *CheckoutHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toAgreementResponse(a *domain.RentalAgreement) *agreementResponse {
	charges := make(map[string]string, len(a.DailyCharges))
	for d, amount := range a.DailyCharges {
		charges[d.String()] = amount.StringFixed(2)
	}

	return &agreementResponse{
		ID:              a.ID.String(),
		ToolCode:        string(a.Tool.Code),
		ToolType:        string(a.Tool.Type),
		ToolBrand:       string(a.Tool.Brand),
		RentalDays:      *a.RentalDays,
		CheckoutDate:    a.CheckoutDate.String(),
		DueDate:         a.DueDate.String(),
		DailyCharge:     a.Tool.DailyCharge.StringFixed(2),
		DailyCharges:    charges,
		ChargeDays:      *a.ChargeDays,
		Subtotal:        a.Subtotal.StringFixed(2),
		DiscountPercent: *a.DiscountPercent,
		DiscountAmount:  a.DiscountAmount.StringFixed(2),
		Total:           a.Total.StringFixed(2),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
