package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/debt-ledger/internal/api/middleware"
	"github.com/dom/debt-ledger/internal/api/respond"
	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/service"
	"github.com/shopspring/decimal"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type CounterpartyTotalsResponse struct {
	DebtNameID  uint            `json:"debt_name_id"`
	Name        string          `json:"name"`
	OwedToMoney decimal.Decimal `json:"owed_to_money"`
	OwedByMoney decimal.Decimal `json:"owed_by_money"`
	Total       decimal.Decimal `json:"total"`
}

type TotalsResponse struct {
	OwedToTotal decimal.Decimal `json:"owed_to_total"`
	OwedByTotal decimal.Decimal `json:"owed_by_total"`
	Total       decimal.Decimal `json:"total"`
}

type MonitoringResponse struct {
	User           UserSummary    `json:"user"`
	DebtMonitoring TotalsResponse `json:"debt_monitoring"`
}

// List serves /api/debts?debt_type=owed_to|owed_by|individual.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	debtType := r.URL.Query().Get("debt_type")
	if debtType == "individual" {
		h.listByCounterparty(w, r, user)
		return
	}

	direction, err := domain.ParseDirection(debtType)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid debt_type")
		return
	}

	debts, err := h.reportService.DebtsByDirection(r.Context(), user.ID, direction)
	if err != nil {
		writeReportError(w, "List", err)
		return
	}

	respond.JSON(w, http.StatusOK, "Debts", newUserDebtResponses(user, debts))
}

func (h *ReportHandler) listByCounterparty(w http.ResponseWriter, r *http.Request, user *domain.User) {
	totals, err := h.reportService.TotalsByCounterparty(r.Context(), user.ID)
	if err != nil {
		writeReportError(w, "listByCounterparty", err)
		return
	}

	resp := make([]CounterpartyTotalsResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, CounterpartyTotalsResponse{
			DebtNameID:  t.NameID,
			Name:        t.Name,
			OwedToMoney: t.OwedTo,
			OwedByMoney: t.OwedBy,
			Total:       t.Net,
		})
	}

	respond.JSON(w, http.StatusOK, "Debts by name", resp)
}

// Individual serves /api/debts/individual/{id}.
func (h *ReportHandler) Individual(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	name, debts, err := h.reportService.DebtsForCounterparty(r.Context(), user.ID, id)
	if err != nil {
		writeReportError(w, "Individual", err)
		return
	}

	respond.JSON(w, http.StatusOK, "Debts for "+name.Name, newUserDebtResponses(user, debts))
}

// Monitoring serves /api/monitoring.
func (h *ReportHandler) Monitoring(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	totals, err := h.reportService.TotalsByUser(r.Context(), user.ID)
	if err != nil {
		writeReportError(w, "Monitoring", err)
		return
	}

	respond.JSON(w, http.StatusOK, "Debt monitoring", MonitoringResponse{
		User: newUserSummary(user),
		DebtMonitoring: TotalsResponse{
			OwedToTotal: totals.OwedTo,
			OwedByTotal: totals.OwedBy,
			Total:       totals.Net,
		},
	})
}

func writeReportError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrDebtNameNotFound):
		respond.Error(w, http.StatusNotFound, "Debt name not found")
	case errors.Is(err, domain.ErrInvalidDirection):
		respond.Error(w, http.StatusBadRequest, "Invalid debt_type")
	default:
		logger.Log.Error().Err(err).Str("op", op).Msg("[report] request failed")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
