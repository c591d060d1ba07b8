package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/service"
)

// SeriesPoint is one slice of the income/expense chart.
type SeriesPoint struct {
	Category string `json:"category" enum:"Income,Expense" doc:"Slice label"`
	Total    string `json:"total" doc:"Sum of amounts in this category"`
	Share    string `json:"share" doc:"Percentage of the combined total, one decimal place"`
}

type SummaryResponseBody struct {
	TotalIncome  string        `json:"totalIncome" doc:"Sum of Income amounts"`
	TotalExpense string        `json:"totalExpense" doc:"Sum of Expense amounts"`
	Balance      string        `json:"balance" doc:"Income minus expense, may be negative"`
	NoData       bool          `json:"noData" doc:"True when there is nothing to chart"`
	InDeficit    bool          `json:"inDeficit" doc:"True when the balance is negative"`
	Series       []SeriesPoint `json:"series" doc:"Chart series, empty when noData is set"`
}

type SummaryOutput struct {
	Body SummaryResponseBody
}

type summarizer interface {
	Summary(ctx context.Context) (service.Summary, error)
}

// Handler handles GET /v1/summary.
type Handler struct {
	TransactionService summarizer
}

func NewHandler(svc summarizer) *Handler {
	return &Handler{TransactionService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Ledger summary",
		Description: "Totals income and expense across the ledger and returns the chart distribution.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.TransactionService.Summary(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		logging.AddError(ctx, err)
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize ledger", err)
	}

	return &SummaryOutput{Body: toResponse(summary)}, nil
}

func toResponse(summary service.Summary) SummaryResponseBody {
	body := SummaryResponseBody{
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		Balance:      summary.Balance.StringFixed(2),
		NoData:       summary.NoData,
		InDeficit:    summary.InDeficit(),
		Series:       make([]SeriesPoint, len(summary.Series)),
	}
	for i, point := range summary.Series {
		body.Series[i] = SeriesPoint{
			Category: string(point.Category),
			Total:    point.Total.StringFixed(2),
			Share:    point.Share.StringFixed(1),
		}
	}
	return body
}
