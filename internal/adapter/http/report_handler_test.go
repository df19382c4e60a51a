package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"finbook-backend/internal/config"
	"finbook-backend/internal/domain/ledger"
	loandom "finbook-backend/internal/domain/loan"
	"finbook-backend/internal/testutil/auditmock"
	"finbook-backend/internal/testutil/ledgermock"
	"finbook-backend/internal/testutil/loanmock"
	ledgeruc "finbook-backend/internal/usecase/ledger"
	"finbook-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

func newReportHandler(loans *loanmock.Repo, txns *ledgermock.Repo) *ReportHandler {
	if loans == nil {
		loans = &loanmock.Repo{}
	}
	if txns == nil {
		txns = &ledgermock.Repo{}
	}
	return NewReportHandler(report.NewUsecase(loans, txns, &auditmock.Repo{},
		ledgeruc.HeuristicMatcher{}, config.ReportConstants{PartnerCount: 4}))
}

func TestDaily_MissingDateIs400(t *testing.T) {
	e := newEchoWithValidator()
	h := newReportHandler(nil, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/reports/daily", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Daily(c); err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error == "" {
		t.Error("empty error message")
	}
}

func TestDaily_Success(t *testing.T) {
	e := newEchoWithValidator()
	day := []ledger.Transaction{{Date: "2024-01-05", AccountName: "A", Credit: 100}}
	h := newReportHandler(nil, &ledgermock.Repo{
		ListByDateFn: func(ctx context.Context, date string) ([]ledger.Transaction, error) { return day, nil },
		ListFn:       func(ctx context.Context) ([]ledger.Transaction, error) { return day, nil },
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/reports/daily?date=2024-01-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Daily(c); err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got report.DailyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.CreditTotal != 100 || got.ClosingBalance != 100 {
		t.Errorf("got %+v", got)
	}
}

func TestDaily_UpstreamFailureIs502(t *testing.T) {
	e := newEchoWithValidator()
	h := newReportHandler(nil, &ledgermock.Repo{
		ListByDateFn: func(ctx context.Context, date string) ([]ledger.Transaction, error) {
			return nil, context.DeadlineExceeded
		},
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/reports/daily?date=2024-01-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Daily(c); err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestNPA_PartnerQueryParam(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context) ([]loandom.Loan, error) {
			return []loandom.Loan{
				{ID: "l1", CustomerName: "A", LoanAmount: 1000, PartnerName: "Ravi"},
				{ID: "l2", CustomerName: "B", LoanAmount: 2000, PartnerName: "Suresh"},
			}, nil
		},
	}
	h := newReportHandler(loans, &ledgermock.Repo{
		ListFn: func(ctx context.Context) ([]ledger.Transaction, error) { return nil, nil },
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/reports/npa?partner=Ravi", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.NPA(c); err != nil {
		t.Fatalf("NPA error: %v", err)
	}
	var got []report.NPARow
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 1 || got[0].PartnerName != "Ravi" {
		t.Fatalf("partner filter not applied, got %+v", got)
	}

	// the older spelling keeps working
	req = httptest.NewRequest(stdhttp.MethodGet, "/api/reports/npa?partnerName=Suresh", nil)
	rec = httptest.NewRecorder()
	if err := h.NPA(e.NewContext(req, rec)); err != nil {
		t.Fatalf("NPA error: %v", err)
	}
	got = nil
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].PartnerName != "Suresh" {
		t.Fatalf("alias filter not applied, got %+v", got)
	}
}

func TestAddCapital_Validation(t *testing.T) {
	e := newEchoWithValidator()
	h := newReportHandler(nil, nil)

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/reports/capital",
		mustJSON(map[string]any{"particulars": "", "date": "bad"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddCapital(c); err != nil {
		t.Fatalf("AddCapital error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestAddCapital_Success(t *testing.T) {
	e := newEchoWithValidator()
	var saved *ledger.Transaction
	h := newReportHandler(nil, &ledgermock.Repo{
		CreateFn: func(ctx context.Context, tr *ledger.Transaction) error { saved = tr; return nil },
	})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/reports/capital",
		mustJSON(map[string]any{
			"date": "2024-01-05", "particulars": "RAVI deposit",
			"credit": 1000, "userName": "RAMESH",
		}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddCapital(c); err != nil {
		t.Fatalf("AddCapital error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.AccountName != "Capital - RAVI deposit" {
		t.Errorf("saved = %+v", saved)
	}
}
