package http

import (
	"net/http"

	"finbook-backend/internal/domain/audit"
	"finbook-backend/internal/usecase/ledger"
	"finbook-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func windowFromQuery(c echo.Context) ledger.Window {
	return ledger.Window{From: c.QueryParam("fromDate"), To: c.QueryParam("toDate")}
}

func (h *ReportHandler) Daily(c echo.Context) error {
	out, err := h.uc.Daily(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Daybook(c echo.Context) error {
	out, err := h.uc.Daybook(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LedgerAccounts(c echo.Context) error {
	out, err := h.uc.LedgerAccounts(c.Request().Context(), c.QueryParam("accountType"), windowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LedgerAccountTypes(c echo.Context) error {
	out, err := h.uc.LedgerAccountTypes(c.Request().Context(), windowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LedgerDetails(c echo.Context) error {
	out, err := h.uc.LedgerDetails(c.Request().Context(), c.QueryParam("accountName"), windowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) AccountLedger(c echo.Context) error {
	out, err := h.uc.AccountLedger(c.Request().Context(), c.Param("accountId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LoanStatement(c echo.Context) error {
	out, err := h.uc.LoanStatement(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ProfitLoss(c echo.Context) error {
	out, err := h.uc.ProfitLoss(c.Request().Context(), windowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) FinalStatement(c echo.Context) error {
	out, err := h.uc.FinalStatement(c.Request().Context(), windowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// partnerFromQuery reads the partner filter. The canonical param is "partner";
// "partnerName" is accepted as an alias.
func partnerFromQuery(c echo.Context) string {
	if p := c.QueryParam("partner"); p != "" {
		return p
	}
	return c.QueryParam("partnerName")
}

func (h *ReportHandler) Business(c echo.Context) error {
	out, err := h.uc.Business(c.Request().Context(), windowFromQuery(c), partnerFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) NPA(c echo.Context) error {
	out, err := h.uc.NPA(c.Request().Context(),
		partnerFromQuery(c), c.QueryParam("aadhaar"), c.QueryParam("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) NewCustomers(c echo.Context) error {
	out, err := h.uc.NewCustomers(c.Request().Context(),
		c.QueryParam("fromDate"), c.QueryParam("toDate"), partnerFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) PartnerPerformance(c echo.Context) error {
	out, err := h.uc.PartnerPerformance(c.Request().Context(),
		partnerFromQuery(c), c.QueryParam("fromDate"), c.QueryParam("toDate"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Capital(c echo.Context) error {
	out, err := h.uc.Capital(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) AddCapital(c echo.Context) error {
	var req report.CapitalEntryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.AddCapital(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func auditWindowFromQuery(c echo.Context) audit.Window {
	return audit.Window{
		From:  c.QueryParam("fromDate"),
		To:    c.QueryParam("toDate"),
		Month: c.QueryParam("month"),
	}
}

func (h *ReportHandler) EditedLoans(c echo.Context) error {
	out, err := h.uc.Edited(c.Request().Context(), auditWindowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) DeletedLoans(c echo.Context) error {
	out, err := h.uc.Deleted(c.Request().Context(), auditWindowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) DeletedDaybook(c echo.Context) error {
	out, err := h.uc.DeletedDaybook(c.Request().Context(), auditWindowFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
