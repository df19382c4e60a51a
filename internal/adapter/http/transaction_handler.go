package http

import (
	"net/http"

	"finbook-backend/internal/domain/ledger"
	"finbook-backend/pkg/apperr"
	"finbook-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

// TransactionHandler exposes the raw book: append an entry, read it back.
// All derived views live under /reports.
type TransactionHandler struct{ repo ledger.Repository }

func NewTransactionHandler(repo ledger.Repository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

func (h *TransactionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if date := c.QueryParam("date"); date != "" {
		out, err := h.repo.ListByDate(ctx, date)
		if err != nil {
			return writeError(c, apperr.Upstream("fetch transactions", err))
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.List(ctx)
	if err != nil {
		return writeError(c, apperr.Upstream("fetch transactions", err))
	}
	return c.JSON(http.StatusOK, out)
}

type transactionReq struct {
	Date        string  `json:"date" validate:"required,isodate"`
	AccountName string  `json:"accountName" validate:"required"`
	Particulars string  `json:"particulars"`
	RNo         string  `json:"rno"`
	Number      string  `json:"number"`
	Credit      float64 `json:"credit" validate:"gte=0"`
	Debit       float64 `json:"debit" validate:"gte=0"`
	UserName    string  `json:"userName"`
	EntryTime   string  `json:"entryTime"`
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	t := &ledger.Transaction{
		ID:          id.New(),
		Date:        req.Date,
		AccountName: req.AccountName,
		Particulars: req.Particulars,
		RNo:         req.RNo,
		Number:      req.Number,
		Credit:      req.Credit,
		Debit:       req.Debit,
		UserName:    req.UserName,
		EntryTime:   req.EntryTime,
	}
	if err := h.repo.Create(c.Request().Context(), t); err != nil {
		return writeError(c, apperr.Upstream("save transaction", err))
	}
	return c.JSON(http.StatusCreated, t)
}
