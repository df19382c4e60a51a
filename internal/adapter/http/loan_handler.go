package http

import (
	"net/http"

	loandom "finbook-backend/internal/domain/loan"
	"finbook-backend/internal/usecase/loan"
	"finbook-backend/pkg/apperr"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanReq struct {
	Date         string `json:"date" validate:"required,isodate"`
	LoanType     string `json:"loanType" validate:"required,loantype"`
	Number       int    `json:"number" validate:"gte=0"`
	CustomerName string `json:"customerName" validate:"required"`
	FatherName   string `json:"fatherName"`
	Aadhaar      string `json:"aadhaar"`
	CNo          string `json:"cNo"`
	Address      string `json:"address"`
	Phone1       string `json:"phone1"`
	Phone2       string `json:"phone2"`

	Guarantor1 loandom.Guarantor `json:"guarantor1"`
	Guarantor2 loandom.Guarantor `json:"guarantor2"`

	Particulars     string  `json:"particulars"`
	LoanAmount      float64 `json:"loanAmount" validate:"required,gte=1"`
	RateOfInterest  float64 `json:"rateOfInterest" validate:"gte=0"`
	Period          int     `json:"period" validate:"gte=0"`
	DocumentCharges float64 `json:"documentCharges" validate:"gte=0"`

	PartnerID   string `json:"partnerId"`
	PartnerName string `json:"partnerName"`
	UserName    string `json:"userName"`
	EntryTime   string `json:"entryTime"`
}

func (r *loanReq) toDomain() *loandom.Loan {
	return &loandom.Loan{
		Date:            r.Date,
		LoanType:        loandom.Type(r.LoanType),
		Number:          r.Number,
		CustomerName:    r.CustomerName,
		FatherName:      r.FatherName,
		Aadhaar:         r.Aadhaar,
		CNo:             r.CNo,
		Address:         r.Address,
		Phone1:          r.Phone1,
		Phone2:          r.Phone2,
		Guarantor1:      r.Guarantor1,
		Guarantor2:      r.Guarantor2,
		Particulars:     r.Particulars,
		LoanAmount:      r.LoanAmount,
		RateOfInterest:  r.RateOfInterest,
		Period:          r.Period,
		DocumentCharges: r.DocumentCharges,
		PartnerID:       r.PartnerID,
		PartnerName:     r.PartnerName,
		UserName:        r.UserName,
		EntryTime:       r.EntryTime,
	}
}

// loanTypeFromQuery reads the loan-type filter. The canonical param is "type";
// "loanType" is accepted as an alias.
func loanTypeFromQuery(c echo.Context) string {
	if t := c.QueryParam("type"); t != "" {
		return t
	}
	return c.QueryParam("loanType")
}

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), loanTypeFromQuery(c), c.QueryParam("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.toDomain(), req.UserName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	userName := c.QueryParam("userName")
	if userName == "" {
		userName = c.Request().Header.Get("X-User-Name")
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), userName); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *LoanHandler) NextNumber(c echo.Context) error {
	t := loanTypeFromQuery(c)
	if t == "" {
		return writeError(c, apperr.BadRequest("type parameter is required"))
	}
	n, err := h.uc.NextNumber(c.Request().Context(), loandom.Type(t))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"nextNumber": n})
}

func (h *LoanHandler) Search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(),
		c.QueryParam("aadhaar"), c.QueryParam("name"),
		c.QueryParam("fromDate"), c.QueryParam("toDate"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updatePhoneReq struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	Phone1        string `json:"phone1" validate:"required"`
	Phone2        string `json:"phone2"`
}

func (h *LoanHandler) UpdatePhone(c echo.Context) error {
	var req updatePhoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.UpdatePhone(c.Request().Context(), req.AccountNumber, req.Phone1, req.Phone2)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Installments(c echo.Context) error {
	out, err := h.uc.Installments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
