package http

import (
	"net/http"

	"finbook-backend/internal/domain/customer"
	"finbook-backend/internal/domain/partner"
	"finbook-backend/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type customerReq struct {
	ID         string `json:"id"`
	CustomerID int    `json:"customerId" validate:"gte=0"`
	Aadhaar    string `json:"aadhaar"`
	Name       string `json:"name" validate:"required"`
	Father     string `json:"father"`
	Address    string `json:"address"`
	Village    string `json:"village"`
	Mandal     string `json:"mandal"`
	District   string `json:"district"`
	Phone1     string `json:"phone1"`
	Phone2     string `json:"phone2"`
}

func (h *AccountHandler) ListCustomers(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) GetCustomer(c echo.Context) error {
	out, err := h.uc.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) SaveCustomer(c echo.Context) error {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	}
	out, err := h.uc.SaveCustomer(c.Request().Context(), &customer.Customer{
		ID: req.ID, CustomerID: req.CustomerID, Aadhaar: req.Aadhaar,
		Name: req.Name, Father: req.Father, Address: req.Address,
		Village: req.Village, Mandal: req.Mandal, District: req.District,
		Phone1: req.Phone1, Phone2: req.Phone2,
	})
	if err != nil {
		return writeError(c, err)
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *AccountHandler) DeleteCustomer(c echo.Context) error {
	if err := h.uc.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AccountHandler) NextCustomerID(c echo.Context) error {
	n, err := h.uc.NextCustomerID(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"nextCustomerId": n})
}

type guarantorReq struct {
	ID          string `json:"id"`
	GuarantorID int    `json:"guarantorId" validate:"gte=0"`
	Aadhaar     string `json:"aadhaar"`
	Name        string `json:"name" validate:"required"`
	Father      string `json:"father"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

func (h *AccountHandler) ListGuarantors(c echo.Context) error {
	out, err := h.uc.ListGuarantors(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) GetGuarantor(c echo.Context) error {
	out, err := h.uc.GetGuarantor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) SaveGuarantor(c echo.Context) error {
	var req guarantorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	}
	out, err := h.uc.SaveGuarantor(c.Request().Context(), &customer.Guarantor{
		ID: req.ID, GuarantorID: req.GuarantorID, Aadhaar: req.Aadhaar,
		Name: req.Name, Father: req.Father, Address: req.Address, Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *AccountHandler) DeleteGuarantor(c echo.Context) error {
	if err := h.uc.DeleteGuarantor(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AccountHandler) NextGuarantorID(c echo.Context) error {
	n, err := h.uc.NextGuarantorID(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"nextGuarantorId": n})
}

type partnerReq struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *AccountHandler) ListPartners(c echo.Context) error {
	out, err := h.uc.ListPartners(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) SavePartner(c echo.Context) error {
	var req partnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	}
	out, err := h.uc.SavePartner(c.Request().Context(), &partner.Partner{
		ID: req.ID, Name: req.Name, Phone: req.Phone, Address: req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *AccountHandler) DeletePartner(c echo.Context) error {
	if err := h.uc.DeletePartner(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AccountHandler) PartnerLoans(c echo.Context) error {
	out, err := h.uc.PartnerLoans(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
