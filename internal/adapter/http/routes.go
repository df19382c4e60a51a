package http

import "github.com/labstack/echo/v4"

// Handlers bundles everything Register wires onto the echo instance.
type Handlers struct {
	Base    *Handler
	Loans   *LoanHandler
	Txns    *TransactionHandler
	Reports *ReportHandler
	Account *AccountHandler
	Images  *ImageHandler
}

func Register(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Base.Health)

	api := e.Group("/api")

	api.GET("/loans", h.Loans.List)
	api.POST("/loans", h.Loans.Create)
	api.GET("/loans/next-number", h.Loans.NextNumber)
	api.GET("/loans/search", h.Loans.Search)
	api.PUT("/loans/phone", h.Loans.UpdatePhone)
	api.GET("/loans/:id", h.Loans.Get)
	api.PUT("/loans/:id", h.Loans.Update)
	api.DELETE("/loans/:id", h.Loans.Delete)
	api.GET("/loans/:id/installments", h.Loans.Installments)
	api.GET("/loans/:id/statement", h.Reports.LoanStatement)
	api.POST("/loans/:id/images", h.Images.AttachLoanImages)
	api.DELETE("/loans/:id/images", h.Images.DetachLoanImage)

	api.GET("/transactions", h.Txns.List)
	api.POST("/transactions", h.Txns.Create)

	api.GET("/customers", h.Account.ListCustomers)
	api.POST("/customers", h.Account.SaveCustomer)
	api.GET("/customers/next-id", h.Account.NextCustomerID)
	api.GET("/customers/:id", h.Account.GetCustomer)
	api.PUT("/customers/:id", h.Account.SaveCustomer)
	api.DELETE("/customers/:id", h.Account.DeleteCustomer)
	api.POST("/customers/:id/images", h.Images.AttachCustomerImage)
	api.DELETE("/customers/:id/images", h.Images.DetachCustomerImage)

	api.GET("/guarantors", h.Account.ListGuarantors)
	api.POST("/guarantors", h.Account.SaveGuarantor)
	api.GET("/guarantors/next-id", h.Account.NextGuarantorID)
	api.GET("/guarantors/:id", h.Account.GetGuarantor)
	api.PUT("/guarantors/:id", h.Account.SaveGuarantor)
	api.DELETE("/guarantors/:id", h.Account.DeleteGuarantor)
	api.POST("/guarantors/:id/images", h.Images.AttachGuarantorImage)
	api.DELETE("/guarantors/:id/images", h.Images.DetachGuarantorImage)

	api.GET("/partners", h.Account.ListPartners)
	api.POST("/partners", h.Account.SavePartner)
	api.PUT("/partners/:id", h.Account.SavePartner)
	api.DELETE("/partners/:id", h.Account.DeletePartner)
	api.GET("/partners/:id/loans", h.Account.PartnerLoans)

	reports := api.Group("/reports")
	reports.GET("/daily", h.Reports.Daily)
	reports.GET("/daybook", h.Reports.Daybook)
	reports.GET("/ledger/accounts", h.Reports.LedgerAccounts)
	reports.GET("/ledger/account-types", h.Reports.LedgerAccountTypes)
	reports.GET("/ledger/details", h.Reports.LedgerDetails)
	reports.GET("/ledger/:accountId", h.Reports.AccountLedger)
	reports.GET("/profit-loss", h.Reports.ProfitLoss)
	reports.GET("/final-statement", h.Reports.FinalStatement)
	reports.GET("/business", h.Reports.Business)
	reports.GET("/npa", h.Reports.NPA)
	reports.GET("/new-customers", h.Reports.NewCustomers)
	reports.GET("/partner-performance", h.Reports.PartnerPerformance)
	reports.GET("/capital", h.Reports.Capital)
	reports.POST("/capital", h.Reports.AddCapital)
	reports.GET("/edited-loans", h.Reports.EditedLoans)
	reports.GET("/deleted-loans", h.Reports.DeletedLoans)
	reports.GET("/deleted-daybook", h.Reports.DeletedDaybook)
}
