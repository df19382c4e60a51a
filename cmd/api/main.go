package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "finbook-backend/internal/adapter/http"
	"finbook-backend/internal/adapter/middleware"
	"finbook-backend/internal/adapter/repository/mysql"
	storageadp "finbook-backend/internal/adapter/storage"
	"finbook-backend/internal/config"
	"finbook-backend/internal/infrastructure/cache"
	"finbook-backend/internal/infrastructure/db"
	accountuc "finbook-backend/internal/usecase/account"
	ledgeruc "finbook-backend/internal/usecase/ledger"
	loanuc "finbook-backend/internal/usecase/loan"
	reportuc "finbook-backend/internal/usecase/report"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	store := storageadp.New(cfg.Storage)
	if !cfg.StorageConfigured() {
		log.Println("storage: no credentials, image endpoints will refuse")
	}

	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	txns := mysql.NewTransactionRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	guarantors := mysql.NewGuarantorRepository(gdb)
	partners := mysql.NewPartnerRepository(gdb)
	audits := mysql.NewAuditRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loans, installments, unit)
	accountUC := accountuc.NewUsecase(customers, guarantors, partners, loans, store)
	reportUC := reportuc.NewUsecase(loans, txns, audits, ledgeruc.HeuristicMatcher{}, cfg.Report)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.Register(e, httpadp.Handlers{
		Base:    httpadp.NewHandler(),
		Loans:   httpadp.NewLoanHandler(loanUC),
		Txns:    httpadp.NewTransactionHandler(txns),
		Reports: httpadp.NewReportHandler(reportUC),
		Account: httpadp.NewAccountHandler(accountUC),
		Images:  httpadp.NewImageHandler(accountUC),
	})

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
