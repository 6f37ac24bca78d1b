package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/handler"
	"bookstore/internal/infra/db"
	infraRepo "bookstore/internal/infra/repository"
	"bookstore/internal/logging"
	"bookstore/internal/metrics"
	"bookstore/internal/server"
	"bookstore/internal/session"
	"bookstore/internal/usecase"
	auth "bookstore/internal/usecase/auth_usecase"
	"bookstore/internal/validator"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	if err := run(); err != nil {
		slog.Error("bookstore stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	//DB接続
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	//Repository（GORM実装）生成
	memberRepo := infraRepo.NewMemberGormRepository(gormDB)
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	memberValidator := validator.NewMemberValidator(memberRepo)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(bookRepo, cfg.CatalogPageSize)
	cartUC := usecase.NewCartUsecase(txm, cartRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txm, cartRepo, clock, idGen)
	orderUC := usecase.NewOrderUsecase(txm, cfg.CatalogPageSize)
	registerUC := auth.NewRegisterUsecase(memberRepo, hasher, memberValidator)
	loginUC := auth.NewLoginUsecase(memberRepo, verifier, memberValidator)

	//メトリクス（プロセス情報も出す）
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sessions := session.NewManager(cfg.Session, cfg.IsProduction())

	//Handler生成
	e := server.New(logger, sessions, m)
	server.RegisterRoutes(e, server.Handlers{
		Account:  handler.NewAccountHandler(registerUC, loginUC, sessions),
		Books:    handler.NewBookHandler(catalogUC, sessions),
		Cart:     handler.NewCartHandler(cartUC, sessions),
		Checkout: handler.NewCheckoutHandler(checkoutUC, sessions, m),
		Orders:   handler.NewOrderHandler(orderUC),
	}, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, e, cfg.Addr(), logger)
}
