package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/infra/rest"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/store"
	"storefront/internal/usecase"
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	logger.SetLevel(lv)

	return logger
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	//Core生成（セッションごとにcookie jar付きClientと状態を持つ）
	factory := func() (*session.Core, error) {
		client, err := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
		if err != nil {
			return nil, err
		}

		st := store.New()

		cartGW := rest.NewCartGateway(client)
		productGW := rest.NewProductGateway(client)
		orderGW := rest.NewOrderGateway(client)
		userGW := rest.NewUserGateway(client)
		paymentGW := rest.NewPaymentGateway(client)

		return &session.Core{
			Client:   client,
			Store:    st,
			Cart:     usecase.NewCartUsecase(st, cartGW, logger),
			Product:  usecase.NewProductUsecase(st, productGW, logger),
			Order:    usecase.NewOrderUsecase(st, orderGW, logger),
			User:     usecase.NewUserUsecase(st, userGW, logger),
			Checkout: usecase.NewCheckoutUsecase(paymentGW, logger),
		}, nil
	}

	sessions := session.NewRegistry(factory, logger)

	e := server.New(cfg, sessions, logger)

	logger.WithField("port", cfg.Port).Info("starting web client")
	if err := server.Start(e, cfg); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
