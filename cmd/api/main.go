package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"aidforpaws/internal/adapter"
	"aidforpaws/internal/http/handlers"
	"aidforpaws/internal/http/httpapi"
	"aidforpaws/internal/infra"
	"aidforpaws/internal/infra/geoip"
	"aidforpaws/internal/middleware"
	"aidforpaws/internal/providers/razorpay"
	"aidforpaws/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	stores, err := adapter.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	var (
		gateway   razorpay.Gateway
		keySecret = cfg.RazorpayKeySecret
	)
	if cfg.UsesStubGateway() {
		logger.Warn().Msg("razorpay keys not set; using stub gateway")
		gateway = razorpay.NewStubGateway()
		if keySecret == "" {
			keySecret = razorpay.StubKeySecret
		}
	} else {
		client, err := razorpay.NewClient(razorpay.Options{
			KeyID:          cfg.RazorpayKeyID,
			KeySecret:      cfg.RazorpayKeySecret,
			BaseURL:        cfg.RazorpayBaseURL,
			Logger:         &logger,
			RequestTimeout: cfg.PaymentTimeout,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build razorpay client")
		}
		gateway = client
	}

	animals := service.NewAnimalService(stores.Animals)
	donations := service.NewDonationService(stores.Donations)
	payments := service.NewPaymentService(gateway, razorpay.NewSignatureVerifier(keySecret), donations, cfg.PaymentCurrency, logger)
	admin, err := service.NewAdminService(service.AdminOptions{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		Currency:     cfg.PaymentCurrency,
		Locale:       cfg.CurrencyLocale,
	}, animals, donations)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure admin")
	}

	app := &handlers.App{
		Animals:     animals,
		Donations:   donations,
		Payments:    payments,
		Admin:       admin,
		Store:       stores,
		StoreName:   stores.Driver,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.AdminTokenTTL,
		TokenIssuer: "aidforpaws",
		Logger:      logger,
	}

	trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid TRUSTED_PROXIES")
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:              cfg.AllowedOrigins,
		RateLimitPerMin:             cfg.RateLimitPerMin,
		DirectDonationsRequireAdmin: cfg.DirectDonationsRequireAdmin,
		CountryLookup:               resolver.Lookup(),
		TrustedProxies:              trusted,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("store", stores.Driver).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
