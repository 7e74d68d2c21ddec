package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/diedev/firex-web/docs"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/application/usecase"
	"github.com/diedev/firex-web/internal/infrastructure/api"
	infrapdf "github.com/diedev/firex-web/internal/infrastructure/pdf"
	"github.com/diedev/firex-web/internal/infrastructure/postgres"
	"github.com/diedev/firex-web/internal/infrastructure/storage"
	httpRouter "github.com/diedev/firex-web/internal/interfaces/http"
	"github.com/diedev/firex-web/pkg/config"
	"github.com/diedev/firex-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Session.Store).Msg("store de sesiones")
	}
	defer closeStore()

	secret := cfg.Session.CookieSecret
	if secret == "" {
		// Sólo llega vacío en development (Validate lo exige en otros entornos).
		secret = randomSecret()
		log.Warn().Msg("SESSION_SECRET vacío: se generó uno temporal, las sesiones no sobreviven reinicios")
	}

	client := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		SendBearer: cfg.API.SendBearer,
	}, log)

	receipts := infrapdf.NewReceiptGenerator(infrapdf.Issuer{Name: "Firex"})

	authUC := usecase.NewAuthUseCase(client.Auth, log)
	catalogUC := usecase.NewCatalogUseCase(client.Products, client.Categories)
	cartUC := usecase.NewCartUseCase(client.Cart, client.Products)
	serviceRequestUC := usecase.NewServiceRequestUseCase(client.ServiceRequests, receipts)
	profileUC := usecase.NewProfileUseCase(client.Users)
	adminUC := usecase.NewAdminUseCase(client.Products, client.Categories, client.Users, client.ServiceRequests, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Firex Web BFF",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CatalogUC:        catalogUC,
		CartUC:           cartUC,
		ServiceRequestUC: serviceRequestUC,
		ProfileUC:        profileUC,
		AdminUC:          adminUC,
		Health:           httpRouter.NewHealthHandler(cfg.App.Name, client.Health, httpRouter.DefaultHealthTimeout),
		Session: httpRouter.SessionConfig{
			Manager:    session.NewManager(store, log),
			Secret:     secret,
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     !cfg.IsDevelopment(),
			Issuer:     cfg.App.Name,
			Log:        log,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore elige el backend de sesiones según SESSION_STORE y, si hay clave, cifra los valores.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.Store, func(), error) {
	var (
		store storage.Store
		done  = func() {}
	)

	switch cfg.Session.Store {
	case config.StoreFile:
		fs, err := storage.NewFileStore(cfg.Session.FilePath)
		if err != nil {
			return nil, nil, err
		}
		store = fs
	case config.StoreRedis:
		client, err := storage.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewRedisStore(client, cfg.Session.TTL)
		done = func() { _ = client.Close() }
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool, cfg.Session.TTL)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		store = kv
		done = pool.Close
	default:
		store = storage.NewMemoryStore(cfg.Session.TTL)
	}

	if cfg.Session.EncryptionKey != "" {
		key, err := storage.ParseKey(cfg.Session.EncryptionKey)
		if err != nil {
			done()
			return nil, nil, err
		}
		store = storage.NewSealedStore(store, key)
		log.Info().Msg("valores de sesión cifrados (secretbox)")
	}
	return store, done, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
