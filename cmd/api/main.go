package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/atelie7divas/atelie-api/internal/application/analytics"
	"github.com/atelie7divas/atelie-api/internal/application/auth"
	"github.com/atelie7divas/atelie-api/internal/application/inventory"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	appsync "github.com/atelie7divas/atelie-api/internal/application/sync"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/localdb"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/metrics"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/sheets"
	httpRouter "github.com/atelie7divas/atelie-api/internal/interfaces/http"
	"github.com/atelie7divas/atelie-api/pkg/config"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// As linhas da planilha esperam números JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true

	kv, err := localdb.Open(cfg.Data.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.Path).Msg("abrir banco local")
	}
	defer kv.Close()

	store := state.New(kv, log)

	// Bootstrap opcional do endpoint de sync via env (o valor efetivo vive no
	// AppConfig e pode ser trocado em runtime pelo painel de manutenção).
	if cfg.Sync.GasWebAppURL != "" && store.GasWebAppURL() == "" {
		appCfg := store.Config()
		appCfg.GasWebAppURL = cfg.Sync.GasWebAppURL
		store.SetConfig(appCfg)
	}

	engine := appsync.NewEngine(store, sheets.NewClient(), log, appsync.Options{
		PushDebounce: cfg.Sync.PushDebounce,
		PullInterval: cfg.Sync.PullInterval,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	var ops *metrics.Server
	if cfg.Metrics.Addr != "" {
		ops = metrics.NewServer(cfg.Metrics.Addr, cfg.Metrics.Enabled)
		go func() {
			if err := ops.Start(); err != nil {
				log.Warn().Err(err).Msg("servidor operacional finalizado")
			}
		}()
	}

	authUC := auth.NewUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewUseCase(store)
	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		SyncEngine:  engine,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTP.Addr()).
		Int("lojas", len(store.Stores())).
		Bool("sync", store.GasWebAppURL() != "").
		Msg("aplicação pronta")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando...")
	cancel() // para o motor de sync; requisições em voo não são canceladas

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}
	if ops != nil {
		if err := ops.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("desligamento do servidor operacional")
		}
	}

	log.Info().Msg("aplicação encerrada")
}
