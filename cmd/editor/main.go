package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/catalog"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/quotestore"
	httpRouter "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Editor.StoreBackend).
		Msg("iniciando editor de cotizaciones")

	// Almacén de la colección guardada: archivo bbolt local por defecto,
	// Redis cuando varias instancias comparten la colección.
	var store appquote.CollectionStore
	switch cfg.Editor.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Editor.RedisAddr,
			DB:   cfg.Editor.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Editor.RedisAddr).Msg("conexión a Redis")
		}
		defer client.Close()
		store = quotestore.NewRedis(client)
	default:
		bolt, err := quotestore.NewBolt(cfg.Editor.StorePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Editor.StorePath).Msg("abrir almacén bbolt")
		}
		defer bolt.Close()
		store = bolt
	}

	// Catálogo de tarifas: el servicio de tarifas si hay URL, si no el archivo estático.
	var rateCatalog appquote.RateCatalog
	if cfg.Editor.CatalogURL != "" {
		rateCatalog = catalog.NewAPIClient(cfg.Editor.CatalogURL)
	} else {
		rateCatalog = catalog.NewStatic(cfg.Editor.CatalogPath)
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(log, infrapdf.FontConfig{
		Family: cfg.Editor.FontFamily,
		Path:   cfg.Editor.FontPath,
		URL:    cfg.Editor.FontURL,
	})

	editor := appquote.NewEditor(store, rateCatalog, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el PDF puede tardar si descarga la fuente
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name + "-editor"})
	})

	httpRouter.EditorRouter(app, editor)

	go func() {
		if err := app.Listen(cfg.Editor.HTTP.Addr()); err != nil {
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

	log.Info().Msg("editor detenido")
}
