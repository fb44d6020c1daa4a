package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/config"
	"github.com/Gunvolt24/ohsushi_storefront/internal/banner"
	"github.com/Gunvolt24/ohsushi_storefront/internal/cart"
	"github.com/Gunvolt24/ohsushi_storefront/internal/kafka"
	"github.com/Gunvolt24/ohsushi_storefront/internal/notice"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/internal/repo/memory"
	"github.com/Gunvolt24/ohsushi_storefront/internal/repo/postgres"
	"github.com/Gunvolt24/ohsushi_storefront/internal/repo/redis"
	rest "github.com/Gunvolt24/ohsushi_storefront/internal/transport/http"
	"github.com/Gunvolt24/ohsushi_storefront/internal/usecase"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/httpx"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/logger"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/money"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/telemetry"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Допустимые значения бэкендов.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendKafka    = "kafka"
)

// maxSlides - верхняя граница числа слайдов баннера.
const maxSlides = 50

// ErrUnknownBackend - в конфигурации указан неизвестный бэкенд.
var ErrUnknownBackend = errors.New("unknown backend")

// App - собранное приложение и его внешние интерфейсы (HTTP, consumer, ротация баннера).
type App struct {
	Logger          ports.Logger           // логгер
	HTTPServer      *http.Server           // HTTP-сервер
	EventConsumer   ports.MessageConsumer  // консьюмер UI-событий; nil - Kafka выключена
	BannerRotator   ports.BackgroundRunner // автопрокрутка баннера; nil - без ротации
	gracefulTimeout time.Duration          // время ожидания завершения HTTP-сервера
}

// Cleanup - функция освобождения ресурсов.
type Cleanup func()

// applyGinMode - устанавливает режим Gin по строке;
// неизвестное значение -> debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// openBlobStore - хранилище корзины по конфигурации и функция его закрытия.
func openBlobStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.BlobStore, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "", BackendMemory:
		return memory.NewBlobStore(), func() {}, nil

	case BackendRedis:
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, func() {}, err
		}
		log.Infof(ctx, "cart storage: redis addr=%s db=%d", cfg.Redis.Addr, cfg.Redis.DB)
		return redis.NewBlobRepository(client), func() {
			if err := client.Close(); err != nil {
				log.Warnf(ctx, "redis close: %v", err)
			}
		}, nil

	case BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, func() {}, err
		}
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, func() {}, err
			}
		}
		log.Infof(ctx, "cart storage: postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewBlobRepository(pool), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("%w: storage=%q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}

// openClipboard - буфер обмена для текста заказа и функция его закрытия.
func openClipboard(cfg *config.Config, log ports.Logger) (ports.Clipboard, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Clipboard.Backend)) {
	case "", BackendMemory:
		return memory.NewClipboard(log), func() error { return nil }, nil
	case BackendKafka:
		w := kafka.NewClipboardWriter(cfg.Kafka.Brokers, cfg.Kafka.ClipboardTopic, log)
		return w, w.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: clipboard=%q", ErrUnknownBackend, cfg.Clipboard.Backend)
	}
}

// Bootstrap - собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилище корзины.
	blob, closeBlob, err := openBlobStore(ctx, cfg, logg)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	// Буфер обмена для текста заказа.
	clipboard, closeClipboard, err := openClipboard(cfg, logg)
	if err != nil {
		closeBlob()
		closeLogger()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию - no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка доменного слоя: корзина читается из хранилища один раз.
	cartStore := cart.LoadCartStore(ctx, blob, cfg.Shop.CartKey, validate.NewCartValidator(), logg)
	carousel := banner.NewCarousel(httpx.ClampInt(cfg.Banner.Slides, 1, maxSlides), cfg.Banner.Interval, logg)
	renderer := view.NewRenderer(money.NewFormatter(cfg.Shop.Currency, cfg.Shop.Locale), cfg.Shop.Name)
	storefront := usecase.NewStorefront(cartStore, carousel, clipboard, notice.NewBoard(logg), renderer, logg)
	logg.Infof(ctx, "storefront ready shop=%q cart_items=%d", cfg.Shop.Name, cartStore.ItemCount())

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(storefront, logg, cfg.HTTP.HandlerTimeout)
	if reader, ok := clipboard.(ports.ClipboardReader); ok {
		httpHandler.WithClipboard(reader)
	}
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Консьюмер UI-событий из Kafka (опционально).
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = kafka.NewConsumer(&kafkaCfg, storefront, logg)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		BannerRotator:   carousel,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	if consumer != nil {
		app.EventConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if err := closeClipboard(); err != nil {
			logg.Warnf(ctx, "clipboard close error: %v", err)
		}
		closeBlob()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run - запускает HTTP-сервер и фоновые компоненты; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.EventConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.EventConsumer.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Автопрокрутка баннера.
	if a.BannerRotator != nil {
		go func() {
			if err := a.BannerRotator.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}
	stop()

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера.
	if a.EventConsumer != nil {
		if err := a.EventConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
