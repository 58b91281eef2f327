package main

import (
	"atelier/internal/admin"
	"atelier/internal/api"
	"atelier/internal/cache"
	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/identity"
	"atelier/internal/kafka"
	"atelier/internal/mailer"
	"atelier/internal/media"
	"atelier/internal/metrics"
	"atelier/internal/notify"
	"atelier/internal/ratelimit"
	"atelier/internal/service"
	"atelier/internal/tracing"
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Get()
	metrics.Init()

	shutdownTracer := tracing.Init(cfg.Tracing)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Ошибка остановки трассировки: %v", err)
		}
	}()

	// Инициализация хранилища и миграции
	storage, err := database.New(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Кэш страниц отслеживания
	snapshots := cache.NewLRUCache(cfg.Cache.Size)
	if err := cache.WarmUp(ctx, storage, snapshots, cfg.Cache.Size); err != nil {
		log.Printf("Ошибка при прогреве кэша: %v", err)
	}

	notifier := notify.NewKafkaNotifier(cfg.Kafka)
	defer notifier.Close()

	proofs, err := media.NewLocalStore(cfg.Media.Dir, cfg.Media.PublicPrefix, cfg.Media.MaxUploadMB<<20)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища файлов: %v", err)
	}

	var limiter ratelimit.Limiter
	redisClient, err := ratelimit.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		log.Printf("Ограничение частоты выключено: %v", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.Admin.RateLimitPerMin, time.Minute)
	}

	svc := service.New(storage, notifier, proofs, snapshots)

	server := api.NewServer(cfg.HTTP.Port, api.Deps{
		Store:          svc,
		Admin:          admin.NewDispatcher(svc),
		Identity:       identity.NewStaticTokenProvider(cfg.Admin.Token),
		Limiter:        limiter,
		MediaDir:       cfg.Media.Dir,
		MediaPrefix:    cfg.Media.PublicPrefix,
		MaxUploadBytes: cfg.Media.MaxUploadMB << 20,
	})

	worker := kafka.NewWorker(cfg.Kafka, mailer.New(cfg.Mail), cfg.Mail.AdminEmail)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})
	g.Go(server.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Сервис останавливается...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Сервис завершился с ошибкой: %v", err)
	}
	log.Println("Сервис успешно остановлен.")
}
