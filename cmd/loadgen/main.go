package main

import (
	"atelier/internal/generator"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// LoadGenerator отправляет в сервис поток случайных заявок и заказов.
type LoadGenerator struct {
	client     *http.Client
	baseURL    string
	artworkIDs []string
}

func NewLoadGenerator(baseURL string, artworkIDs []string) *LoadGenerator {
	return &LoadGenerator{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		artworkIDs: artworkIDs,
	}
}

// Run запускает цикл отправки до отмены контекста.
func (g *LoadGenerator) Run(ctx context.Context, interval time.Duration) {
	log.Println("Генератор нагрузки запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Генератор нагрузки останавливается.")
			return
		case <-ticker.C:
			// Без каталога отправляем только заявки; иначе примерно треть запросов - заказы.
			if len(g.artworkIDs) == 0 || gofakeit.Number(0, 2) > 0 {
				g.post(ctx, "/api/commissions", generator.NewCommissionRequest())
			} else {
				g.post(ctx, "/api/checkout", generator.NewCheckoutRequest(g.artworkIDs))
			}
		}
	}
}

func (g *LoadGenerator) post(ctx context.Context, path string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации запроса: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		log.Printf("Ошибка создания запроса: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("Ошибка отправки %s: %v", path, err)
		return
	}
	defer resp.Body.Close()

	answer, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	fmt.Printf("%s -> %d %s\n", path, resp.StatusCode, bytes.TrimSpace(answer))
}

func main() {
	var (
		baseURL  string
		artworks []string
		interval time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "loadgen",
		Short: "Генератор тестовой нагрузки: заявки на портреты и заказы из магазина",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			NewLoadGenerator(baseURL, artworks).Run(ctx, interval)
			return nil
		},
	}
	rootCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8081", "Адрес сервиса")
	rootCmd.Flags().StringSliceVarP(&artworks, "artworks", "a", nil, "Идентификаторы работ для заказов")
	rootCmd.Flags().DurationVarP(&interval, "interval", "i", 2*time.Second, "Интервал между запросами")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
