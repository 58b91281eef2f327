package media

import (
	"atelier/internal/apperr"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=store.go -destination=./mocks/store_mock.go -package=mocks Store

// Store принимает изображения (подтверждения оплаты, референсы) и возвращает
// ссылку, которую можно сохранить в заявке или заказе.
type Store interface {
	Save(ctx context.Context, folder string, r io.Reader) (string, error)
}

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// LocalStore складывает файлы на локальный диск под dir.
type LocalStore struct {
	dir          string
	publicPrefix string
	maxBytes     int64
	tracer       trace.Tracer
}

func NewLocalStore(dir, publicPrefix string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, publicPrefix: publicPrefix, maxBytes: maxBytes, tracer: otel.Tracer("media-store")}, nil
}

// Save определяет тип по содержимому файла, а не по имени или заголовкам клиента.
func (s *LocalStore) Save(ctx context.Context, folder string, r io.Reader) (string, error) {
	_, span := s.tracer.Start(ctx, "Media.Save")
	defer span.End()

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("пустой файл: %w", apperr.ErrInvalidRequest)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("файл больше %d байт: %w", s.maxBytes, apperr.ErrInvalidRequest)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return "", fmt.Errorf("тип %s: %w", mtype.String(), apperr.ErrUnsupportedMedia)
	}

	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("не удалось создать каталог %s: %w", dir, err)
	}

	name := uuid.NewString() + mtype.Extension()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("не удалось сохранить файл: %w", err)
	}

	ref := path.Join(s.publicPrefix, folder, name)
	log.Printf("Сохранен файл %s (%s, %d байт)", ref, mtype.String(), len(data))
	return ref, nil
}
