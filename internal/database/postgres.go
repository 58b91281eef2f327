package database

import (
	"atelier/internal/apperr"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/storage_mock.go -package=mocks Storage Tx

// Storage определяет интерфейс для работы с хранилищем заявок и заказов.
// Все изменения состояния выполняются внутри InTx.
type Storage interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	CreateCommission(ctx context.Context, c *model.Commission) error
	GetCommission(ctx context.Context, ref string) (*model.Commission, error)
	GetOrder(ctx context.Context, ref string) (*model.StoreOrder, error)
	GetPricingConfig(ctx context.Context) (map[string]string, error)
	ListPendingVerifications(ctx context.Context) ([]model.PendingVerification, error)
	ActiveCommissions(ctx context.Context, limit int) ([]model.Commission, error)
	ActiveOrders(ctx context.Context, limit int) ([]model.StoreOrder, error)
	Close() error
}

// Tx - операции внутри одной транзакции. Методы Lock* берут
// эксклюзивную блокировку строки (SELECT ... FOR UPDATE) до конца транзакции.
type Tx interface {
	LockArtwork(ctx context.Context, id string) (*model.Artwork, error)
	AdjustStock(ctx context.Context, artworkID string, delta int) error
	GetCoupon(ctx context.Context, code string) (*model.Coupon, error)
	InsertOrder(ctx context.Context, o *model.StoreOrder) error
	LockCommission(ctx context.Context, ref string) (*model.Commission, error)
	UpdateCommission(ctx context.Context, c *model.Commission) error
	LockOrder(ctx context.Context, ref string) (*model.StoreOrder, error)
	UpdateOrder(ctx context.Context, o *model.StoreOrder) error
}

// postgresStorage обеспечивает взаимодействие с базой данных PostgreSQL.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	if err := runMigrations(dbURL, migrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"),
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// InTx выполняет fn в одной транзакции. Ошибка fn или паника откатывают все изменения.
func (s *postgresStorage) InTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.InTx")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		metrics.DBErrors.WithLabelValues("begin").Inc()
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	if err = fn(&postgresTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		metrics.DBErrors.WithLabelValues("commit").Inc()
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

const insertCommissionQuery = `INSERT INTO commissions (` + commissionColumns + `) VALUES (` +
	`:id, :tracking_code, :customer_name, :customer_email, :customer_phone, :size, :medium, :difficulty, :deadline, ` +
	`:reference_image, :notes, :calculated_price, :final_total, :advance_amount, :remaining_amount, ` +
	`:requires_delivery, :shipping_address, :shipping_city, :shipping_state, :shipping_pincode, :shipping_country, ` +
	`:shipping_landmark, :shipping_phone, :status, :payment_status, :advance_payment_status, :advance_proof, ` +
	`:advance_rejection, :final_payment_status, :final_proof, :final_rejection, :cancel_reason, :created_at, :updated_at)`

// CreateCommission сохраняет новую заявку.
func (s *postgresStorage) CreateCommission(ctx context.Context, c *model.Commission) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateCommission")
	defer span.End()

	if _, err := s.db.NamedExecContext(ctx, insertCommissionQuery, c); err != nil {
		metrics.DBErrors.WithLabelValues("create_commission").Inc()
		return fmt.Errorf("ошибка сохранения заявки: %w", err)
	}
	return nil
}

// GetCommission ищет заявку по трек-номеру или внутреннему id.
func (s *postgresStorage) GetCommission(ctx context.Context, ref string) (*model.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetCommission")
	defer span.End()

	return getCommission(ctx, s.db, selectCommissionQuery, ref)
}

// GetOrder ищет заказ по трек-номеру или внутреннему id вместе с позициями.
func (s *postgresStorage) GetOrder(ctx context.Context, ref string) (*model.StoreOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrder")
	defer span.End()

	return getOrder(ctx, s.db, selectOrderQuery, ref)
}

// GetPricingConfig читает таблицу настроек без блокировок.
func (s *postgresStorage) GetPricingConfig(ctx context.Context) (map[string]string, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetPricingConfig")
	defer span.End()

	var rows []struct {
		Key   string `db:"setting_key"`
		Value string `db:"setting_value"`
	}
	if err := s.db.SelectContext(ctx, &rows, `SELECT setting_key, setting_value FROM settings`); err != nil {
		metrics.DBErrors.WithLabelValues("get_settings").Inc()
		return nil, fmt.Errorf("не удалось получить настройки: %w", err)
	}

	cfg := make(map[string]string, len(rows))
	for _, row := range rows {
		cfg[row.Key] = row.Value
	}
	return cfg, nil
}

const pendingVerificationsQuery = `
        SELECT tracking_code, 'commission' AS entity_type, 'advance' AS stage, advance_proof AS proof_ref,
               COALESCE(advance_amount, 0) AS amount, updated_at
        FROM commissions WHERE advance_payment_status = 'under_verification'
        UNION ALL
        SELECT tracking_code, 'commission', 'final', final_proof, COALESCE(remaining_amount, 0), updated_at
        FROM commissions WHERE final_payment_status = 'under_verification'
        UNION ALL
        SELECT tracking_code, 'order', 'advance', advance_proof, advance_amount, updated_at
        FROM orders WHERE advance_payment_status = 'under_verification'
        UNION ALL
        SELECT tracking_code, 'order', 'final', final_proof, remaining_amount, updated_at
        FROM orders WHERE final_payment_status = 'under_verification'
        ORDER BY updated_at`

// ListPendingVerifications возвращает все этапы, ожидающие решения администратора.
func (s *postgresStorage) ListPendingVerifications(ctx context.Context) ([]model.PendingVerification, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListPendingVerifications")
	defer span.End()

	var pending []model.PendingVerification
	if err := s.db.SelectContext(ctx, &pending, pendingVerificationsQuery); err != nil {
		metrics.DBErrors.WithLabelValues("list_verifications").Inc()
		return nil, fmt.Errorf("не удалось получить очередь проверки: %w", err)
	}
	return pending, nil
}

// ActiveCommissions возвращает незакрытые заявки для прогрева кэша.
func (s *postgresStorage) ActiveCommissions(ctx context.Context, limit int) ([]model.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ActiveCommissions")
	defer span.End()

	query := `SELECT ` + commissionColumns + ` FROM commissions
        WHERE status NOT IN ('closed', 'cancelled') ORDER BY updated_at DESC LIMIT $1`

	var commissions []model.Commission
	if err := s.db.SelectContext(ctx, &commissions, query, limit); err != nil {
		metrics.DBErrors.WithLabelValues("active_commissions").Inc()
		return nil, fmt.Errorf("ошибка получения активных заявок: %w", err)
	}
	return commissions, nil
}

// ActiveOrders возвращает незавершенные заказы (без позиций) для прогрева кэша.
func (s *postgresStorage) ActiveOrders(ctx context.Context, limit int) ([]model.StoreOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ActiveOrders")
	defer span.End()

	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE payment_phase NOT IN ('completed', 'cancelled') ORDER BY updated_at DESC LIMIT $1`

	var orders []model.StoreOrder
	if err := s.db.SelectContext(ctx, &orders, query, limit); err != nil {
		metrics.DBErrors.WithLabelValues("active_orders").Inc()
		return nil, fmt.Errorf("ошибка получения активных заказов: %w", err)
	}
	return orders, nil
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}

// notFound переводит sql.ErrNoRows в доменную ошибку.
func notFound(err error, what, ref string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, ref, apperr.ErrNotFound)
	}
	return fmt.Errorf("не удалось получить %s %s: %w", what, ref, err)
}
