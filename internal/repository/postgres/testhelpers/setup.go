package testhelpers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/repository/postgres"
)

// TestDB - подключение к тестовой базе
type TestDB struct {
	DB     *postgres.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the TEST_DB_* database and skips the test when it is unreachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "cityinfo_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	var db *sqlx.DB
	var err error
	retryDelay := 200 * time.Millisecond
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	logger := zap.NewNop()
	if testing.Verbose() {
		if l, lerr := zap.NewDevelopment(); lerr == nil {
			logger = l
		}
	}

	return &TestDB{
		DB:     postgres.NewDBForTest(db, logger),
		Logger: logger,
	}
}

// Reset rebuilds the schema and seed data from the embedded migrations.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()
	if err := postgres.Migrate(tdb.DB.DB.DB, postgres.MigrateReset, tdb.Logger); err != nil {
		t.Fatalf("reset migrations: %v", err)
	}
	if err := postgres.Migrate(tdb.DB.DB.DB, postgres.MigrateUp, tdb.Logger); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
}

// InsertCity adds an extra city without points of interest and returns its id.
func (tdb *TestDB) InsertCity(t *testing.T, name string, description *string) int64 {
	t.Helper()
	var id int64
	err := tdb.DB.QueryRowx(
		"INSERT INTO cities (name, description) VALUES ($1, $2) RETURNING id", name, description,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert city %q: %v", name, err)
	}
	return id
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.DB.Close()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
