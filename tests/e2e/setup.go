//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"gin-storefront/cmd/bootstrap"
	"gin-storefront/cmd/bootstrap/components"
	"gin-storefront/internal/infra/db"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "storefront"
	pgPassword = "storefront"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

// ------------------------------------------------------------
// PostgreSQLコンテナはプロセス内で一度だけ起動する
// ------------------------------------------------------------
func postgresAddr(t *testing.T) (string, nat.Port) {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// 読み取り中心のテストなので耐久性は不要
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "storefront-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgStartErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "コンテナのホスト取得に失敗")
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "コンテナのポート取得に失敗")
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// ------------------------------------------------------------
// テストごとに専用データベースを作成し、スキーマとコンテンツを投入する
// ------------------------------------------------------------
func prepareDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	host, port := postgresAddr(t)

	dbName := "storefront_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "America/Sao_Paulo",
	}
	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")

	t.Cleanup(func() {
		closePool()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, adminDSN(host, port))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	schema, err := os.ReadFile(migrationPath("001_initial_schema.sql"))
	require.NoError(t, err, "マイグレーションファイルの読み込みに失敗")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "マイグレーションの実行に失敗")

	require.NoError(t, dbtest.SeedContent(pool), "コンテンツデータの投入に失敗")
	return pool, dbConfig
}

// migrationPath resolves a file under migrations/ from this source file, independent of the test's working dir.
func migrationPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations", name)
}

// ------------------------------------------------------------
// 本番と同じfxモジュールでアプリを組み立てる（DBとConfigのみ差し替え）
// ------------------------------------------------------------
func buildApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// ページのローダーは実HTTPでコンテンツAPIを呼ぶため、ルーターをテストサーバーで公開する
	var router *gin.Engine
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(apiServer.Close)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.API.BaseURL = apiServer.URL
	cfg.Content.Source = config.ContentSourcePostgres

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.APIClientModule,
		bootstrap.I18nModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, cfg
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	pool, dbConfig := prepareDatabase(s.T())
	s.DB = pool
	s.Router, s.Config = buildApp(s.T(), pool, dbConfig)
}

// SetupSubTest restores the seeded content before each s.Run.
func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "Failed to reset database state")
}
