//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"nagoyameshi/cmd/bootstrap"
	"nagoyameshi/cmd/bootstrap/components"
	"nagoyameshi/internal/infra/db"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/tests/common/dbtest"

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
	pgUser     = "test"
	pgPassword = "testpass"
)

// service は1プロセスで1度だけ起動し、全スイートで共有するコンテナ
type service struct {
	once sync.Once
	port nat.Port
	req  testcontainers.ContainerRequest

	host   string
	mapped nat.Port
	err    error
}

func (s *service) start(t *testing.T) (string, nat.Port) {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.req,
			Started:          true,
		})
		if s.err != nil {
			return
		}
		if s.host, s.err = c.Host(ctx); s.err != nil {
			return
		}
		s.mapped, s.err = c.MappedPort(ctx, s.port)
	})
	require.NoError(t, s.err, "%s コンテナの起動に失敗", s.req.Image)
	return s.host, s.mapped
}

var (
	postgres = &service{
		port: "5432/tcp",
		req: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			// 耐久性は不要なのでRAM上で動かす
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off", "-c", "max_connections=200"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port)
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "nagoyameshi-e2e"},
		},
	}
	redis = &service{
		port: "6379/tcp",
		req: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "nagoyameshi-e2e"},
		},
	}
)

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// setupE2EEnvironment はスイート専用のDBとセッション名前空間を用意し、アプリ全体を起動する
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, http.Handler, config.Config) {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := prepareDatabase(t)

	redisHost, redisPort := redis.start(t)
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.URL = fmt.Sprintf("redis://%s:%s/0", redisHost, redisPort.Port())
	cfg.Redis.Prefix = "e2e:" + randomSuffix()[:8] + ":"

	handler := startApp(t, pool, cfg)
	return pool, handler, cfg
}

// prepareDatabase はスイート毎に新しいデータベースを作り、マイグレーションと参照データ投入まで行う
func prepareDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	host, port := postgres.start(t)
	name := "nagoyameshi_" + randomSuffix()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 起動直後は接続を受け付けても CREATE DATABASE が失敗することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行します", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dropper, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("テスト用データベースの削除に失敗", "database", name, "error", err)
			return
		}
		defer dropper.Close()
		if _, err := dropper.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗", "database", name, "error", err)
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 10,
	}
	pool, closePool, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	require.NoError(t, db.Migrate(pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")
	return pool, dbConfig
}

// startApp は本番と同じモジュール構成でアプリを組み立てる。DBと設定だけ差し替える
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) http.Handler {
	var handler http.Handler
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(bootstrap.NewLocation),
		bootstrap.LoggerModule,
		bootstrap.SessionModule,
		bootstrap.BillingModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.HTTPModule,
		fx.Populate(&handler),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗", "error", err)
		}
	})
	return handler
}

// SharedSuite はE2Eスイート共通の土台。サブテスト毎にDBを初期状態へ戻す
type SharedSuite struct {
	suite.Suite
	Handler http.Handler // セッションとクロスオリジン保護を含むアプリ全体
	DB      *pgxpool.Pool
	Config  config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.DB, s.Handler, s.Config = setupE2EEnvironment(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBの初期化に失敗")
}
