//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"sarmiento-f5/cmd/bootstrap"
	"sarmiento-f5/cmd/bootstrap/components"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/infra/repository"
	"sarmiento-f5/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	redisStartErr      error

	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container
	postgresStartErr      error

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, kvstore.Store, config.Config) {
	gin.SetMode(gin.TestMode)
	redisInfo := StartRedis(t)

	// every suite gets its own key prefix so suites can share the container
	prefix := "e2e:" + uuid.NewString() + ":"
	router, store, cfg, app := buildE2EApp(redisInfo, prefix)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready", "redis", redisInfo.Addr(), "prefix", prefix)
	return router, store, cfg
}

// ------------------------------------------------------------
// Application wiring for e2e tests
// Returns router, store, config and the fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(redisInfo ContainerInfo, prefix string) (*gin.Engine, kvstore.Store, config.Config, *fx.App) {
	var (
		router *gin.Engine
		store  kvstore.Store
		cfg    config.Config
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(redisInfo, prefix)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &store, &cfg),

		// start without fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app did not provide a router")
	}

	return router, store, cfg, app
}

func createTestConfig(redisInfo ContainerInfo, prefix string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Store.Driver = config.StoreDriverRedis
	testConfig.Store.RedisAddr = redisInfo.Addr()
	testConfig.Store.KeyPrefix = prefix
	return testConfig
}

// ------------------------------------------------------------
// Shared container start helper
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Redis container, started once per test process
// ------------------------------------------------------------
func StartRedis(t *testing.T) ContainerInfo {
	t.Helper()
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}
		redisTestContainer, redisStartErr = startGenericContainer(req, 120)
	})
	require.NoError(t, redisStartErr, "failed to start redis container")

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

// ------------------------------------------------------------
// PostgreSQL container, started once per test process
// ------------------------------------------------------------
func StartPostgres(t *testing.T) (ContainerInfo, config.DBConfig) {
	t.Helper()
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "canchas",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m", // keep data in RAM to cut I/O
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off", // durability is irrelevant for tests
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/canchas?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}
		postgresTestContainer, postgresStartErr = startGenericContainer(req, 180)
	})
	require.NoError(t, postgresStartErr, "failed to start postgres container")

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	return info, config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   "canchas",
		SSLMode:  "disable",
		TimeZone: "America/Argentina/Buenos_Aires",
	}
}

// ------------------------------------------------------------
// Container utilities
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Common setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  kvstore.Store
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, store, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Store = store
	s.Config = cfg
	require.NotNil(t, s.Store, "store setup failed")
	require.NotEmpty(t, s.Config, "config was not provided")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	// No additional setup needed for tests
}

// SetupSubTest clears every persisted key. The listing board lives in
// process memory and is not reset.
func (s *SharedSuite) SetupSubTest() {
	ctx := context.Background()
	for _, key := range []string{repository.KeyPendingReservation, repository.KeyReservationHistory, repository.KeyWaitlist} {
		require.NoError(s.T(), s.Store.Delete(ctx, key), "failed to reset store")
	}
}
