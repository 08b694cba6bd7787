package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avdeyev/authgate/internal/server/config"
	"github.com/avdeyev/authgate/internal/server/db"
	"github.com/avdeyev/authgate/internal/server/handler"
	"github.com/avdeyev/authgate/internal/server/logging"
	"github.com/avdeyev/authgate/internal/server/repository/pg"
	"github.com/avdeyev/authgate/internal/server/session"
	"github.com/avdeyev/authgate/internal/server/service/auth"
	"github.com/avdeyev/authgate/internal/server/service/report"
	"github.com/avdeyev/authgate/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func run(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	printBuildInfo()

	cfg, err := config.GetConfig(args[1:])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	zl, err := logging.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		//nolint:errcheck // there isn't any good strategy to log error
		_ = zl.Sync()
	}()

	conn, err := db.InitGORMDB(cfg)
	if err != nil {
		return fmt.Errorf("init db error: %w", err)
	}
	defer func(conn *gorm.DB) {
		sqlDB, cErr := conn.DB()
		if cErr != nil {
			zl.Error("error getting underlying DB", zap.Error(cErr))
			return
		}

		cErr = sqlDB.Close()
		if cErr != nil {
			zl.Error("close db Error", zap.Error(cErr))
		}
	}(conn)

	store, err := pg.NewStore(conn)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	userRepo := pg.NewPgUser(conn)
	loginRepo := pg.NewPgLogin(conn)

	if err = userRepo.EnsureSeedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	sessionStore, closeSessions, err := newSessionStore(ctx, cfg, zl)
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}
	defer closeSessions()

	userProvider := auth.NewAuthUser(userRepo)
	sessionProvider := auth.NewAuthSession(sessionStore, cfg.Handlers)
	a := auth.NewAuth(userProvider, sessionProvider, loginRepo, zl)
	rep := report.NewReport(loginRepo, userRepo)

	router := handler.NewRouter(zl, cfg.Handlers, a, rep, store)

	handler.Serve(ctx, zl, cfg.Handlers, router)
	return nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (session.Store, func(), error) {
	if cfg.SessionBackend == config.SessionBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		zl.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				zl.Error("close redis client", zap.Error(err))
			}
		}, nil
	}

	zl.Info("using in-memory session store")
	st := session.NewMemoryStore()
	return st, st.Close, nil
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args); err != nil {
		log.Fatalf("failed to run application: %v", err)
	}
}

// printBuildInfo выводит информацию о сборке
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", utils.FormatValue(buildVersion))
	fmt.Printf("Build date: %s\n", utils.FormatValue(buildDate))
	fmt.Printf("Build commit: %s\n", utils.FormatValue(buildCommit))
}
