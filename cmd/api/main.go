package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"solidusers/cmd/internal/config"
	"solidusers/cmd/internal/domain/memory"
	"solidusers/cmd/internal/domain/policy"
	"solidusers/cmd/internal/domain/sqlite"
	"solidusers/cmd/internal/domain/sqlite/repository"
	"solidusers/cmd/internal/http/handler"
	"solidusers/cmd/internal/http/server"
	"solidusers/cmd/internal/infrastructure/aws/storage"
	"solidusers/cmd/internal/service"
	"solidusers/cmd/internal/service/jobs"
	"solidusers/cmd/internal/utils/validators"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loads env vars depending on environment
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	validate := validators.New()

	userRepo, err := newUserRepository(cfg)
	if err != nil {
		log.Fatalf("failed to init %s user store: %v", cfg.StoreDriver, err)
	}

	userPolicy := policy.NewUserPolicy()

	// Getting use cases
	createUser := service.NewCreateUserService(userRepo, validate, userPolicy)
	listAllUsers := service.NewListAllUsersService(userRepo)
	showUserProfile := service.NewShowUserProfileService(userRepo)
	turnUserAdmin := service.NewTurnUserAdminService(userRepo, userPolicy)

	userRoutes := handler.NewUserDefault(createUser, listAllUsers, showUserProfile, turnUserAdmin)

	e, err := server.NewServer(&server.ServerConfig{
		BodyLimit: cfg.BodyLimit,
		MachineID: cfg.MachineID,
	}, userRoutes)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	if cfg.SnapshotBucket != "" {
		s3Client, err := storage.NewStorageClient(ctx, cfg.AWSRegion, cfg.SnapshotBucket)
		if err != nil {
			log.Fatalf("failed to init S3 client: %v", err)
		}
		go jobs.NewSnapshotPublisher(listAllUsers, s3Client, cfg.SnapshotInterval).Start(ctx)
	}

	go func() {
		log.Infof("listening on %s (store: %s)", cfg.Address(), cfg.StoreDriver)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shutdown server: %v", err)
	}
}

func newUserRepository(cfg *config.Config) (service.UserRepository, error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return memory.NewUserRepository(), nil
	}

	db, err := sqlite.Init(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return repository.NewUserRepository(db), nil
}
