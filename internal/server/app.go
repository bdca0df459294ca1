package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/dmitrijs2005/certkeeper/internal/server/artifacts"
	"github.com/dmitrijs2005/certkeeper/internal/server/config"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/certkeeper/internal/server/sequence"
	"github.com/dmitrijs2005/certkeeper/internal/server/services"
	"github.com/dmitrijs2005/certkeeper/internal/server/verifycode"

	gs "github.com/dmitrijs2005/certkeeper/internal/server/grpc"
)

// Seams for tests.
var (
	openPostgres = repomanager.OpenPostgres
	newS3Store   = func(ctx context.Context, c artifacts.S3Config) (artifacts.Store, error) {
		return artifacts.NewS3Store(ctx, c)
	}
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	server   *gs.GRPCServer
	services *Services
}

// Services groups the business services the transport exposes.
type Services struct {
	Certificates *services.CertificateService
	Verification *services.VerificationService
	Reports      *services.ReportService
}

// NewApp opens the store selected by the config (PostgreSQL when a DSN is
// set, memory otherwise), runs migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		tx dbx.Transactor
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN != "" {
		var err error
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		pg := repomanager.NewPostgresRepositoryManager()
		if err := pg.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		tx, rm = dbx.NewSQLTransactor(db, nil), pg
	} else {
		logger.Warn(ctx, "no database DSN configured, using in-memory store")
		tx, rm = dbx.NopTransactor{}, memory.NewRepositoryManager(memory.NewStore())
	}

	store, err := newArtifactStore(ctx, c)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	allocator := sequence.NewAllocator(rm.Sequences(tx.Conn()), c.SequencePrefix, c.AllocationRetries)

	svc := &Services{
		Certificates: services.NewCertificateService(tx, rm, allocator, verifycode.NewGenerator(), store, logger),
		Verification: services.NewVerificationService(tx, rm, logger),
		Reports:      services.NewReportService(tx, rm),
	}

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc.Certificates, svc.Verification, svc.Reports, c.SecretKey)

	return &App{config: c, logger: logger, db: db, server: srv, services: svc}, nil
}

func newArtifactStore(ctx context.Context, c *config.Config) (artifacts.Store, error) {
	switch c.ArtifactBackend {
	case config.ArtifactBackendFS:
		return artifacts.NewFileStore(c.ArtifactRoot), nil
	case config.ArtifactBackendS3:
		s, err := newS3Store(ctx, artifacts.S3Config{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("artifact store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown artifact backend %q", c.ArtifactBackend)
	}
}

// Services exposes the wired services.
func (app *App) Services() *Services {
	return app.services
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a signal arrives, then releases the
// database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(ctx, cancelFunc)

	err := app.server.Run(ctx)

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
