package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"sitesnap"
	"sitesnap/config"
	"sitesnap/internal/application/usecase"
	"sitesnap/internal/infrastructure/archive"
	"sitesnap/internal/infrastructure/broker"
	"sitesnap/internal/infrastructure/database"
	"sitesnap/internal/infrastructure/exif"
	"sitesnap/internal/infrastructure/minio"
	"sitesnap/internal/presentation/handler"
	"sitesnap/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running sitesnap", "version", sitesnap.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	dbWriter := database.NewImageWriter(db)
	dbFinder := database.NewImageFinder(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	minIOReader := minio.NewReader(minIOClient.MinioClient, &cfg.MinIOReader)

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	uploader := usecase.NewUploader(exif.NewExtractor(), minIOUploader, dbWriter, publisher)
	archiver := usecase.NewArchiver(dbFinder, minIOReader, archive.NewZipper(cfg.Archive.Dir))

	uploadHandler := handler.NewUploadHandler(uploader)
	downloadHandler := handler.NewDownloadHandler(archiver)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/", handler.Index)
	e.POST("/upload", uploadHandler.Handle)
	e.GET("/download", downloadHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect from database", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
}
