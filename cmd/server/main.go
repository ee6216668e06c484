package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rentdesk/internal/database"
	"rentdesk/internal/documents"
	"rentdesk/internal/hub"
	"rentdesk/internal/i18n"
	"rentdesk/internal/notice"
	"rentdesk/internal/preferences"
	"rentdesk/internal/reports"
	"rentdesk/internal/router"
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
	"rentdesk/pkg/config"
	"rentdesk/pkg/jwt"
	"rentdesk/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting RentDesk...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化数据库（仅 sqlite / postgres 后端）
	if err := database.Initialize(cfg); err != nil {
		appLogger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		// 关闭数据库连接
		if err := database.Close(); err != nil {
			appLogger.Error("Failed to close database:", err)
		}
		// 关闭Redis连接
		if err := database.CloseRedisStore(); err != nil {
			appLogger.Error("Failed to close Redis:", err)
		}
	}()

	if err := database.Migrate(database.GetDB()); err != nil {
		appLogger.Fatalf("Failed to migrate database: %v", err)
	}

	catalog := i18n.Default()
	if err := catalog.Verify(); err != nil {
		appLogger.Fatalf("Invalid translation catalog: %v", err)
	}

	prefStorage, err := database.OpenPreferenceStorage(ctx, cfg)
	if err != nil {
		appLogger.Fatalf("Failed to open preference storage: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	// 领域数据与变更广播
	events := hub.New(appLogger)
	domain := store.New(seedState())
	unsubscribe := domain.Subscribe(events.OnStoreChange)
	defer unsubscribe()

	prefs := preferences.NewStore(prefStorage,
		preferences.WithCatalog(catalog),
		preferences.WithTheme(events),
		preferences.WithProfilePersistence(cfg.Preferences.PersistProfile),
		preferences.WithLogger(appLogger),
	)
	prefs.Load(ctx)

	notices := notice.NewBoard(ctx, cfg.Domain.NoticeDismiss, services.NoticeDismissed(events))
	defer notices.Close()

	// 身份证明文件
	docStorage, closeDocs, err := openDocumentStorage(ctx, cfg.Document)
	if err != nil {
		appLogger.Fatalf("Failed to open document storage: %v", err)
	}
	defer closeDocs()
	docs := documents.NewService(docStorage, cfg.Document.MaxSizeBytes, appLogger)

	// 报表快照
	var snapshots reports.Repository = reports.NewMemoryRepository()
	if db := database.GetDB(); db != nil {
		snapshots = reports.NewGormRepository(db)
	}
	recorder := reports.NewRecorder(domain, snapshots)
	if err := seedSnapshot(ctx, recorder); err != nil {
		appLogger.Errorf("Failed to seed report snapshot: %v", err)
	}
	snapshotScheduler := reports.NewScheduler(recorder, appLogger)
	if err := snapshotScheduler.Start(cfg.Report.SnapshotCron); err != nil {
		appLogger.Errorf("Failed to start snapshot scheduler: %v", err)
		// 不影响主服务启动
	}
	defer snapshotScheduler.Stop()

	viewOpts := views.Options{NameMode: cfg.Domain.NameMode, CurrentMonth: cfg.Domain.CurrentMonth}
	jwtManager := jwt.GetJWTManager()
	tenantService := services.NewTenantService(domain, docs, viewOpts)

	r := router.SetupRouter(router.Dependencies{
		Store:      domain,
		Sessions:   services.NewSessionService(domain, jwtManager),
		Tenants:    tenantService,
		Rooms:      services.NewRoomService(domain, viewOpts),
		Payments:   services.NewPaymentService(domain, viewOpts),
		Bills:      services.NewBillService(domain, viewOpts),
		Reports:    services.NewReportService(domain, recorder, viewOpts),
		Settings:   services.NewSettingsService(prefs, notices, events),
		Documents:  docs,
		Hub:        events,
		JWTManager: jwtManager,
		CORS:       cfg.CORS,
	})

	// 启动服务器
	server := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
	}

	// 启动服务
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Server started on port %s", cfg.Server.Port)

	// 优雅关闭
	<-ctx.Done()

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Server exited")
}

// openDocumentStorage 按配置选择本地目录或GCS存储桶
func openDocumentStorage(ctx context.Context, cfg config.DocumentConfig) (documents.Storage, func(), error) {
	if cfg.Backend == "gcs" {
		gcs, err := documents.NewGCSStorage(ctx, cfg.Bucket, cfg.CredentialsJSON)
		if err != nil {
			return nil, nil, err
		}
		return gcs, func() {
			if err := gcs.Close(); err != nil {
				logger.GetLogger().Errorf("Failed to close GCS client: %v", err)
			}
		}, nil
	}

	local, err := documents.NewLocalStorage(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}
	return local, func() {}, nil
}
