package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"courtside/internal/application/inquiry/services"
	"courtside/internal/application/inquiry/usecases"
	"courtside/internal/infrastructure/auth"
	"courtside/internal/infrastructure/config"
	"courtside/internal/infrastructure/pubsub"
	"courtside/internal/infrastructure/repository"
	inquiryhandlers "courtside/internal/interfaces/http/handlers/inquiry"
	"courtside/internal/interfaces/http/middleware"
	"courtside/internal/interfaces/http/routes"
	"courtside/internal/shared/db"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers into a gin engine.
// It also owns the fan-out dispatcher so the server command can start and
// stop live delivery together with the HTTP surface.
type Router struct {
	engine         *gin.Engine
	dispatcher     *services.Dispatcher
	inquiryHandler *inquiryhandlers.InquiryHandler
	authMiddleware *middleware.AuthMiddleware
	db             *gorm.DB
	redis          *redis.Client
	cfg            *config.Config
	log            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	inquiryRepo := repository.NewInquiryRepository(gormDB)
	assignmentRepo := repository.NewInquiryAssignmentRepository(gormDB)
	messageRepo := repository.NewInquiryMessageRepository(gormDB)
	categoryRepo := repository.NewInquiryCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	sanitizer := markdown.NewMarkdownService()
	snapshots := services.NewSnapshotBuilder(inquiryRepo, assignmentRepo, messageRepo, categoryRepo, userRepo, sanitizer)

	publisher := pubsub.NewRedisLivePublisher(redisClient, cfg.Fanout.ChannelPrefix, log)
	dispatcher := services.NewDispatcher(
		inquiryRepo, assignmentRepo, messageRepo, categoryRepo, userRepo, sanitizer,
		publisher, log,
		services.DispatcherOptions{
			QueueSize:      cfg.Fanout.QueueSize,
			PublishTimeout: time.Duration(cfg.Fanout.PublishTimeoutS) * time.Second,
		},
	)

	openInquiryUC := usecases.NewOpenInquiryUseCase(inquiryRepo, messageRepo, categoryRepo, txManager, dispatcher, sanitizer, log)
	appendOwnerMsgUC := usecases.NewAppendOwnerMessageUseCase(inquiryRepo, messageRepo, txManager, dispatcher, sanitizer, log)
	appendModeratorUC := usecases.NewAppendModeratorMessageUseCase(inquiryRepo, assignmentRepo, messageRepo, txManager, dispatcher, sanitizer, log)
	assignModeratorUC := usecases.NewAssignModeratorUseCase(inquiryRepo, assignmentRepo, userRepo, txManager, dispatcher, log)
	unassignModeratorUC := usecases.NewUnassignModeratorUseCase(inquiryRepo, assignmentRepo, txManager, dispatcher, log)
	updateInquiryUC := usecases.NewUpdateInquiryUseCase(inquiryRepo, assignmentRepo, categoryRepo, txManager, dispatcher, log)
	getTimelineUC := usecases.NewGetTimelineUseCase(inquiryRepo, messageRepo, userRepo, log)
	getUnreadCountsUC := usecases.NewGetUnreadCountsUseCase(inquiryRepo, assignmentRepo, messageRepo, log)
	markReadUC := usecases.NewMarkReadUseCase(inquiryRepo, assignmentRepo, log)
	getInquiryUC := usecases.NewGetInquiryUseCase(inquiryRepo, assignmentRepo, snapshots, log)
	listInquiriesUC := usecases.NewListInquiriesUseCase(inquiryRepo, snapshots, log)

	inquiryHandler := inquiryhandlers.NewInquiryHandler(
		openInquiryUC,
		appendOwnerMsgUC,
		appendModeratorUC,
		assignModeratorUC,
		unassignModeratorUC,
		updateInquiryUC,
		getTimelineUC,
		getUnreadCountsUC,
		markReadUC,
		getInquiryUC,
		listInquiriesUC,
		log,
	)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:         engine,
		dispatcher:     dispatcher,
		inquiryHandler: inquiryHandler,
		authMiddleware: authMiddleware,
		db:             gormDB,
		redis:          redisClient,
		cfg:            cfg,
		log:            log,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthCheck)

	routes.SetupInquiryRoutes(r.engine, &routes.InquiryRouteConfig{
		InquiryHandler: r.inquiryHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Start launches the fan-out dispatcher. Call before serving traffic.
func (r *Router) Start() error {
	return r.dispatcher.Start()
}

// Stop drains the fan-out dispatcher. Call after the HTTP server is down
// so in-flight mutations still reach their live channels.
func (r *Router) Stop() error {
	return r.dispatcher.Stop()
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if sqlDB, err := r.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if err := r.redis.Ping(c.Request.Context()).Err(); err != nil {
		checks["redis"] = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
