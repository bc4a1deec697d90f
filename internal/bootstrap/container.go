package bootstrap

import (
	"context"
	"log"

	"worldstate-be/internal/config"
	"worldstate-be/internal/controller"
	"worldstate-be/internal/handler"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
	"worldstate-be/internal/repository/implementation"
	"worldstate-be/internal/repository/memory"
	"worldstate-be/internal/service"
	"worldstate-be/internal/websocket"

	pktNats "worldstate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WidgetController    controller.IWidgetController
	MutationController  controller.IMutationController
	LifecycleController controller.ILifecycleController

	// Background Services (Exposed for main.go to run)
	SchedulerService service.ISchedulerService

	// WebSockets
	WidgetHandler *handler.WidgetHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the whole engine. db may be nil in dev mode; the audit
// ledger then stays in memory.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	var rdb *redis.Client
	if !cfg.App.DevMode {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub (widget render surface)
	wsLogger := logger.NewIsolatedLogger("logs/widgets.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Stores
	var variableStore contract.IVariableStore
	var chatRepository contract.IChatRepository
	var auditRepository contract.IAuditRepository
	if cfg.App.DevMode || rdb == nil {
		variableStore = memory.NewVariableStore()
		chatRepository = memory.NewChatRepository()
	} else {
		variableStore = implementation.NewRedisVariableStore(rdb)
		chatRepository = implementation.NewRedisChatRepository(rdb)
	}
	if db != nil {
		auditRepository = implementation.NewAuditRepository(db)
	} else {
		log.Printf("[WARN] No database configured, keeping audit ledger in memory")
		auditRepository = memory.NewAuditRepository()
	}
	snapshotRepository := memory.NewSnapshotRepository()

	// Services
	floorService := service.NewFloorService(chatRepository)
	snapshotService := service.NewSnapshotService(floorService, variableStore, sysLogger)
	diffService := service.NewDiffService()
	widgetService := service.NewWidgetService(snapshotService, diffService, snapshotRepository, wsHub, sysLogger)

	dispatchers := []contract.IMessageDispatcher{}
	if natsPub != nil {
		dispatchers = append(dispatchers, implementation.NewNATSDispatcher(natsPub))
	}
	dispatchers = append(dispatchers, implementation.NewWebsocketDispatcher(wsHub))
	dispatchService := service.NewDispatchService(sysLogger, dispatchers...)

	mutationService := service.NewMutationService(
		floorService,
		variableStore,
		auditRepository,
		dispatchService,
		widgetService,
		sysLogger,
	)

	publisherService := service.NewPublisherService(pubSub)
	schedulerService := service.NewSchedulerService(
		pubSub,
		widgetService,
		snapshotRepository,
		cfg.Refresh.SettleDelay,
		cfg.Refresh.Cooldown,
		cfg.Refresh.SubscribeMaxTries,
		sysLogger,
	)

	// Controllers
	widgetController := controller.NewWidgetController(widgetService)
	mutationController := controller.NewMutationController(mutationService, auditRepository)
	lifecycleController := controller.NewLifecycleController(publisherService)
	widgetHandler := handler.NewWidgetHandler(wsHub, wsLogger)

	return &Container{
		WidgetController:    widgetController,
		MutationController:  mutationController,
		LifecycleController: lifecycleController,
		SchedulerService:    schedulerService,
		WidgetHandler:       widgetHandler,
		WebSocketHub:        wsHub,
		Logger:              sysLogger,
	}
}
