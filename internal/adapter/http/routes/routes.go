package routes

import (
	"context"
	"log"
	"net/http"

	_ "agenda_tecnica/docs" // swag generated
	"agenda_tecnica/internal/adapter/http/handlers"
	"agenda_tecnica/internal/adapter/http/middleware"
	"agenda_tecnica/internal/adapter/http/views"
	"agenda_tecnica/internal/adapter/persistence/cache"
	"agenda_tecnica/internal/adapter/persistence/repository"
	"agenda_tecnica/internal/infrastructure/config"
	"agenda_tecnica/internal/infrastructure/database"
	"agenda_tecnica/internal/infrastructure/report"
	"agenda_tecnica/internal/infrastructure/storage"
	"agenda_tecnica/internal/usecase"
	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.SetHTMLTemplate(views.Templates())

	getRoutes(context.Background(), cfg)

	log.Printf("[agenda] listening addr=%s store=%s cache=%t sharing=%t", cfg.Addr(), cfg.StoreDriver, cfg.CacheEnabled(), cfg.SharingEnabled())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) {
	var awsCfg *aws.Config
	loadAWS := func() aws.Config {
		if awsCfg == nil {
			c, err := database.LoadAWSConfig(ctx, cfg)
			if err != nil {
				log.Fatalf("Failed to load AWS configuration: %v", err)
			}
			awsCfg = &c
		}
		return *awsCfg
	}

	var repo interfaces.IActividadRepository
	switch cfg.StoreDriver {
	case config.DriverMongoDB:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB (MONGO_URI): %v", err)
		}
		repo = repository.NewActividadMongoRepository(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
	default:
		ddb := database.ConnectDynamoDB(loadAWS(), cfg.DynamoEndpoint)
		repo = repository.NewActividadDynamoRepository(ddb, cfg.ActividadTable)
	}

	var listCache interfaces.IActividadListCache
	if cfg.CacheEnabled() {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("List cache disabled: %v", err)
		} else {
			listCache = cache.NewRedisListCache(rdb, cfg.ListCacheTTL)
		}
	}

	var reportStorage interfaces.IReportStorage
	if cfg.SharingEnabled() {
		reportStorage = storage.NewS3ReportStorageFromConfig(loadAWS(), cfg.ReportsBucket)
	} else {
		log.Printf("Report sharing not configured: REPORTS_BUCKET is empty")
	}

	actividadUseCase := usecase.NewActividadUseCase(repo, listCache, cfg.Location, cfg.Tecnicos)
	reportUseCase := usecase.NewReportUseCase(actividadUseCase, report.NewRenderer(), reportStorage, cfg.ReportsURLTTL)

	actividadHandler := handlers.NewActividadHandler(actividadUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	viewHandler := handlers.NewViewHandler(actividadUseCase, cfg.Agentes)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addActividadRoutes(v1, actividadHandler)
	addReportRoutes(v1, reportHandler)

	addViewRoutes(router.Group(PathApp), viewHandler)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, PathApp)
	})
}

func setMiddlewares(cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
