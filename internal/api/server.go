package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/huntersguild/trading-post-api/docs"
	v1 "github.com/huntersguild/trading-post-api/internal/api/handler/v1"
	"github.com/huntersguild/trading-post-api/internal/api/middleware"
	"github.com/huntersguild/trading-post-api/internal/config"
	"github.com/huntersguild/trading-post-api/internal/inventory"
	"github.com/huntersguild/trading-post-api/internal/repository"
	"github.com/huntersguild/trading-post-api/internal/repository/dao"
	"github.com/huntersguild/trading-post-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	hunterHandler := s.initHunterHandler(db)
	merchantHandler := s.initMerchantHandler(db)
	itemHandler := s.initItemHandler(db)
	tradingHandler := s.initTradingHandler(db)
	s.MountHandlers(authHandler, hunterHandler, merchantHandler, itemHandler, tradingHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initHunterHandler(db *gorm.DB) *v1.HunterHandler {
	hunterDAO := dao.NewHunterDAO(db)
	repo := repository.NewHunterRepository(hunterDAO)
	svc := service.NewHunterService(repo)
	handler := v1.NewHunterHandler(svc)

	return handler
}

func (s *Server) initMerchantHandler(db *gorm.DB) *v1.MerchantHandler {
	merchantDAO := dao.NewMerchantDAO(db)
	repo := repository.NewMerchantRepository(merchantDAO)
	svc := service.NewMerchantService(repo)
	handler := v1.NewMerchantHandler(svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewItemService(repo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initTradingHandler(db *gorm.DB) *v1.TradingHandler {
	hunterRepo := repository.NewHunterRepository(dao.NewHunterDAO(db))
	merchantRepo := repository.NewMerchantRepository(dao.NewMerchantDAO(db))
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	archive := repository.NewTransactionRepository(dao.NewTransactionDAO(db))

	engine := inventory.NewEngine(hunterRepo, merchantRepo, itemRepo)
	svc := service.NewTradingService(engine, hunterRepo, merchantRepo, itemRepo, archive)
	handler := v1.NewTradingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	hunterHandler *v1.HunterHandler,
	merchantHandler *v1.MerchantHandler,
	itemHandler *v1.ItemHandler,
	tradingHandler *v1.TradingHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/hunters", hunterHandler.HandleListHunters)
		protected.GET("/hunters/:hunterID", hunterHandler.HandleGetHunter)
		protected.POST("/hunters", hunterHandler.HandleCreateHunter)
		protected.PUT("/hunters/:hunterID", hunterHandler.HandleUpdateHunter)
		protected.DELETE("/hunters/:hunterID", hunterHandler.HandleDeleteHunter)

		protected.GET("/merchants", merchantHandler.HandleListMerchants)
		protected.GET("/merchants/:merchantID", merchantHandler.HandleGetMerchant)
		protected.POST("/merchants", merchantHandler.HandleCreateMerchant)
		protected.PUT("/merchants/:merchantID", merchantHandler.HandleUpdateMerchant)
		protected.DELETE("/merchants/:merchantID", merchantHandler.HandleDeleteMerchant)

		protected.GET("/items", itemHandler.HandleListItems)
		protected.GET("/items/:itemID", itemHandler.HandleGetItem)
		protected.POST("/items", itemHandler.HandleCreateItem)
		protected.PUT("/items/:itemID", itemHandler.HandleUpdateItem)
		protected.DELETE("/items/:itemID", itemHandler.HandleDeleteItem)

		protected.GET("/stock", tradingHandler.HandleListStock)
		protected.GET("/stock/:itemID", tradingHandler.HandleGetStockLevel)
		protected.POST("/stock/add", tradingHandler.HandleAddStock)
		protected.POST("/stock/remove", tradingHandler.HandleRemoveStock)

		protected.GET("/transactions", tradingHandler.HandleListTransactions)
		protected.POST("/transactions/sales", tradingHandler.HandleRecordSale)
		protected.POST("/transactions/purchases", tradingHandler.HandleRecordPurchase)
		protected.POST("/transactions/returns", tradingHandler.HandleRecordReturn)

		protected.GET("/reports/economic", tradingHandler.HandleGetReport)
		protected.GET("/reports/most-sold", tradingHandler.HandleGetMostSoldItem)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Trading Post API"
	docs.SwaggerInfo.Description = "Inventory and transaction ledger for the guild trading post."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
