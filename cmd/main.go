package main

import (
  "context"
  "fmt"
  "os"

  "github.com/onlyfrogs/stylesync-backend/internal/db"
  "github.com/onlyfrogs/stylesync-backend/internal/handlers"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/server"
  "github.com/onlyfrogs/stylesync-backend/internal/services"
  "github.com/onlyfrogs/stylesync-backend/internal/socket"
  "github.com/onlyfrogs/stylesync-backend/internal/utils"
)

func main() {
  // Logger Setup
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  ctx := context.Background()

  // Environment Variables
  log.Info("Attempting to load environment variables for Main now...")
  redisAddress := utils.GetEnv("REDIS_ADDRESS", "localhost:6379", log)
  redisPassword := utils.GetEnv("REDIS_PASSWORD", "", log)
  refineQueries := utils.GetEnvAsBool("SHOPPING_REFINE_QUERIES", false, log)
  log.Debug("Environment variables loaded for Main :)",
    "redisAddress", redisAddress,
    "refineQueries", refineQueries,
  )

  // Postgres Setup
  log.Info("Setting Up Postgres from Main now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Fatal error: Cannot init Postgres", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup From Main Successful :)")

  // Repositories Setup
  log.Info("Setting Up Repositories from Main now...")
  userRepo := repos.NewUserRepo(thePG, log)
  closetRepo := repos.NewClosetRepo(thePG, log)
  clothingRepo := repos.NewClothingRepo(thePG, log)
  fitRepo := repos.NewFitRepo(thePG, log)
  sessionRepo := repos.NewChatSessionRepo(thePG, log)
  messageRepo := repos.NewChatMessageRepo(thePG, log)
  notificationRepo := repos.NewNotificationRepo(thePG, log)
  log.Info("Repositories Set Up From Main Successful :)")

  // Websocket Setup
  log.Info("Setting Up Websocket Hub From Main Now :)")
  wsHub := socket.NewHub(log)
  log.Info("Websocket Hub Set Up From Main Successful :)")

  // Redis PubSub
  log.Info("Setting Up Redis PubSub From Main Now :)")
  redisChanName := "stylesync_hub_broadcast"
  redisPubSub, err := socket.NewRedisPubSub(log, redisAddress, redisPassword, redisChanName)
  if err != nil {
    log.Warn("Failed to init redis pubsub", "error", err)
  } else {
    if err := redisPubSub.StartSubscriber(wsHub); err != nil {
      log.Warn("Failed to subscribe to Redis pub/sub", "error", err)
    } else {
      wsHub.SetRedisPubSub(redisPubSub)
      log.Info("Redis pubsub is active!")
    }
  }
  log.Info("Successfully Set up Redis Pub Sub From Main :)")

  // Services Setup
  log.Info("Setting up Services from Main now...")
  emailService, err := services.NewEmailService(log)
  if err != nil {
    log.Warn("Could not init EmailService", "error", err)
  }
  bucketService, err := services.NewBucketService(ctx, log)
  if err != nil {
    log.Warn("Could not init BucketService", "error", err)
  }
  var avatarService services.AvatarService
  if bucketService != nil {
    avatarService, err = services.NewAvatarService(log, bucketService)
    if err != nil {
      log.Warn("Could not init AvatarService", "error", err)
    }
  }
  completionService, err := services.NewOpenAIService(log)
  if err != nil {
    log.Error("Fatal error: Cannot init OpenAIService", "error", err)
    os.Exit(1)
  }
  weatherService, err := services.NewWeatherService(log)
  if err != nil {
    log.Warn("Could not init WeatherService", "error", err)
  }
  productSearchService := services.NewProductSearchService(log)

  notificationService := services.NewNotificationService(log, notificationRepo, wsHub)
  userService := services.NewUserService(thePG, log, userRepo, avatarService, emailService, notificationService)
  closetService := services.NewClosetService(thePG, log, closetRepo, clothingRepo, userRepo)
  clothingService := services.NewClothingService(log, clothingRepo, closetRepo)
  fitService := services.NewFitService(log, fitRepo, clothingRepo, userRepo, bucketService)
  chatService := services.NewChatService(thePG, log, userRepo, sessionRepo, messageRepo, completionService, weatherService)
  outfitService := services.NewOutfitService(log, userRepo, clothingRepo, completionService)
  shoppingService := services.NewShoppingService(log, completionService, productSearchService, refineQueries)
  log.Info("Services Set Up From Main Successful :)")

  // Handler Setup
  log.Info("Setting Up Handlers from Main now...")
  chatHandler := handlers.NewChatHandler(chatService, shoppingService, userService)
  userHandler := handlers.NewUserHandler(userService)
  closetHandler := handlers.NewClosetHandler(closetService)
  clothingHandler := handlers.NewClothingHandler(clothingService)
  fitHandler := handlers.NewFitHandler(fitService, outfitService)
  notificationHandler := handlers.NewNotificationHandler(notificationService)
  wsHandler := handlers.WsHandler(wsHub, log)
  log.Info("Handlers Set Up From Main Successful :)")

  // Router Setup
  log.Info("Setting Up Router from Main now...")
  router := server.NewRouter(server.RouterConfig{
    ChatHandler:         chatHandler,
    UserHandler:         userHandler,
    ClosetHandler:       closetHandler,
    ClothingHandler:     clothingHandler,
    FitHandler:          fitHandler,
    NotificationHandler: notificationHandler,
    WsHandler:           wsHandler,
  })
  log.Info("Router Set Up From Main Successful :)")

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }

  // On Shutdown
  if redisPubSub != nil {
    redisPubSub.Stop()
  }
}
