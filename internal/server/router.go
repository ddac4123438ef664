package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/onlyfrogs/stylesync-backend/internal/handlers"
)

type RouterConfig struct {
  ChatHandler         *handlers.ChatHandler
  UserHandler         *handlers.UserHandler
  ClosetHandler       *handlers.ClosetHandler
  ClothingHandler     *handlers.ClothingHandler
  FitHandler          *handlers.FitHandler
  NotificationHandler *handlers.NotificationHandler
  WsHandler           gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  //-----------------------------------------
  // Cors Setup
  //-----------------------------------------
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://localhost:8081",
      "https://stylesync.app",
      "https://www.stylesync.app",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  //-----------------------------------------
  // Health Routes
  //-----------------------------------------
  router.GET("/healthz", handlers.Healthz)

  api := router.Group("/api")

  if cfg.WsHandler != nil {
    api.GET("/ws", cfg.WsHandler)
  }

  //Chat
  chat := api.Group("/chat")
  chat.POST("/create-session", cfg.ChatHandler.CreateSession)
  chat.POST("/prompt-gpt", cfg.ChatHandler.PromptStylist)
  chat.POST("/retrieve-user-sessions", cfg.ChatHandler.RetrieveUserSessions)
  chat.DELETE("/delete-chat-session-messages", cfg.ChatHandler.DeleteChatSessionMessages)
  chat.POST("/shop-the-look", cfg.ChatHandler.ShopTheLook)

  //User
  user := api.Group("/user")
  user.POST("/create-user", cfg.UserHandler.CreateUser)
  user.POST("/get-me", cfg.UserHandler.GetMe)
  user.POST("/update-user", cfg.UserHandler.UpdateUser)
  user.POST("/update-name", cfg.UserHandler.UpdateName)
  user.POST("/update-personal-information", cfg.UserHandler.UpdatePersonalInformation)
  user.POST("/update-body-type", cfg.UserHandler.UpdateBodyType)
  user.POST("/update-consider-skin-tone", cfg.UserHandler.UpdateConsiderSkinTone)
  user.POST("/update-prioritize-preferences", cfg.UserHandler.UpdatePrioritizePreferences)

  //Closet
  closet := api.Group("/closet")
  closet.POST("/create-closet", cfg.ClosetHandler.CreateCloset)
  closet.POST("/my-closets", cfg.ClosetHandler.MyClosets)
  closet.POST("/update-closet", cfg.ClosetHandler.UpdateCloset)
  closet.POST("/delete-closet", cfg.ClosetHandler.DeleteCloset)

  //Clothing
  clothing := api.Group("/clothing")
  clothing.POST("/create-clothing", cfg.ClothingHandler.CreateClothing)
  clothing.POST("/update-clothing", cfg.ClothingHandler.UpdateClothing)
  clothing.POST("/delete-clothing", cfg.ClothingHandler.DeleteClothing)
  clothing.POST("/closet-clothes", cfg.ClothingHandler.ClosetClothes)
  clothing.POST("/mark-worn", cfg.ClothingHandler.MarkWorn)

  //Fits
  fits := api.Group("/fits")
  fits.POST("/create-fit", cfg.FitHandler.CreateFit)
  fits.POST("/my-fits", cfg.FitHandler.MyFits)
  fits.POST("/rename-fit", cfg.FitHandler.RenameFit)
  fits.POST("/delete-fit", cfg.FitHandler.DeleteFit)
  fits.POST("/complete-outfit", cfg.FitHandler.CompleteOutfit)

  //Notifications
  notification := api.Group("/notification")
  notification.POST("/my-notifications", cfg.NotificationHandler.MyNotifications)
  notification.POST("/read-notification", cfg.NotificationHandler.ReadNotification)
  notification.DELETE("/delete-all-notifications", cfg.NotificationHandler.DeleteAllNotifications)

  return router
}
