package main

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/auth"
	"github.com/Abhay12911/collaborative-draw-app/config"
	"github.com/Abhay12911/collaborative-draw-app/crypto"
	"github.com/Abhay12911/collaborative-draw-app/logger"
	"github.com/Abhay12911/collaborative-draw-app/migrations"
	"github.com/Abhay12911/collaborative-draw-app/rooms"
	"github.com/Abhay12911/collaborative-draw-app/storage"
	"github.com/Abhay12911/collaborative-draw-app/ws"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	if len(allowedOrigins) == 0 {
		return r
	}

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Authorization",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	logger.Setup(cfg.Debug)

	if err := migrations.Migrate(cfg.PostgresURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Msg("migrations applied")

	// Dependencies
	pgRepo, err := storage.NewPostgresRepo(context.Background(), cfg.PostgresURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to postgres")
	}
	defer pgRepo.Close()

	tokenAge := time.Hour * 24 * 7 // 7 days
	passwordHasher := crypto.NewArgon2idHasher(3, 1024*64, 32, 16, 1)
	tokenManager := crypto.NewJWTManager(cfg.JWTKey, tokenAge)

	authService := auth.NewService(pgRepo, passwordHasher, tokenManager)
	authHandler := auth.NewHandler(authService)

	roomService := rooms.NewService(pgRepo)
	roomHandler := rooms.NewHandler(roomService)

	registry := ws.NewRegistry()
	broadcaster := ws.NewBroadcaster(registry, pgRepo, pgRepo)
	wsHandler := ws.NewHandler(registry, broadcaster, tokenManager)

	r := CreateServer(cfg.AllowedOrigins)

	{
		authGroup := r.Group("/auth")
		authGroup.POST("/signup", authHandler.SignupHandler)
		authGroup.POST("/login", authHandler.LoginHandler)
	}

	{
		roomGroup := r.Group("/")
		roomGroup.Use(authHandler.RequireAuthMiddleware())
		roomGroup.POST("/room", roomHandler.CreateRoomHandler)
		roomGroup.GET("/room/:slug", roomHandler.GetRoomHandler)
		roomGroup.GET("/chats/:roomId", roomHandler.GetChatsHandler)
	}

	// The websocket carries its token as a query parameter; auth happens
	// inside the handler before the upgrade completes.
	r.GET("/ws", wsHandler.Serve)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
