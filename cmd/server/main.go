package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/auth"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/catalog"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/community"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/config"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/logger"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Log.Fatalw("mongo connect", "err", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Fatalw("mongo indexes", "err", err)
	}

	users := store.NewUserStore(db)
	sessions := store.NewSessionStore(db)
	paths := store.NewLearningPathStore(db)
	builds := store.NewBuildStore(db)
	events := store.NewEventStore(db)
	forum := store.NewForumStore(db)
	tools := store.NewAffiliateToolStore(db)
	videos := store.NewVideoStore(db)

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Log.Fatalw("redis connect", "err", err)
	}
	defer rdb.Close()
	limiter := middleware.NewRateLimiter(rdb)

	// ── MinIO ────────────────────────────────────────────────
	images, err := store.NewImageStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Log.Fatalw("minio connect", "err", err)
	}

	// ── Components ───────────────────────────────────────────
	identity := auth.NewClient(cfg.IdentityEndpoint, cfg.IdentityTimeout)
	authority := auth.NewAuthority(users, sessions, identity)
	authHandler := auth.NewHandler(authority)
	communityHandler := community.NewHandler(paths, builds, users, events, forum, images)
	catalogHandler := catalog.NewHandler(tools, videos)

	requireAuth := middleware.RequireAuth(authority)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger.Log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"LinkAndLearnLabs API is running"}`))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(limiter.Limit("login", cfg.LoginRateLimit, cfg.LoginRateWindow)).
				Post("/session", authHandler.CreateSession)
			r.With(requireAuth).Get("/me", authHandler.Me)
			r.With(requireAuth).Post("/logout", authHandler.Logout)
		})

		r.Route("/learning-paths", func(r chi.Router) {
			r.Get("/", communityHandler.ListPaths)
			r.Get("/{id}", communityHandler.GetPath)
			r.With(requireAuth).Post("/{id}/enroll", communityHandler.EnrollPath)
		})

		r.Route("/builds", func(r chi.Router) {
			r.Get("/", communityHandler.ListBuilds)
			r.Get("/images/{key}", communityHandler.GetBuildImage)
			r.With(requireAuth).Post("/", communityHandler.CreateBuild)
			r.With(requireAuth).Post("/images", communityHandler.UploadBuildImage)
			r.With(requireAuth).Post("/{id}/like", communityHandler.LikeBuild)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", communityHandler.ListEvents)
			r.With(requireAuth).Post("/{id}/register", communityHandler.RegisterEvent)
		})

		r.Route("/forum/topics", func(r chi.Router) {
			r.Get("/", communityHandler.ListTopics)
			r.Get("/{id}/replies", communityHandler.ListReplies)
			r.With(requireAuth).Post("/", communityHandler.CreateTopic)
			r.With(requireAuth).Post("/{id}/reply", communityHandler.ReplyTopic)
		})

		r.Route("/affiliate-tools", func(r chi.Router) {
			r.Get("/", catalogHandler.ListTools)
			r.Get("/{id}", catalogHandler.GetTool)
			r.With(requireAuth).Post("/", catalogHandler.CreateTool)
			r.With(requireAuth).Put("/{id}", catalogHandler.UpdateTool)
			r.With(requireAuth).Delete("/{id}", catalogHandler.DeleteTool)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", catalogHandler.ListVideos)
			r.Get("/{id}", catalogHandler.GetVideo)
			r.With(requireAuth).Post("/", catalogHandler.CreateVideo)
			r.With(requireAuth).Put("/{id}", catalogHandler.UpdateVideo)
			r.With(requireAuth).Delete("/{id}", catalogHandler.DeleteVideo)
		})
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Log.Infow("backend listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalw("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Infow("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
