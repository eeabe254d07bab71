package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/catalog"
	"github.com/junaidrashid-git/tribal-art-api/config"
	"github.com/junaidrashid-git/tribal-art-api/realtime"
	"github.com/junaidrashid-git/tribal-art-api/routes"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"github.com/junaidrashid-git/tribal-art-api/uploads"
)

func main() {
	log.Println("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init DB
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	if err := store.InstallChangeTriggers(db); err != nil {
		log.Fatalf("❌ Failed to install change triggers: %v", err)
	}
	st := store.New(db)

	// Auth
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	accounts := auth.NewDBProvider(db, tokens, auth.LogMailer{BaseURL: cfg.PublicBaseURL})

	deps := routes.Deps{
		Store:    st,
		Accounts: accounts,
		APIKey:   cfg.APIKey,
	}
	if cfg.FirebaseEnabled() {
		google, err := auth.NewGoogleVerifier(ctx, cfg.FirebaseCredentialsJSON, cfg.FirebaseProjectID)
		if err != nil {
			log.Fatalf("❌ Error initializing Firebase: %v", err)
		}
		deps.Google = google
		log.Println("✅ Google sign-in enabled")
	}

	// Realtime change feed → hub → catalog cache
	hub := realtime.NewHub()
	defer hub.Close()
	if cfg.RealtimeEnabled {
		listener := realtime.NewPGListener(cfg.DatabaseURL, store.ProductsChannel, hub)
		go func() {
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("❌ Change feed stopped: %v", err)
			}
		}()
	}
	deps.Hub = hub

	cat := catalog.New(st)
	cat.Start(ctx, hub)
	defer cat.Close()
	deps.Catalog = cat

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (64 MB in memory, the rest spills to disk)
	r.MaxMultipartMemory = 64 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Image storage: Cloudinary when configured, local disk otherwise
	if cfg.CloudinaryURL != "" {
		cld, err := uploads.NewCloudinary(cfg.CloudinaryURL, "product-images")
		if err != nil {
			log.Fatalf("❌ Cloudinary setup failed: %v", err)
		}
		deps.Uploader = cld
		log.Println("✅ Uploading images to Cloudinary")
	} else {
		deps.Uploader = uploads.NewDisk(cfg.UploadDir, cfg.PublicBaseURL+"/uploads")

		// Serve uploaded images
		r.Static("/uploads", cfg.UploadDir)

		// Back up images at 2 AM daily
		if cfg.BackupDir != "" {
			go uploads.Backup{
				SrcDir:    cfg.UploadDir,
				BackupDir: cfg.BackupDir,
				Retention: cfg.BackupKeep,
				Hour:      2,
			}.Run(ctx)
		}
	}

	// Setup routes
	routes.SetupRoutes(r, deps)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("❌ Shutdown failed: %v", err)
		}
	}()

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	log.Println("👋 Server stopped")
}
