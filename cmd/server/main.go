package main

import (
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/khannoor710/carerefrigeration/internal/application"
	"github.com/khannoor710/carerefrigeration/internal/config"
	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/khannoor710/carerefrigeration/internal/email"
	"github.com/khannoor710/carerefrigeration/internal/events"
	"github.com/khannoor710/carerefrigeration/internal/gemini"
	"github.com/khannoor710/carerefrigeration/internal/infrastructure/repository"
	handlers "github.com/khannoor710/carerefrigeration/internal/interfaces/http"
	services "github.com/khannoor710/carerefrigeration/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Twice the upload ceiling: over-limit images must reach the
		// store's own size check (and its 400 response) rather than get
		// cut off by the framework, and multipart framing needs headroom.
		BodyLimit: 2 * services.MaxUploadSize,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Blob storage
	var blobs domain.BlobStore
	switch cfg.StorageBackend {
	case "s3":
		s3Storage, err := services.NewS3Storage(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalf("Error initializing S3 storage: %v", err)
		}
		blobs = s3Storage
		app.Get("/gallery/*", handlers.RedirectGalleryImage(s3Storage.PublicURL))
	default:
		localStorage, err := services.NewLocalStorage(cfg.GalleryDir)
		if err != nil {
			log.Fatalf("Error initializing local storage: %v", err)
		}
		blobs = localStorage
		app.Static("/gallery", localStorage.Dir())
	}

	// Gallery
	hub := events.NewHub()
	galleryRepo := repository.NewGalleryRepository(cfg.GalleryDataPath)
	galleryService := application.NewGalleryService(galleryRepo, blobs)
	galleryHandler := handlers.NewGalleryHandler(galleryService, hub)

	// Email client
	var mailer application.BookingMailer
	if cfg.SMTPHost != "" {
		emailClient, err := email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
			cfg.BusinessEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
		} else {
			mailer = emailClient
		}
	} else {
		log.Printf("No SMTP configuration found; booking emails will not be sent")
	}

	// Booking
	fallback := &application.DeterministicComposer{
		CompanyName:  cfg.CompanyName,
		CompanyPhone: cfg.CompanyPhone,
	}
	var composer domain.ConfirmationComposer
	if cfg.GeminiAPIKey != "" {
		geminiClient := gemini.NewClient(cfg.GeminiAPIKey)
		composer = application.NewGeminiComposer(geminiClient, cfg.CompanyName, cfg.CompanyPhone)
	}
	bookingLimiter := application.NewRateLimiter(1*time.Minute, 5)
	bookingService := application.NewBookingService(composer, fallback, mailer)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingLimiter)

	// Admin session guard (client-held, advisory only)
	loginLimiter := application.NewRateLimiter(1*time.Minute, 10)
	authService := application.NewAuthService(cfg.AdminUsername, cfg.AdminPassword)
	authHandler := handlers.NewAuthHandler(authService, loginLimiter)

	api := app.Group("/api")

	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.GetImages)
	gallery.Post("/upload", galleryHandler.UploadImage)
	gallery.Post("/reset", galleryHandler.ResetGallery)
	gallery.Get("/events", websocket.New(hub.Handler()))
	gallery.Delete("/:index", galleryHandler.DeleteImage)

	api.Post("/booking-confirmation", bookingHandler.CreateBooking)

	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/status", authHandler.Status)
	admin.Post("/logout", authHandler.Logout)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Gallery directory: %s", cfg.GalleryDir)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
