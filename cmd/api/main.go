package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"piramida/internal/adapter/api"
	"piramida/internal/adapter/api/handler"
	apimiddleware "piramida/internal/adapter/api/middleware"
	"piramida/internal/adapter/api/router"
	adapterrepo "piramida/internal/adapter/repository"
	domainrepo "piramida/internal/domain/repository"
	"piramida/internal/domain/service"
	"piramida/internal/infrastructure/ratelimit"
	"piramida/internal/infrastructure/storage"
	syncinfra "piramida/internal/infrastructure/sync"
	"piramida/internal/infrastructure/websocket"
	"piramida/internal/usecase"
	"piramida/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var (
		submissionRepo domainrepo.SubmissionRepository
		listingRepo    domainrepo.ListingRepository
		adminRepo      domainrepo.AdminRepository
		pricingRepo    domainrepo.PricingRepository
		userRepo       domainrepo.UserRepository
		inquiryRepo    domainrepo.InquiryRepository
	)

	if cfg.FirebaseProject != "" {
		var opts []option.ClientOption
		if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
			opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		submissionRepo = adapterrepo.NewFirestoreSubmissionRepository(firestoreClient)
		listingRepo = adapterrepo.NewFirestoreListingRepository(firestoreClient)
		adminRepo = adapterrepo.NewFirestoreAdminRepository(firestoreClient)
		pricingRepo = adapterrepo.NewFirestorePricingRepository(firestoreClient)
		userRepo = adapterrepo.NewFirestoreUserRepository(firestoreClient)
		inquiryRepo = adapterrepo.NewFirestoreInquiryRepository(firestoreClient)
	} else {
		log.Printf("FIREBASE_PROJECT_ID not set, using in-memory storage")
		submissionRepo = adapterrepo.NewMemorySubmissionRepository()
		listingRepo = adapterrepo.NewMemoryListingRepository()
		adminRepo = adapterrepo.NewMemoryAdminRepository()
		pricingRepo = adapterrepo.NewMemoryPricingRepository()
		userRepo = adapterrepo.NewMemoryUserRepository()
		inquiryRepo = adapterrepo.NewMemoryInquiryRepository()
	}

	var fileService service.FileUploadService
	serveLocalUploads := false
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		fileService = storageClient
	} else {
		localClient, err := storage.NewLocalStorageClient("uploads")
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		fileService = localClient
		serveLocalUploads = true
	}
	defer fileService.Close()

	notifier := syncinfra.NewNotifier()
	notifier.Run(ctx)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	events, _ := notifier.Subscribe()
	wsManager.Relay(events)

	paymentService := service.NewSimulatedPaymentService(2 * time.Second)

	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, notifier)
	feedUseCase := usecase.NewFeedUseCase(listingRepo, submissionRepo)
	moderationUseCase := usecase.NewModerationUseCase(submissionRepo, listingRepo, notifier)
	workflowUseCase := usecase.NewWorkflowUseCase(submissionRepo, moderationUseCase, paymentService, notifier)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, pricingRepo, notifier)
	authUseCase := usecase.NewAuthUseCase(adminRepo, userRepo, adminUseCase, cfg.JWTSecret, cfg.JWTExpiry)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, listingRepo, feedUseCase, notifier)

	if err := adminUseCase.EnsureDefaultAdmin(ctx); err != nil {
		log.Printf("Failed to seed default admin: %v", err)
	}

	handler.Setup(authUseCase, feedUseCase, submissionUseCase, moderationUseCase, adminUseCase, workflowUseCase, inquiryUseCase)
	handler.SetupFileHandler(fileService)
	handler.SetupWebSocketHandler(wsManager)
	handler.SetupHealthHandler()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	if serveLocalUploads {
		e.Static("/uploads", "uploads")
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
