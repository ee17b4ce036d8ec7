package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"titoubarz-backend/config"
	"titoubarz-backend/internal/delivery/http/middleware"
	v1 "titoubarz-backend/internal/delivery/http/v1"
	"titoubarz-backend/internal/infrastructure/cache"
	"titoubarz-backend/internal/infrastructure/facebook"
	postgresrepo "titoubarz-backend/internal/repository/postgres"
	"titoubarz-backend/internal/repository/staticdata"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/logger"
	"titoubarz-backend/pkg/storage"
	"titoubarz-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	pgxPool, err := postgresrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL")

	// Repositories. The wilaya catalog is embedded and read-only.
	wilayaRepo := staticdata.NewWilayaRepository()
	productRepo := postgresrepo.NewProductRepository(pgxPool)
	orderRepo := postgresrepo.NewOrderRepository(pgxPool)
	contactRepo := postgresrepo.NewContactRepository(pgxPool)

	// In-memory cache: default expiration 30m, cleanup every 60m.
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	r2Storage, err := storage.NewR2Storage(
		context.Background(),
		cfg.R2AccountID,
		cfg.R2AccessKeyID,
		cfg.R2AccessKeySecret,
		cfg.R2BucketName,
		cfg.R2PublicURL,
		cfg.R2UploadTimeout,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize R2 storage")
	}

	capiClient := facebook.NewCAPIClient(cfg.FBPixelID, cfg.FBAccessToken, cfg.FBAPIVersion)

	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Delivery Module
	deliveryUC := usecase.NewDeliveryUsecase(wilayaRepo, memCache, cfg.CacheDeliveryTTL)
	deliveryHandler := v1.NewDeliveryHandler(deliveryUC)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productRepo, r2Storage, memCache, cfg.CacheDeliveryTTL)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Order Module
	orderUC := usecase.NewOrderUsecase(orderRepo, capiClient, memCache, cfg.CacheStatsTTL)
	orderHandler := v1.NewOrderHandler(orderUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC)

	// Contact Module
	contactUC := usecase.NewContactUsecase(contactRepo, memCache, cfg.CacheStatsTTL)
	contactHandler := v1.NewContactHandler(contactUC)
	adminContactHandler := v1.NewAdminContactHandler(contactUC)

	// Upload Module
	uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)

	// Auth Module
	authHandler := v1.NewAuthHandler(cfg)

	// Sitemap Module
	sitemapUC := usecase.NewSitemapUsecase(productRepo, cfg.FrontendURL, memCache, cfg.CacheSitemapTTL)
	sitemapHandler := v1.NewSitemapHandler(sitemapUC)

	admin := middleware.NewAdminMiddleware(cfg)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return admin(h)
	}

	// Delivery (Public)
	mux.HandleFunc("GET /api/delivery/wilayas", deliveryHandler.GetWilayas)
	mux.HandleFunc("GET /api/delivery/wilayas/{id}", deliveryHandler.GetWilayaByID)
	mux.HandleFunc("GET /api/delivery/wilayas/{id}/communes", deliveryHandler.GetCommunes)
	mux.HandleFunc("POST /api/delivery/calculate", deliveryHandler.CalculatePrice)
	mux.HandleFunc("GET /api/delivery/zones", deliveryHandler.GetZones)
	mux.HandleFunc("GET /api/delivery/search", deliveryHandler.SearchWilayas)

	// Delivery (Admin)
	mux.Handle("GET /api/delivery/stats", adminOnly(deliveryHandler.GetStats))

	// Catalog (Public)
	mux.HandleFunc("GET /api/products", catalogHandler.GetProducts)
	mux.HandleFunc("GET /api/products/featured", catalogHandler.GetFeatured)
	mux.HandleFunc("GET /api/products/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/products/search", catalogHandler.SearchProducts)
	mux.HandleFunc("GET /api/products/category/{category}", catalogHandler.GetByCategory)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct)

	// Catalog (Admin)
	mux.Handle("POST /api/products", adminOnly(adminCatalogHandler.CreateProduct))
	mux.Handle("PUT /api/products/{id}", adminOnly(adminCatalogHandler.UpdateProduct))
	mux.Handle("DELETE /api/products/{id}", adminOnly(adminCatalogHandler.DeleteProduct))

	// Orders
	mux.HandleFunc("POST /api/orders", orderHandler.CreateOrder)
	mux.Handle("GET /api/orders", adminOnly(adminOrderHandler.GetOrders))
	mux.Handle("GET /api/orders/stats", adminOnly(adminOrderHandler.GetStats))
	mux.Handle("GET /api/orders/{id}", adminOnly(adminOrderHandler.GetOrder))
	mux.Handle("PUT /api/orders/{id}/status", adminOnly(adminOrderHandler.UpdateOrderStatus))
	mux.Handle("DELETE /api/orders/{id}", adminOnly(adminOrderHandler.DeleteOrder))

	// Contacts
	mux.HandleFunc("POST /api/contact", contactHandler.SubmitContact)
	mux.Handle("GET /api/contact", adminOnly(adminContactHandler.GetContacts))
	mux.Handle("GET /api/contact/stats", adminOnly(adminContactHandler.GetStats))
	mux.Handle("GET /api/contact/{id}", adminOnly(adminContactHandler.GetContact))
	mux.Handle("PUT /api/contact/{id}", adminOnly(adminContactHandler.UpdateContact))
	mux.Handle("PATCH /api/contact/{id}/read", adminOnly(adminContactHandler.MarkAsRead))
	mux.Handle("DELETE /api/contact/{id}", adminOnly(adminContactHandler.DeleteContact))

	// Uploads (Admin)
	mux.Handle("POST /api/upload", adminOnly(uploadHandler.UploadFile))

	// Auth
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	// Sitemap
	mux.HandleFunc("GET /sitemap.xml", sitemapHandler.ServeHTTP)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccess(w, http.StatusOK, "TitouBarz API", nil)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Per-IP rate limiting, cleanup every minute, TTL 3 minutes.
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	pgxPool.Close()

	log.Info().Msg("Server exited properly")
}
