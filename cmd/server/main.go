package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"booksnap/backend/internal/advisor"
	"booksnap/backend/internal/catalog"
	"booksnap/backend/internal/handler"
	"booksnap/backend/internal/middleware"
	"booksnap/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	godotenv.Load(".env.local")

	env := os.Getenv("ENV")
	log.Printf("[INFO] Starting BookSnap advisor service env=%s", env)

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/booksnap.db"
	}
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open store at %s: %v", dbPath, err)
	}
	defer db.Close()

	books := catalog.NewClient()

	adv := initAdvisor(books)
	if adv == nil {
		log.Println("[WARN] Scoring and discovery will be unavailable")
	} else {
		log.Println("[INFO] Advisor initialized successfully")
	}

	authSecret := os.Getenv("AUTH_SECRET")
	if authSecret == "" {
		if env == "production" {
			log.Fatal("[FATAL] AUTH_SECRET is not set")
		}
		log.Println("[WARN] AUTH_SECRET not set, using development secret")
		authSecret = "booksnap-dev-secret"
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	if appURL := os.Getenv("APP_URL"); appURL != "" {
		allowedOrigins = append(allowedOrigins, appURL)
	}
	if extraOrigins := os.Getenv("ALLOWED_ORIGINS"); extraOrigins != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extraOrigins, ",")...)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// A typed nil must not leak into the interface field, or the handlers'
	// availability check would pass on a dead advisor.
	var scoring handler.Advisor
	if adv != nil {
		scoring = adv
	}
	h := handler.New(scoring, books, db)

	// Health check endpoints (outside /api group, no rate limiting)
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)

	secret := []byte(authSecret)
	authed := middleware.RequireRole(secret, middleware.RoleUser)
	partner := middleware.RequireRole(secret, middleware.RolePartner)

	api := r.Group("/api")
	{
		api.GET("/search-books", h.HandleSearchBooks)
		api.GET("/reviews/:bookstoreId", h.HandleListReviews)

		api.POST("/analyze-book", authed, h.HandleAnalyzeBook)
		api.POST("/discover-books", authed, h.HandleDiscoverBooks)
		api.POST("/reviews", authed, h.HandleCreateReview)

		api.GET("/library", authed, h.HandleGetLibrary)
		api.POST("/library", authed, h.HandleAddLibraryEntry)
		api.PATCH("/library/:id", authed, h.HandleUpdateLibraryEntry)
		api.DELETE("/library/:id", authed, h.HandleDeleteLibraryEntry)

		// Reserved for bookstore partner tooling.
		api.GET("/partner/reviews/:bookstoreId", partner, h.HandleListReviews)
	}

	// Anonymous kiosk mode is a deliberate operating mode for in-store
	// tablets, gated by config and kept behind rate limiting because the
	// routes share the Gemini quota with everyone.
	if os.Getenv("ALLOW_ANONYMOUS_KIOSK") == "true" {
		ipLimiter := middleware.NewIPRateLimiter(rate.Every(2*time.Second), 1)
		dailyQuota := middleware.NewDailyQuota(kioskDailyQuota())
		limited := middleware.RateLimitMiddleware(ipLimiter, dailyQuota)

		kiosk := r.Group("/api")
		kiosk.POST("/quick-recommendation", limited, h.HandleQuickRecommendation)
		kiosk.POST("/quick-discover", limited, h.HandleQuickDiscover)

		log.Println("[INFO] Anonymous kiosk mode enabled with rate limiting")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", port, allowedOrigins)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}

// initAdvisor builds the process-wide Gemini client and the advisor on top
// of it. A missing key or failed client degrades the service instead of
// killing it; health reports the state.
func initAdvisor(books *catalog.Client) *advisor.Advisor {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set")
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("[WARN] Failed to create genai client: %v", err)
		return nil
	}

	var opts []advisor.Option
	if os.Getenv("STRICT_SCORES") == "true" {
		opts = append(opts, advisor.WithStrictScores(true))
	}

	return advisor.New(advisor.NewGeminiLLMClient(client), books, opts...)
}

func kioskDailyQuota() int64 {
	// Sized to stay inside the free Gemini tier with headroom for the
	// authenticated routes.
	return 200
}
