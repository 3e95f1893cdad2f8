package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Anhpro1412/Menu-web/internal/auth"
	"github.com/Anhpro1412/Menu-web/internal/config"
	"github.com/Anhpro1412/Menu-web/internal/db"
	"github.com/Anhpro1412/Menu-web/internal/menu"
	"github.com/Anhpro1412/Menu-web/internal/middleware"
	"github.com/Anhpro1412/Menu-web/internal/notify"
	"github.com/Anhpro1412/Menu-web/internal/order"
	"github.com/Anhpro1412/Menu-web/internal/suggest"
	"github.com/Anhpro1412/Menu-web/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()

	required := []string{
		"JWT_SECRET",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── STORES ─────────────────────────
	var (
		menuRepo  menu.Repository
		orderRepo order.Repository
	)

	if cfg.DatabaseURL != "" {
		pool := db.ConnectPostgres(cfg.DatabaseURL)
		defer pool.Close()

		menuRepo = menu.NewPostgresRepository(pool)
		orderRepo = order.NewPostgresRepository(pool)
	} else {
		var err error
		menuRepo, err = menu.NewInMemoryRepository(filepath.Join(cfg.DataDir, "menu.json"))
		if err != nil {
			log.Fatal("❌ Menu store init failed:", err)
		}
		orderRepo, err = order.NewInMemoryRepository(filepath.Join(cfg.DataDir, "orders.json"))
		if err != nil {
			log.Fatal("❌ Order store init failed:", err)
		}
		log.Println("DATABASE_URL not set, using file-backed stores in", cfg.DataDir)
	}

	// ───────────────────────── SUGGESTION ENGINE ─────────────────────────
	var strategy suggest.Strategy
	if cfg.RemoteEnabled() {
		strategy = suggest.NewOpenAIStrategy(cfg.OpenAIKey, cfg.OpenAIModel)
	} else {
		strategy = suggest.NewLocalStrategy()
	}
	engine := suggest.NewEngine(strategy)
	log.Println("Suggestion engine mode:", engine.Mode())

	// ───────────────────────── NOTIFICATIONS ─────────────────────────
	var notifier order.Notifier
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatal("❌ Telegram init failed:", err)
		}
		notifier = tg
		log.Println("Telegram order notifications enabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menuRepo)
	orderService := order.NewService(orderRepo, notifier)

	authService, err := auth.NewService(cfg.AdminPassword)
	if err != nil {
		log.Fatal("❌ Auth init failed:", err)
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(menuService)
	orderHandler := order.NewHandler(orderService)
	suggestHandler := suggest.NewHandler(engine)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.AllowedOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	r.Use(cors.New(corsCfg))

	// 1 MB body cap
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20)
		c.Next()
	})

	r.Use(middleware.RequestID())

	// ───────────────────────── MISC ─────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "DHA Food backend"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "ok",
			"engineMode": engine.Mode(),
			"timestamp":  time.Now().UnixMilli(),
		})
	})

	r.GET("/admin", func(c *gin.Context) {
		c.FileFromFS("admin/index.html", http.FS(web.FS))
	})

	// ───────────────────────── API ROUTES ─────────────────────────
	limiter := middleware.NewRateLimiter(
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		cfg.RateLimit.MaxRequests,
	)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		api.POST("/suggest", suggestHandler.Suggest)
		api.POST("/order", orderHandler.Create)

		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.AdminAuth())
			{
				protected.GET("/orders", orderHandler.List)
				protected.GET("/menu", menuHandler.List)
				protected.POST("/menu", menuHandler.Create)
				protected.GET("/customers", orderHandler.Customers)
			}
		}
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 DHA Food backend listening on http://localhost:" + cfg.Port)
	r.Run(":" + cfg.Port)
}
