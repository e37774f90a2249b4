package router

import (
	"time"

	"inventaris/internal/config"
	"inventaris/internal/handler"
	"inventaris/internal/middleware"
	"inventaris/internal/repository"
	"inventaris/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	produkRepo := repository.NewProdukRepository(db)
	stokRepo := repository.NewStokRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewDashboardCache(rdb, time.Duration(cfg.DashboardCacheTTL)*time.Second)
	produkSvc := service.NewProdukService(produkRepo, stokRepo, cache)
	stokSvc := service.NewStokService(stokRepo, produkRepo, cache)
	karyawanSvc := service.NewKaryawanService(karyawanRepo, cache)
	dashboardSvc := service.NewDashboardService(produkRepo, stokRepo, karyawanRepo, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	produkH := handler.NewProdukHandler(produkSvc)
	stokH := handler.NewStokHandler(stokSvc)
	karyawanH := handler.NewKaryawanHandler(karyawanSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.GET("/dashboard", dashboardH.Summary)

		api.GET("/products", produkH.List)
		api.POST("/products", produkH.Create)
		api.PUT("/products/:kode", produkH.Update)
		api.DELETE("/products/:kode", produkH.Delete)

		api.GET("/stock", stokH.List)
		api.POST("/stock", stokH.Create)
		api.PUT("/stock/:kode", stokH.Update)
		api.DELETE("/stock/:kode", stokH.Delete)

		api.GET("/employees", karyawanH.List)
		api.POST("/employees", karyawanH.Create)
		api.PUT("/employees/:id", karyawanH.Update)
		api.DELETE("/employees/:id", karyawanH.Delete)
	}

	return r
}
