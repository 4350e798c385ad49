package router

import (
	"time"

	"clamoresul/internal/config"
	"clamoresul/internal/handler"
	"clamoresul/internal/middleware"
	"clamoresul/internal/repository"
	"clamoresul/internal/service"
	"clamoresul/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	usuarioRepo := repository.NewUsuarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)

	// The public catalog reads through the fallback decorator: when the
	// store is unreachable or empty, the demo dataset is served instead.
	catalogoRepo := repository.NewCatalogoComFallback(repository.NewCatalogoRepository(db))

	// Worker dispatcher — the visit beacon enqueues through it
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, cfg.WhatsAppNumero)
	produtoSvc := service.NewProdutoService(produtoRepo)
	vendaSvc := service.NewVendaService(vendaRepo)
	dashboardSvc := service.NewDashboardService(visitaRepo, vendaRepo, produtoRepo, categoriaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	visitasH := handler.NewVisitasHandler(dispatcher)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Storefront — no auth, read-only plus the page-view beacon
	r.GET("/v1/catalogo", catalogoH.Listar)
	r.POST("/v1/visitas", visitasH.Registrar)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Admin panel — JWT plus a per-request admin role check against the
	// store, so revoking the role locks the user out on their next request.
	admin := r.Group("/v1/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin(usuarioRepo))
	{
		admin.GET("/dashboard", dashboardH.Obter)

		admin.GET("/produtos", produtosH.Listar)
		admin.POST("/produtos", produtosH.Criar)
		admin.PUT("/produtos/:id", produtosH.Atualizar)
		admin.DELETE("/produtos/:id", produtosH.Excluir)

		admin.GET("/categorias", categoriasH.Listar)

		admin.POST("/vendas", vendasH.Criar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
