package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/audit"
	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	"github.com/Max-Antonio/lu-estilo-API/internal/config"
	"github.com/Max-Antonio/lu-estilo-API/internal/handlers"
	infraRepo "github.com/Max-Antonio/lu-estilo-API/internal/infra/repository"
	"github.com/Max-Antonio/lu-estilo-API/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	usuarioRepo := infraRepo.NewUsuarioGormRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	gate := auth.NewGate(usuarioRepo, tokens)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(gate, tokens, cfg)
	usuarioHandler := handlers.NewUsuarioHandler(db, usuarioRepo, gate, auditDispatcher)
	clienteHandler := handlers.NewClienteHandler(db, gate, auditDispatcher)
	produtoHandler := handlers.NewProdutoHandler(db, auditDispatcher)
	pedidoHandler := handlers.NewPedidoHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// AUTH (público)
	// ======================================================
	authGroup := r.Group("/auth")
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		authGroup.Use(middleware.RateLimiter(rdb, 10, time.Minute))
	}
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/refresh-token", authHandler.RefreshToken)
	}

	// ======================================================
	// ROTAS AUTENTICADAS
	//
	// Política única: leitura exige sessão válida, escrita exige
	// admin. Nenhuma rota fica fora do middleware de auth.
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(gate))

	admin := middleware.AdminMiddleware(gate)
	{
		usuarios := secured.Group("/usuarios")
		{
			usuarios.GET("/", usuarioHandler.List)
			usuarios.GET("/me", usuarioHandler.Me)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.POST("/", admin, usuarioHandler.Create)
			usuarios.DELETE("/:id", admin, usuarioHandler.Delete)
		}

		clients := secured.Group("/clients")
		{
			clients.GET("/", clienteHandler.List)
			clients.GET("/:id", clienteHandler.Get)
			clients.POST("/", admin, clienteHandler.Create)
			clients.PUT("/:id", admin, clienteHandler.Update)
			clients.DELETE("/:id", admin, clienteHandler.Delete)
		}

		products := secured.Group("/products")
		{
			products.GET("/", produtoHandler.List)
			products.GET("/:id", produtoHandler.Get)
			products.POST("/", admin, produtoHandler.Create)
			products.PUT("/:id", admin, produtoHandler.Update)
			products.DELETE("/:id", admin, produtoHandler.Delete)
		}

		orders := secured.Group("/orders")
		{
			orders.GET("/", pedidoHandler.List)
			orders.GET("/:id", pedidoHandler.Get)
			orders.POST("/", admin, pedidoHandler.Create)
			orders.PUT("/:id", admin, pedidoHandler.Update)
			orders.DELETE("/:id", admin, pedidoHandler.Delete)
		}

		secured.GET("/audit-logs", admin, auditLogsHandler.List)
	}
}
