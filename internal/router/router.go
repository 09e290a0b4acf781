package router

import (
	"time"

	"tiendapos/internal/config"
	"tiendapos/internal/handler"
	"tiendapos/internal/middleware"
	"tiendapos/internal/repository"
	"tiendapos/internal/service"
	"tiendapos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	productoRepo := repository.NewProductoRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	recepcionRepo := repository.NewRecepcionRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoRepo, dispatcher)
	recepcionSvc := service.NewRecepcionService(productoRepo, recepcionRepo, movimientoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, movimientoRepo, dispatcher, cfg.PDFStoragePath)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, cfg)
	reporteSvc := service.NewReporteService(reporteRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	recepcionH := handler.NewRecepcionHandler(recepcionSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	consultaH := handler.NewConsultaHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/login", middleware.LoginRateLimiter(), empleadosH.Login)

		// Price check for the register — read-only, cached
		v1.GET("/consulta/:codigo", consultaH.PorCodigo)

		inv := v1.Group("/inventario")
		{
			inv.GET("/productos", inventarioH.ListarProductos)
			inv.GET("/productos/buscar", inventarioH.BuscarProductos)
			inv.GET("/productos/:id", inventarioH.ObtenerProducto)
			inv.POST("/ajustes", inventarioH.AjustarStock)
			inv.GET("/ajustes", inventarioH.HistorialAjustes)
		}

		rec := v1.Group("/recepciones")
		{
			rec.POST("/existente", recepcionH.RecibirExistente)
			rec.POST("/nuevo", recepcionH.CrearProductoNuevo)
			rec.GET("/verificar-producto/:codigo", recepcionH.VerificarProducto)
			rec.GET("/verificar-codigo", recepcionH.VerificarCodigo)
			rec.GET("/historial", recepcionH.Historial)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.Obtener)
			ventas.GET("/:id/ticket", ventasH.Ticket)
		}

		empleados := v1.Group("/empleados")
		{
			empleados.POST("", empleadosH.Crear)
			empleados.GET("", empleadosH.Listar)
			empleados.GET("/:id", empleadosH.Obtener)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Desactivar)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/ventas-por-dia", reportesH.VentasPorDia)
			reportes.GET("/ingresos-por-dia", reportesH.IngresosPorDia)
			reportes.GET("/productos-mas-vendidos", reportesH.ProductosMasVendidos)
			reportes.GET("/rendimiento-empleados", reportesH.RendimientoEmpleados)
			reportes.POST("/productos", reportesH.CrearReporteProducto)
			reportes.GET("/productos", reportesH.ListarReportesProductos)
		}
	}

	return r
}
