package routes

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/handlers"
	"galeana-pepper/internal/middleware"
	"galeana-pepper/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	ProveedorHandler     handlers.ProveedorHandler
	ProductoHandler      handlers.ProductoHandler
	PesajeHandler        handlers.PesajeHandler
	DescargaHandler      handlers.DescargaHandler
	ProcesamientoHandler handlers.ProcesamientoHandler
	TanqueHandler        handlers.TanqueHandler
	EmbarqueHandler      handlers.EmbarqueHandler
	DashboardHandler     handlers.DashboardHandler
	InventarioHandler    handlers.InventarioHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	v1 := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	c.Proveedores(v1)
	c.Productos(v1)
	c.Pesaje(v1)
	c.Descarga(v1)
	c.Procesamiento(v1)
	c.Tanques(v1)
	c.Embarques(v1)
	c.Dashboard(v1)
	c.Inventario(v1)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Proveedores(router fiber.Router) {
	proveedores := router.Group("/proveedores")
	{
		proveedores.Post("", c.ProveedorHandler.CreateProveedor)
		proveedores.Get("", c.ProveedorHandler.GetProveedores)
		proveedores.Get("/:numero", c.ProveedorHandler.GetProveedor)
		proveedores.Put("/:numero", c.ProveedorHandler.UpdateProveedor)
		proveedores.Delete("/:numero", c.Middleware.OnlyAllow(domain.RoleSupervisor), c.ProveedorHandler.DeleteProveedor)
		proveedores.Get("/:numero/camiones", c.ProveedorHandler.GetCamiones)
	}
}

func (c *Config) Productos(router fiber.Router) {
	productos := router.Group("/productos")
	{
		productos.Post("/ingreso", c.ProductoHandler.RegistrarIngreso)
		productos.Get("", c.ProductoHandler.GetProductos)
		productos.Get("/espera", c.ProductoHandler.ListaEspera)
		productos.Get("/:folio", c.ProductoHandler.GetProducto)
		productos.Post("/:folio/pesaje", c.ProductoHandler.EnviarAPesaje)
		productos.Post("/:folio/foto", c.ProductoHandler.SubirFoto)
		productos.Get("/:folio/eventos", c.ProductoHandler.GetEventos)
	}
}

func (c *Config) Pesaje(router fiber.Router) {
	pesaje := router.Group("/pesaje")
	{
		pesaje.Get("/primero", c.PesajeHandler.ColaPrimerPesaje)
		pesaje.Post("/primero/:folio/iniciar", c.PesajeHandler.IniciarPrimerPesaje)
		pesaje.Post("/primero/:folio", c.PesajeHandler.RegistrarPrimerPesaje)
		pesaje.Get("/segundo", c.PesajeHandler.ColaSegundoPesaje)
		pesaje.Post("/segundo/:folio", c.PesajeHandler.RegistrarSegundoPesaje)
	}
}

func (c *Config) Descarga(router fiber.Router) {
	descarga := router.Group("/descarga")
	{
		descarga.Get("", c.DescargaHandler.ColaDescarga)
		descarga.Get("/activa", c.DescargaHandler.DescargaActiva)
		descarga.Post("/:folio/iniciar", c.DescargaHandler.IniciarDescarga)
		descarga.Post("/:folio/aceptar", c.DescargaHandler.AceptarDescarga)
		descarga.Post("/:folio/rechazar", c.DescargaHandler.RechazarDescarga)
	}
}

func (c *Config) Procesamiento(router fiber.Router) {
	procesamiento := router.Group("/procesamiento")
	{
		procesamiento.Get("", c.ProcesamientoHandler.ColaProceso)
		procesamiento.Post("/:folio/iniciar", c.ProcesamientoHandler.IniciarProceso)
		procesamiento.Post("/:folio", c.ProcesamientoHandler.RegistrarProceso)
	}
}

func (c *Config) Tanques(router fiber.Router) {
	tanques := router.Group("/tanques")
	{
		tanques.Get("", c.TanqueHandler.GetTanques)
		tanques.Post("", c.Middleware.OnlyAllow(domain.RoleSupervisor), c.TanqueHandler.CreateTanque)
		tanques.Post("/asignar", c.TanqueHandler.AsignarTanque)
		tanques.Get("/stream", c.TanqueHandler.StreamTanques)
	}
}

func (c *Config) Embarques(router fiber.Router) {
	embarques := router.Group("/embarques")
	{
		embarques.Post("", c.EmbarqueHandler.RegistrarSalida)
		embarques.Get("", c.EmbarqueHandler.GetEmbarques)
	}
}

func (c *Config) Dashboard(router fiber.Router) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.Get("/metricas", c.DashboardHandler.GetMetricas)
		dashboard.Get("/auditoria", c.DashboardHandler.GetAuditoria)
	}
}

func (c *Config) Inventario(router fiber.Router) {
	inventario := router.Group("/inventario")
	{
		inventario.Get("", c.InventarioHandler.GetInventario)
		inventario.Get("/export.xml", c.InventarioHandler.ExportXML)
		inventario.Get("/export.csv", c.InventarioHandler.ExportCSV)
	}
}
