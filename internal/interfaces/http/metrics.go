package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petrocontrol_http_requests_total",
		Help: "Total de peticiones HTTP por método, ruta y código de estado.",
	}, []string{"method", "path", "status"})

	movementsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petrocontrol_fuel_movements_created_total",
		Help: "Total de movimientos de combustible registrados, por dirección.",
	}, []string{"direction"})
)

// MetricsMiddleware cuenta cada petición atendida. Usa la ruta registrada
// (c.Route().Path) y no la URL cruda, para no explotar la cardinalidad con IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		httpRequestsTotal.WithLabelValues(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// MetricsHandler expone el registro Prometheus en formato de texto.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// countMovementCreated incrementa el contador de movimientos registrados.
func countMovementCreated(direction string) {
	movementsCreatedTotal.WithLabelValues(direction).Inc()
}
