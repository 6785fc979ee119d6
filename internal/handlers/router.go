package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bfarinango/student-store/internal/notifier"
	"github.com/bfarinango/student-store/internal/store"
)

// API holds the stores and the notifier the handlers act on. The DB
// handle is injected at construction; there is no package-level
// state.
type API struct {
	catalog  *store.Catalog
	orders   *store.Orders
	items    *store.Items
	notifier *notifier.Notifier
}

func NewAPI(db *gorm.DB, n *notifier.Notifier) *API {
	return &API{
		catalog:  store.NewCatalog(db),
		orders:   store.NewOrders(db),
		items:    store.NewItems(db),
		notifier: n,
	}
}

// NewRouter builds the full route table. The browser client is served
// from another origin, so CORS is wide open the way the original
// deployment ran it.
func NewRouter(api *API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID(), cors.Default())

	Register(r, api)
	return r
}

// Register attaches the API's routes to an existing engine. Split out
// from NewRouter so tests can mount handlers on a bare engine.
func Register(r *gin.Engine, api *API) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Student Store API!")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/products", api.ListProducts)
	r.GET("/products/:id", api.GetProduct)
	r.POST("/products", api.CreateProduct)
	r.PUT("/products/:id", api.UpdateProduct)
	r.DELETE("/products/:id", api.DeleteProduct)

	r.GET("/orders", api.ListOrders)
	r.GET("/orders/:id", api.GetOrder)
	r.POST("/orders", api.CreateOrder)
	r.PUT("/orders/:id", api.UpdateOrder)
	r.DELETE("/orders/:id", api.DeleteOrder)
	r.POST("/orders/:id/items", api.AddOrderItems)
	r.GET("/orders/:id/total", api.GetOrderTotal)

	r.GET("/orderitems", api.ListOrderItems)
	r.GET("/orderitems/:id", api.GetOrderItem)
	r.POST("/orderitems", api.CreateOrderItem)
	r.PUT("/orderitems/:id", api.UpdateOrderItem)
	r.DELETE("/orderitems/:id", api.DeleteOrderItem)
}

// RequestID tags every request with an id for log correlation and
// echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// writeError maps store errors onto the API's status contract:
// validation failures are 400, unknown ids 404, everything else 500.
func writeError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
