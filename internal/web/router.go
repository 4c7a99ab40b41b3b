package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the cart routes onto a fresh engine.
func NewRouter(h *Handlers, log *slog.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/cart") })
	r.GET("/cart", h.ShowCart)
	r.POST("/cart/action", h.ApplyAction)
	r.POST("/cart/items", h.AddItem)
	r.GET("/cart/count", h.Count)

	return r
}
