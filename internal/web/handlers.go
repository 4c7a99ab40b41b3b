package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techmart/storefront/internal/cart/app"
	"github.com/techmart/storefront/internal/catalog"
	"github.com/techmart/storefront/internal/notify"
	"github.com/techmart/storefront/internal/render"
)

// maxCardBytes bounds the product card fragment a client may post.
const maxCardBytes = 1 << 20

type Handlers struct {
	svc      *app.Service
	renderer *render.Renderer
	region   *notify.Region
	log      *slog.Logger
}

func NewHandlers(svc *app.Service, renderer *render.Renderer, region *notify.Region, log *slog.Logger) *Handlers {
	return &Handlers{svc: svc, renderer: renderer, region: region, log: log}
}

// ShowCart loads the persisted cart and renders the full page.
func (h *Handlers) ShowCart(c *gin.Context) {
	cart := h.svc.Snapshot(c.Request.Context())

	page, err := h.renderer.Page(cart, h.region.Current())
	if err != nil {
		h.log.Error("cart render failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// ApplyAction dispatches one cart mutation posted from the rendered page,
// then redirects back to a fresh render so the view can never stay stale.
func (h *Handlers) ApplyAction(c *gin.Context) {
	index, err := strconv.Atoi(c.PostForm("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	ctx := WithConfirmation(c.Request.Context(), c.PostForm("confirmed") == "1")
	action := app.Action(c.PostForm("action"))

	switch err := h.svc.ApplyAction(ctx, action, index, c.PostForm("value")); {
	case errors.Is(err, app.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	case errors.Is(err, app.ErrIndexOutOfRange):
		// Stale form, e.g. a double submit racing a removal. The fresh
		// render below re-derives every index.
		h.log.Warn("stale cart index", slog.Int("idx", index), slog.String("action", string(action)))
	case err != nil:
		// Write failures are logged, not surfaced; the redirect renders
		// the last durable state.
		h.log.Error("cart mutation failed", slog.String("action", string(action)), slog.Any("err", err))
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// AddItem consumes a product card fragment from the catalog page, extracts
// its descriptor, and merges it into the cart. Responds with the new badge
// count since the cart table is not visible from the catalog.
func (h *Handlers) AddItem(c *gin.Context) {
	body := io.LimitReader(c.Request.Body, maxCardBytes)
	d := catalog.ExtractDescriptor(body)
	if d.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product card has no name"})
		return
	}

	count, err := h.svc.AddItem(c.Request.Context(), d)
	if err != nil {
		h.log.Error("add to cart failed", slog.String("product", d.Name), slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Count reports the badge total for the page shell.
func (h *Handlers) Count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.svc.ItemCount(c.Request.Context())})
}
