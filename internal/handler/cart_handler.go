package handler

import (
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service         service.CartService
	purchaseService service.PurchaseService
}

func NewCartHandler(service service.CartService, purchaseService service.PurchaseService) *CartHandler {
	return &CartHandler{service: service, purchaseService: purchaseService}
}

func (h *CartHandler) RegisterRoutes(authed *gin.RouterGroup) {
	router := authed.Group("/carts")
	{
		router.GET(":cid", h.GetCart)
		router.PUT(":cid", h.ReplaceCart)
		router.DELETE(":cid", h.ClearCart)
		router.POST(":cid/products/:pid", h.AddProduct)
		router.PUT(":cid/products/:pid", h.UpdateProduct)
		router.DELETE(":cid/products/:pid", h.RemoveProduct)
		router.POST(":cid/purchase", h.Purchase)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	cartID, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	cart, err := h.service.Get(c.Request.Context(), principal, cartID)
	if err != nil {
		respondError(c, err, "GetCart")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	principal, cartID, productID, ok := h.lineParams(c)
	if !ok {
		return
	}

	// body 可省略，數量預設為 1
	var req model.QuantityRequest
	if c.Request.ContentLength != 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.service.AddProduct(c.Request.Context(), principal, cartID, productID, quantity)
	if err != nil {
		respondError(c, err, "AddProduct")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

func (h *CartHandler) UpdateProduct(c *gin.Context) {
	principal, cartID, productID, ok := h.lineParams(c)
	if !ok {
		return
	}

	var req model.QuantityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "quantity is required",
		})
		return
	}

	cart, err := h.service.UpdateProductQuantity(c.Request.Context(), principal, cartID, productID, *req.Quantity)
	if err != nil {
		respondError(c, err, "UpdateProduct")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

func (h *CartHandler) RemoveProduct(c *gin.Context) {
	principal, cartID, productID, ok := h.lineParams(c)
	if !ok {
		return
	}

	cart, err := h.service.RemoveProduct(c.Request.Context(), principal, cartID, productID)
	if err != nil {
		respondError(c, err, "RemoveProduct")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

func (h *CartHandler) ReplaceCart(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	cartID, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	var req model.ReplaceCartRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	cart, err := h.service.ReplaceProducts(c.Request.Context(), principal, cartID, req)
	if err != nil {
		respondError(c, err, "ReplaceCart")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	cartID, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	cart, err := h.service.Clear(c.Request.Context(), principal, cartID)
	if err != nil {
		respondError(c, err, "ClearCart")
		return
	}
	respondSuccess(c, cart, http.StatusOK)
}

// Purchase 結帳；有開立憑證回 200，否則 400 並列出無法成交的明細
func (h *CartHandler) Purchase(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	cartID, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	result, err := h.purchaseService.CheckoutCart(c.Request.Context(), principal, cartID)
	if err != nil {
		respondError(c, err, "Purchase")
		return
	}

	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": result.Message,
			"payload": gin.H{
				"productsWithoutStock": result.Skipped,
				"failedProducts":       result.Failed,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": result.Message,
		"payload": gin.H{
			"ticket":               result.Ticket,
			"productsWithoutStock": result.Skipped,
			"failedProducts":       result.Failed,
		},
	})
}

func (h *CartHandler) lineParams(c *gin.Context) (model.Principal, int, int, bool) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return model.Principal{}, 0, 0, false
	}
	cartID, ok := ParamID(c, "cid")
	if !ok {
		return model.Principal{}, 0, 0, false
	}
	productID, ok := ParamID(c, "pid")
	if !ok {
		return model.Principal{}, 0, 0, false
	}
	return principal, cartID, productID, true
}
