package handler

import (
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// 商品列表公開，新增與補貨限管理者
func (h *ProductHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	router := public.Group("/products")
	{
		router.GET("", h.ListProducts)
		router.GET(":pid", h.GetProduct)
	}

	adminRouter := admin.Group("/products")
	{
		adminRouter.POST("", h.CreateProduct)
		adminRouter.POST(":pid/restock", h.RestockProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "ListProducts")
		return
	}
	respondSuccess(c, products, http.StatusOK)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := ParamID(c, "pid")
	if !ok {
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "GetProduct")
		return
	}
	respondSuccess(c, product, http.StatusOK)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "CreateProduct")
		return
	}
	respondSuccess(c, product, http.StatusCreated)
}

func (h *ProductHandler) RestockProduct(c *gin.Context) {
	id, ok := ParamID(c, "pid")
	if !ok {
		return
	}

	var req model.RestockRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	product, err := h.service.Restock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "RestockProduct")
		return
	}
	respondSuccess(c, product, http.StatusOK)
}
