package handler

import (
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.POST("/users", h.Register)
	authed.GET("/users/me", h.Me)
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
	})
	if err != nil {
		respondError(c, err, "RegisterUser")
		return
	}
	respondSuccess(c, user, http.StatusCreated)
}

func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err, "GetCurrentUser")
		return
	}
	respondSuccess(c, user, http.StatusOK)
}
