package handler

import (
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	router := authed.Group("/tickets")
	{
		router.GET("mine", h.ListMine)
		router.GET(":tid", h.GetTicket)
	}

	adminRouter := admin.Group("/tickets")
	{
		adminRouter.GET("", h.ListTickets)
		adminRouter.GET("sales", h.TotalSales)
		adminRouter.GET("code/:code", h.GetTicketByCode)
		adminRouter.PATCH(":tid/status", h.UpdateStatus)
	}
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := ParamID(c, "tid")
	if !ok {
		return
	}

	ticket, err := h.service.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err, "GetTicket")
		return
	}
	respondSuccess(c, ticket, http.StatusOK)
}

// ListMine 只回傳摘要
func (h *TicketHandler) ListMine(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	tickets, err := h.service.ListMine(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, "ListMyTickets")
		return
	}

	summaries := make([]model.TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, t.Summary())
	}
	respondSuccess(c, summaries, http.StatusOK)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	var filter model.TicketFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	tickets, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "ListTickets")
		return
	}
	respondSuccess(c, tickets, http.StatusOK)
}

func (h *TicketHandler) GetTicketByCode(c *gin.Context) {
	ticket, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "GetTicketByCode")
		return
	}
	respondSuccess(c, ticket, http.StatusOK)
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParamID(c, "tid")
	if !ok {
		return
	}

	var req model.UpdateTicketStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "UpdateTicketStatus")
		return
	}
	respondSuccess(c, ticket, http.StatusOK)
}

func (h *TicketHandler) TotalSales(c *gin.Context) {
	var r model.SalesRange
	if err := BindQuery(c, &r); err != nil {
		return
	}

	total, err := h.service.TotalSales(c.Request.Context(), r)
	if err != nil {
		respondError(c, err, "TotalSales")
		return
	}
	respondSuccess(c, gin.H{"total": total}, http.StatusOK)
}
