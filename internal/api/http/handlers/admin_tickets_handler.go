package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-bot/internal/api/dto"
	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/service"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

// AdminTicketsHandler exposes ticket management to the admin API.
type AdminTicketsHandler struct {
	support *service.SupportService
}

// NewAdminTicketsHandler builds the handler.
func NewAdminTicketsHandler(support *service.SupportService) *AdminTicketsHandler {
	return &AdminTicketsHandler{support: support}
}

// List returns all tickets, optionally filtered by ?status=.
func (h *AdminTicketsHandler) List(c *fiber.Ctx) error {
	status := domain.TicketStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		return apperrors.NewValidationError("unknown ticket status", map[string]any{"status": status})
	}

	tickets := h.support.Tickets(status)
	return c.JSON(dto.TicketListResponse{Tickets: tickets, Total: len(tickets)})
}

// Get returns a single ticket.
func (h *AdminTicketsHandler) Get(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}

	ticket, err := h.support.TicketByID(ticketID)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// Respond appends an admin response; the ticket owner is notified.
func (h *AdminTicketsHandler) Respond(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	response, err := h.support.AddResponse(c.UserContext(), ticketID, req.AdminID, req.Message, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// Resolve marks a ticket resolved with resolution text.
func (h *AdminTicketsHandler) Resolve(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	var req dto.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	if err := h.support.Resolve(c.UserContext(), ticketID, req.Resolution, req.AdminID); err != nil {
		return err
	}
	ticket, err := h.support.TicketByID(ticketID)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// UpdateStatus moves a ticket to a new lifecycle state.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	status := domain.TicketStatus(req.Status)
	if err := h.support.UpdateStatus(c.UserContext(), ticketID, status, req.AdminID, req.Note); err != nil {
		return err
	}
	ticket, err := h.support.TicketByID(ticketID)
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}
