package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntersguild/trading-post-api/internal/api/handler/v1/request"
	"github.com/huntersguild/trading-post-api/internal/api/handler/v1/response"
	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/service"
)

type HunterService interface {
	CreateHunter(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error)
	GetHunter(ctx context.Context, id string) (domain.Hunter, error)
	ListHunters(ctx context.Context) ([]domain.Hunter, error)
	UpdateHunter(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error)
	DeleteHunter(ctx context.Context, id string) error
}

type HunterHandler struct {
	svc HunterService
}

func NewHunterHandler(svc HunterService) *HunterHandler {
	return &HunterHandler{
		svc: svc,
	}
}

// HandleListHunters godoc
// @Summary      List hunters
// @Tags         hunters
// @Produce      json
// @Success      200  {array}   domain.Hunter
// @Failure      500  {object}  response.Err
// @Router       /hunters [get]
// @Security BearerAuth
func (h *HunterHandler) HandleListHunters(ctx *gin.Context) {
	hunters, err := h.svc.ListHunters(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListHunters -> h.svc.ListHunters -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hunters)
}

// HandleGetHunter godoc
// @Summary      Get a hunter by ID
// @Tags         hunters
// @Produce      json
// @Param        hunterID  path      string  true  "hunter ID"
// @Success      200       {object}  domain.Hunter
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /hunters/{hunterID} [get]
// @Security BearerAuth
func (h *HunterHandler) HandleGetHunter(ctx *gin.Context) {
	id := ctx.Param("hunterID")

	hunter, err := h.svc.GetHunter(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHunterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hunter", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetHunter -> h.svc.GetHunter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hunter)
}

// HandleCreateHunter godoc
// @Summary      Create a hunter
// @Tags         hunters
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateHunterRequest  true  "request body"
// @Success      201      {object}  domain.Hunter
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /hunters [post]
// @Security BearerAuth
func (h *HunterHandler) HandleCreateHunter(ctx *gin.Context) {
	var req request.CreateHunterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hunter, err := domain.NewHunter(req.ID, req.Name, domain.Race(req.Race), req.Location)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateHunter(ctx.Request.Context(), hunter)
	if err != nil {
		if errors.Is(err, service.ErrHunterIDExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrHunterIDExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateHunter -> h.svc.CreateHunter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateHunter godoc
// @Summary      Update a hunter
// @Tags         hunters
// @Accept       json
// @Produce      json
// @Param        hunterID  path      string                       true  "hunter ID"
// @Param        request   body      request.UpdateHunterRequest  true  "request body"
// @Success      200       {object}  domain.Hunter
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /hunters/{hunterID} [put]
// @Security BearerAuth
func (h *HunterHandler) HandleUpdateHunter(ctx *gin.Context) {
	id := ctx.Param("hunterID")

	var req request.UpdateHunterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hunter, err := domain.NewHunter(id, req.Name, domain.Race(req.Race), req.Location)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateHunter(ctx.Request.Context(), hunter)
	if err != nil {
		if errors.Is(err, service.ErrHunterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hunter", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateHunter -> h.svc.UpdateHunter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteHunter godoc
// @Summary      Delete a hunter
// @Tags         hunters
// @Produce      json
// @Param        hunterID  path  string  true  "hunter ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hunters/{hunterID} [delete]
// @Security BearerAuth
func (h *HunterHandler) HandleDeleteHunter(ctx *gin.Context) {
	id := ctx.Param("hunterID")

	if err := h.svc.DeleteHunter(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHunterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hunter", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteHunter -> h.svc.DeleteHunter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
