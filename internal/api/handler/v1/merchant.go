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

type MerchantService interface {
	CreateMerchant(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error)
	GetMerchant(ctx context.Context, id string) (domain.Merchant, error)
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
	UpdateMerchant(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error)
	DeleteMerchant(ctx context.Context, id string) error
}

type MerchantHandler struct {
	svc MerchantService
}

func NewMerchantHandler(svc MerchantService) *MerchantHandler {
	return &MerchantHandler{
		svc: svc,
	}
}

// HandleListMerchants godoc
// @Summary      List merchants
// @Tags         merchants
// @Produce      json
// @Success      200  {array}   domain.Merchant
// @Failure      500  {object}  response.Err
// @Router       /merchants [get]
// @Security BearerAuth
func (h *MerchantHandler) HandleListMerchants(ctx *gin.Context) {
	merchants, err := h.svc.ListMerchants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMerchants -> h.svc.ListMerchants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, merchants)
}

// HandleGetMerchant godoc
// @Summary      Get a merchant by ID
// @Tags         merchants
// @Produce      json
// @Param        merchantID  path      string  true  "merchant ID"
// @Success      200         {object}  domain.Merchant
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /merchants/{merchantID} [get]
// @Security BearerAuth
func (h *MerchantHandler) HandleGetMerchant(ctx *gin.Context) {
	id := ctx.Param("merchantID")

	merchant, err := h.svc.GetMerchant(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMerchantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("merchant", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetMerchant -> h.svc.GetMerchant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, merchant)
}

// HandleCreateMerchant godoc
// @Summary      Create a merchant
// @Tags         merchants
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateMerchantRequest  true  "request body"
// @Success      201      {object}  domain.Merchant
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /merchants [post]
// @Security BearerAuth
func (h *MerchantHandler) HandleCreateMerchant(ctx *gin.Context) {
	var req request.CreateMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	merchant, err := domain.NewMerchant(req.ID, req.Name, domain.Profession(req.Profession), req.Location)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateMerchant(ctx.Request.Context(), merchant)
	if err != nil {
		if errors.Is(err, service.ErrMerchantIDExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMerchantIDExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateMerchant -> h.svc.CreateMerchant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateMerchant godoc
// @Summary      Update a merchant
// @Tags         merchants
// @Accept       json
// @Produce      json
// @Param        merchantID  path      string                         true  "merchant ID"
// @Param        request     body      request.UpdateMerchantRequest  true  "request body"
// @Success      200         {object}  domain.Merchant
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /merchants/{merchantID} [put]
// @Security BearerAuth
func (h *MerchantHandler) HandleUpdateMerchant(ctx *gin.Context) {
	id := ctx.Param("merchantID")

	var req request.UpdateMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	merchant, err := domain.NewMerchant(id, req.Name, domain.Profession(req.Profession), req.Location)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateMerchant(ctx.Request.Context(), merchant)
	if err != nil {
		if errors.Is(err, service.ErrMerchantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("merchant", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateMerchant -> h.svc.UpdateMerchant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteMerchant godoc
// @Summary      Delete a merchant
// @Tags         merchants
// @Produce      json
// @Param        merchantID  path  string  true  "merchant ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /merchants/{merchantID} [delete]
// @Security BearerAuth
func (h *MerchantHandler) HandleDeleteMerchant(ctx *gin.Context) {
	id := ctx.Param("merchantID")

	if err := h.svc.DeleteMerchant(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMerchantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("merchant", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteMerchant -> h.svc.DeleteMerchant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
