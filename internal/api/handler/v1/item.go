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

type ItemService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List items
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
// @Security BearerAuth
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get an item by ID
// @Tags         items
// @Produce      json
// @Param        itemID  path      string  true  "item ID"
// @Success      200     {object}  domain.Item
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [get]
// @Security BearerAuth
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	item, err := h.svc.GetItem(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Description  Creates an armor, weapon or potion. The ID is derived from
// @Description  the kind and the sequence number (e.g. "W-12").
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateItemRequest  true  "request body"
// @Success      201      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var (
		item domain.Item
		err  error
	)

	switch domain.ItemKind(req.Kind) {
	case domain.KindArmor:
		item, err = domain.NewArmor(req.Seq, req.Name, req.Description, domain.Material(req.Material), req.Weight, req.Price)
	case domain.KindWeapon:
		item, err = domain.NewWeapon(req.Seq, req.Name, req.Description, domain.Material(req.Material), req.Weight, req.Price)
	case domain.KindPotion:
		item, err = domain.NewPotion(req.Seq, req.Name, req.Description, domain.Material(req.Material), req.Weight, req.Price, domain.Effect(req.Effect))
	default:
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid item kind %q", req.Kind)))
		return
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), item)
	if err != nil {
		if errors.Is(err, service.ErrItemIDExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemIDExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateItem godoc
// @Summary      Update an item's descriptive fields
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      string                     true  "item ID"
// @Param        request  body      request.UpdateItemRequest  true  "request body"
// @Success      200      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [put]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	existing, err := h.svc.GetItem(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !domain.Material(req.Material).IsValidFor(existing.Kind) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("material %q is not valid for kind %q", req.Material, existing.Kind)))
		return
	}
	if existing.Kind == domain.KindPotion && !domain.Effect(req.Effect).IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid potion effect %q", req.Effect)))
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Material = domain.Material(req.Material)
	existing.Weight = req.Weight
	existing.Price = req.Price
	existing.Effect = domain.Effect(req.Effect)

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        itemID  path  string  true  "item ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	if err := h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
