package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huntersguild/trading-post-api/internal/api/handler/v1/request"
	"github.com/huntersguild/trading-post-api/internal/api/handler/v1/response"
	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/inventory"
	"github.com/huntersguild/trading-post-api/internal/service"
)

type TradingService interface {
	AddStock(ctx context.Context, itemID string, quantity int) (int, error)
	RemoveStock(ctx context.Context, itemID string, quantity int) (int, error)
	StockLevel(ctx context.Context, itemID string) (int, error)
	ListStock() []inventory.StockRecord
	RecordSale(ctx context.Context, hunterID string, itemIDs []string) (domain.Transaction, error)
	RecordPurchase(ctx context.Context, merchantID string, itemIDs []string) (domain.Transaction, error)
	RecordReturn(ctx context.Context, partyKind domain.CounterpartyKind, partyID string, itemIDs []string, reason string) (domain.Transaction, error)
	ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]domain.Transaction, error)
	Report() service.EconomicReport
	MostSoldItem(ctx context.Context) (domain.Item, bool, error)
}

type TradingHandler struct {
	svc TradingService
}

func NewTradingHandler(svc TradingService) *TradingHandler {
	return &TradingHandler{
		svc: svc,
	}
}

// HandleListStock godoc
// @Summary      List all stock records
// @Description  Returns one record per item currently in stock, sorted by item ID.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  inventory.StockRecord
// @Router       /stock [get]
// @Security BearerAuth
func (h *TradingHandler) HandleListStock(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ListStock())
}

// HandleGetStockLevel godoc
// @Summary      Get the stock level of an item
// @Description  Returns zero for a registered item that is not in stock.
// @Tags         stock
// @Produce      json
// @Param        itemID  path      string  true  "item ID"
// @Success      200     {object}  response.StockLevelResponse
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /stock/{itemID} [get]
// @Security BearerAuth
func (h *TradingHandler) HandleGetStockLevel(ctx *gin.Context) {
	id := ctx.Param("itemID")

	level, err := h.svc.StockLevel(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUnknownItem) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetStockLevel -> h.svc.StockLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StockLevelResponse{
		ItemID:   id,
		Quantity: level,
	})
}

// HandleAddStock godoc
// @Summary      Add units of an item to stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request  body      request.StockAdjustmentRequest  true  "request body"
// @Success      200      {object}  response.StockLevelResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock/add [post]
// @Security BearerAuth
func (h *TradingHandler) HandleAddStock(ctx *gin.Context) {
	var req request.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.AddStock(ctx.Request.Context(), req.ItemID, req.Quantity)
	if err != nil {
		h.renderStockErr(ctx, "v1.HandleAddStock", req.ItemID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.StockLevelResponse{
		ItemID:   req.ItemID,
		Quantity: level,
	})
}

// HandleRemoveStock godoc
// @Summary      Remove units of an item from stock
// @Description  Fails with 422 when fewer units are in stock than requested.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request  body      request.StockAdjustmentRequest  true  "request body"
// @Success      200      {object}  response.StockLevelResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock/remove [post]
// @Security BearerAuth
func (h *TradingHandler) HandleRemoveStock(ctx *gin.Context) {
	var req request.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.RemoveStock(ctx.Request.Context(), req.ItemID, req.Quantity)
	if err != nil {
		h.renderStockErr(ctx, "v1.HandleRemoveStock", req.ItemID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.StockLevelResponse{
		ItemID:   req.ItemID,
		Quantity: level,
	})
}

// HandleRecordSale godoc
// @Summary      Record a sale to a hunter
// @Description  Every listed item must be in stock; duplicate IDs count as
// @Description  multiple units of the same item. Either the whole sale is
// @Description  recorded or nothing changes.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecordSaleRequest  true  "request body"
// @Success      201      {object}  domain.Transaction
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions/sales [post]
// @Security BearerAuth
func (h *TradingHandler) HandleRecordSale(ctx *gin.Context) {
	var req request.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transaction, err := h.svc.RecordSale(ctx.Request.Context(), req.HunterID, req.ItemIDs)
	if err != nil {
		h.renderTransactionErr(ctx, "v1.HandleRecordSale", err)
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}

// HandleRecordPurchase godoc
// @Summary      Record a purchase from a merchant
// @Description  Each listed item adds one unit to stock, so a duplicated ID
// @Description  adds one unit per occurrence.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecordPurchaseRequest  true  "request body"
// @Success      201      {object}  domain.Transaction
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions/purchases [post]
// @Security BearerAuth
func (h *TradingHandler) HandleRecordPurchase(ctx *gin.Context) {
	var req request.RecordPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transaction, err := h.svc.RecordPurchase(ctx.Request.Context(), req.MerchantID, req.ItemIDs)
	if err != nil {
		h.renderTransactionErr(ctx, "v1.HandleRecordPurchase", err)
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}

// HandleRecordReturn godoc
// @Summary      Record a return by a hunter or a merchant
// @Description  A hunter return adds the items back to stock; a merchant
// @Description  return sends them back and removes them, which requires the
// @Description  items to be in stock.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecordReturnRequest  true  "request body"
// @Success      201      {object}  domain.Transaction
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions/returns [post]
// @Security BearerAuth
func (h *TradingHandler) HandleRecordReturn(ctx *gin.Context) {
	var req request.RecordReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transaction, err := h.svc.RecordReturn(
		ctx.Request.Context(),
		domain.CounterpartyKind(req.PartyKind),
		req.PartyID,
		req.ItemIDs,
		req.Reason,
	)
	if err != nil {
		h.renderTransactionErr(ctx, "v1.HandleRecordReturn", err)
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}

// HandleListTransactions godoc
// @Summary      List transactions
// @Description  Optional query filters: kind (sale|purchase|return), item_id,
// @Description  day (RFC 3339 date), from and to (RFC 3339 dates, inclusive).
// @Tags         transactions
// @Produce      json
// @Param        kind     query     string  false  "transaction kind"
// @Param        item_id  query     string  false  "item ID"
// @Param        day      query     string  false  "calendar day, e.g. 2024-03-01"
// @Param        from     query     string  false  "range start day"
// @Param        to       query     string  false  "range end day"
// @Success      200      {array}   domain.Transaction
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /transactions [get]
// @Security BearerAuth
func (h *TradingHandler) HandleListTransactions(ctx *gin.Context) {
	filter, err := parseTransactionFilter(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transactions, err := h.svc.ListTransactions(ctx.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrUnknownItem) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", filter.ItemID))
			return
		}

		err = fmt.Errorf("v1.HandleListTransactions -> h.svc.ListTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleGetReport godoc
// @Summary      Get the economic report
// @Description  Crown totals earned by sales, spent on purchases, moved by
// @Description  returns, and the resulting net.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  service.EconomicReport
// @Router       /reports/economic [get]
// @Security BearerAuth
func (h *TradingHandler) HandleGetReport(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Report())
}

// HandleGetMostSoldItem godoc
// @Summary      Get the item appearing in the most transactions
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.MostSoldItemResponse
// @Failure      500  {object}  response.Err
// @Router       /reports/most-sold [get]
// @Security BearerAuth
func (h *TradingHandler) HandleGetMostSoldItem(ctx *gin.Context) {
	item, ok, err := h.svc.MostSoldItem(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMostSoldItem -> h.svc.MostSoldItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	resp := response.MostSoldItemResponse{Found: ok}
	if ok {
		resp.Item = &item
	}

	ctx.JSON(http.StatusOK, resp)
}

func (h *TradingHandler) renderStockErr(ctx *gin.Context, op, itemID string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownItem):
		response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
	case errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
	default:
		err = fmt.Errorf("%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func (h *TradingHandler) renderTransactionErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownParty), errors.Is(err, service.ErrUnknownItem):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
	default:
		err = fmt.Errorf("%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func parseTransactionFilter(ctx *gin.Context) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		Kind:   domain.TransactionKind(ctx.Query("kind")),
		ItemID: ctx.Query("item_id"),
	}

	if filter.Kind != "" && !filter.Kind.IsValid() {
		return service.TransactionFilter{}, fmt.Errorf("invalid transaction kind %q", filter.Kind)
	}

	if day := ctx.Query("day"); day != "" {
		t, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return service.TransactionFilter{}, fmt.Errorf("invalid day %q: %w", day, err)
		}
		filter.Day = &t
	}

	from, to := ctx.Query("from"), ctx.Query("to")
	if (from == "") != (to == "") {
		return service.TransactionFilter{}, errors.New("from and to must be provided together")
	}
	if from != "" {
		start, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return service.TransactionFilter{}, fmt.Errorf("invalid from %q: %w", from, err)
		}
		end, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return service.TransactionFilter{}, fmt.Errorf("invalid to %q: %w", to, err)
		}
		// The range filter is inclusive, so push the end to the last
		// instant of its day.
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.From = &start
		filter.To = &end
	}

	return filter, nil
}
