// Package handler はwishlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/domain/entity"
	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// レスポンスメッセージ
const (
	MsgAdded   = "Ticker added to wishlist!"
	MsgRemoved = "Ticker removed from wishlist."
)

// WishlistUsecase はウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WishlistUsecase interface {
	List(ctx context.Context, userID string) ([]entity.WishlistItem, error)
	Add(ctx context.Context, userID, ticker string) (entity.WishlistItem, error)
	Remove(ctx context.Context, userID, ticker string) error
}

// WishlistHandler はウォッチリストのHTTPリクエストを処理します。
// jwtmw.AuthRequiredの後ろに登録されることを前提とします。
type WishlistHandler struct {
	uc WishlistUsecase
}

// NewWishlistHandler は指定されたusecaseでWishlistHandlerの新しいインスタンスを生成します。
func NewWishlistHandler(uc WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// List は認証ユーザーのウォッチリストを返します。
//
// エンドポイント例:
// GET /api/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), c.GetString(jwtmw.ContextUserID))
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]api.WishlistItem, 0, len(items))
	for _, it := range items {
		out = append(out, toAPIItem(it))
	}
	c.JSON(http.StatusOK, out)
}

// Add は銘柄をウォッチリストに追加します。
//
// エンドポイント例:
// POST /api/wishlist {"ticker":"AAPL"}
func (h *WishlistHandler) Add(c *gin.Context) {
	ticker, err := bindTicker(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.uc.Add(c.Request.Context(), c.GetString(jwtmw.ContextUserID), ticker)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, api.WishlistMutationResponse{Message: MsgAdded, Data: toAPIItem(item)})
}

// Remove は銘柄をウォッチリストから削除します。未登録の銘柄でも200を返します。
//
// エンドポイント例:
// DELETE /api/wishlist {"ticker":"AAPL"}
func (h *WishlistHandler) Remove(c *gin.Context) {
	ticker, err := bindTicker(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.uc.Remove(c.Request.Context(), c.GetString(jwtmw.ContextUserID), ticker); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: MsgRemoved})
}

// bindTicker はJSONボディからtickerを取り出します。
// ボディが空の場合は空文字を返し、必須チェックはusecaseに任せます。
func bindTicker(c *gin.Context) (string, error) {
	var req api.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", apperror.Wrap(apperror.ErrInvalidParameter, "invalid request body", err)
	}
	if req.Ticker == nil {
		return "", nil
	}
	return *req.Ticker, nil
}

func toAPIItem(it entity.WishlistItem) api.WishlistItem {
	return api.WishlistItem{
		Id:           it.ID,
		TickerSymbol: it.TickerSymbol,
		CreatedAt:    it.CreatedAt,
	}
}
