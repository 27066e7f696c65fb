// Package usecase はウォッチリスト操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// MsgTickerRequired は銘柄コードが空の場合のメッセージです。
const MsgTickerRequired = "ticker symbol is required"

// WishlistRepository はユーザー単位でスコープされたウォッチリストの永続化を抽象化します。
// 実装はすべてのクエリをuserIDで絞り込む必要があります。
type WishlistRepository interface {
	List(ctx context.Context, userID string) ([]entity.WishlistItem, error)
	Add(ctx context.Context, userID, ticker string) (entity.WishlistItem, error)
	Remove(ctx context.Context, userID, ticker string) error
}

// wishlistUsecase はウォッチリスト操作のユースケースを定義します。
type wishlistUsecase struct {
	repo WishlistRepository
}

// NewWishlistUsecase はwishlistUsecaseの新しいインスタンスを生成します。
func NewWishlistUsecase(repo WishlistRepository) *wishlistUsecase {
	return &wishlistUsecase{repo: repo}
}

// List はユーザーのウォッチリストを返します。
func (u *wishlistUsecase) List(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	if userID == "" {
		return nil, apperror.New(apperror.ErrUnauthenticated, "")
	}
	return u.repo.List(ctx, userID)
}

// Add は銘柄をウォッチリストに追加し、作成された行を返します。
// 登録済みの場合はErrConflictを返します。
func (u *wishlistUsecase) Add(ctx context.Context, userID, ticker string) (entity.WishlistItem, error) {
	if userID == "" {
		return entity.WishlistItem{}, apperror.New(apperror.ErrUnauthenticated, "")
	}
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return entity.WishlistItem{}, apperror.New(apperror.ErrMissingParameter, MsgTickerRequired)
	}
	return u.repo.Add(ctx, userID, ticker)
}

// Remove は銘柄をウォッチリストから削除します。未登録でも成功します。
func (u *wishlistUsecase) Remove(ctx context.Context, userID, ticker string) error {
	if userID == "" {
		return apperror.New(apperror.ErrUnauthenticated, "")
	}
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return apperror.New(apperror.ErrMissingParameter, MsgTickerRequired)
	}
	return u.repo.Remove(ctx, userID, ticker)
}
