// Package adapters はwishlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// MsgDuplicateTicker は同じ銘柄を二重登録しようとした場合のメッセージです。
const MsgDuplicateTicker = "ticker already in wishlist"

// pgUniqueViolation はPostgresの一意制約違反のSQLSTATEです。
const pgUniqueViolation = "23505"

// WishlistModel はSupabaseのwishlistテーブルに対応するgormモデルです。
type WishlistModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"type:text;not null;uniqueIndex:idx_wishlist_user_ticker,priority:1"`
	TickerSymbol string    `gorm:"type:text;not null;uniqueIndex:idx_wishlist_user_ticker,priority:2"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName はテーブル名を "wishlist" に固定します。
func (WishlistModel) TableName() string { return "wishlist" }

// BeforeCreate はIDが未設定であれば新しいUUIDを割り当てます。
func (m *WishlistModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *WishlistModel) toEntity() entity.WishlistItem {
	return entity.WishlistItem{
		ID:           m.ID,
		UserID:       m.UserID,
		TickerSymbol: m.TickerSymbol,
		CreatedAt:    m.CreatedAt,
	}
}

// wishlistGorm はWishlistRepositoryインターフェースのgorm実装です。
type wishlistGorm struct {
	db *gorm.DB
}

var _ usecase.WishlistRepository = (*wishlistGorm)(nil)

// NewWishlistRepository は指定されたDB接続でwishlistGormリポジトリの新しいインスタンスを生成します。
func NewWishlistRepository(db *gorm.DB) *wishlistGorm {
	return &wishlistGorm{db: db}
}

// List はユーザーの登録銘柄を登録順に返します。
func (r *wishlistGorm) List(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	var rows []WishlistModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, storeError(err)
	}

	out := make([]entity.WishlistItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Add は(userID, ticker)の行を作成して返します。
// 一意制約違反はErrConflict、それ以外の失敗はErrStoreになります。
func (r *wishlistGorm) Add(ctx context.Context, userID, ticker string) (entity.WishlistItem, error) {
	row := WishlistModel{UserID: userID, TickerSymbol: ticker}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entity.WishlistItem{}, apperror.Wrap(apperror.ErrConflict, MsgDuplicateTicker, err)
		}
		return entity.WishlistItem{}, storeError(err)
	}
	return row.toEntity(), nil
}

// Remove はユーザーの行のうちtickerに一致するものを削除します。
// 該当行がなくても成功として扱います。
func (r *wishlistGorm) Remove(ctx context.Context, userID, ticker string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ticker_symbol = ?", userID, ticker).
		Delete(&WishlistModel{}).Error; err != nil {
		return storeError(err)
	}
	return nil
}

// isUniqueViolation はTranslateError経由のErrDuplicatedKeyと、
// 変換されずに届いたpgconn.PgError(23505)の両方を一意制約違反とみなします。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// storeError は原因（context.DeadlineExceededを含む）を保持したままErrStoreに分類します。
func storeError(err error) error {
	return apperror.Wrap(apperror.ErrStore, "", err)
}
