// Package entity はwishlistフィーチャーのドメインモデルを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem はユーザーがウォッチリストに登録した1銘柄です。
// (UserID, TickerSymbol) の組はストア側で一意です。
type WishlistItem struct {
	ID           uuid.UUID // 行ID
	UserID       string    // 所有ユーザー（Supabase AuthのユーザーID）
	TickerSymbol string    // 登録された銘柄コード（前後の空白を除去済み）
	CreatedAt    time.Time // 登録日時
}
