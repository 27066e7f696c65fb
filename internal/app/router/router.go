package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	candleshandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/transport/handler"
	markethandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/transport/handler"
	wishlisthandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/wishlist/transport/handler"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/http/handler"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/http/middleware"
	jwtmw "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/jwt"
)

// Deps はルーター構築に必要な依存をまとめたものです。
type Deps struct {
	Logger   *logrus.Logger
	Verifier jwtmw.TokenVerifier

	Market   *markethandler.MarketHandler
	Candles  *candleshandler.CandlesHandler
	Wishlist *wishlisthandler.WishlistHandler

	// AllowedOrigins が空の場合は全オリジンを許可
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		cors.New(corsConfig(d.AllowedOrigins)),
		middleware.Timeout(d.RequestTimeout),
		middleware.ErrorHandler(),
	)

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// 認証不要
	public := r.Group("/api")
	{
		public.GET("/search", d.Market.Search)
		public.GET("/profile", d.Market.Profile)
		public.GET("/quote", d.Market.Quote)
		public.GET("/candles", d.Candles.GetCandlesHandler)
		public.GET("/logo", d.Market.Logo)
		public.GET("/market", d.Market.Summary)
	}

	// 認証必須のルート
	// → Authorization: Bearer <Supabaseアクセストークン> が必要
	auth := r.Group("/api/wishlist")
	auth.Use(jwtmw.AuthRequired(d.Verifier))
	{
		auth.GET("", d.Wishlist.List)
		auth.POST("", d.Wishlist.Add)
		auth.DELETE("", d.Wishlist.Remove)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
