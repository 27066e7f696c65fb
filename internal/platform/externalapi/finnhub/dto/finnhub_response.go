// Package dto はFinnhub APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// SearchResponse は /search エンドポイントのJSONレスポンスを表します。
type SearchResponse struct {
	Count  int            `json:"count"`
	Result []SearchResult `json:"result"`
}

// SearchResult は銘柄検索の1件分です。
type SearchResult struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}

// ProfileResponse は /stock/profile2 エンドポイントのJSONレスポンスを表します。
// 未知の銘柄では空オブジェクト {} が返ります。
type ProfileResponse struct {
	Country              string   `json:"country"`
	Currency             string   `json:"currency"`
	Exchange             string   `json:"exchange"`
	FinnhubIndustry      string   `json:"finnhubIndustry"`
	IPO                  string   `json:"ipo"`
	Logo                 string   `json:"logo"`
	MarketCapitalization *float64 `json:"marketCapitalization"`
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	ShareOutstanding     *float64 `json:"shareOutstanding"`
	Ticker               string   `json:"ticker"`
	WebURL               string   `json:"weburl"`
}

// QuoteResponse は /quote エンドポイントのJSONレスポンスを表します。
// d と dp は取引のない銘柄で null になります。
type QuoteResponse struct {
	C  float64  `json:"c"`
	D  *float64 `json:"d"`
	DP *float64 `json:"dp"`
	H  float64  `json:"h"`
	L  float64  `json:"l"`
	O  float64  `json:"o"`
	PC float64  `json:"pc"`
	T  int64    `json:"t"`
}

// ErrorResponse はエラー時にFinnhubが返すJSONボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
