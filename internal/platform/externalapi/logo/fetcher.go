// Package logo は企業ロゴ画像を上流から取得してそのまま中継するためのクライアントを提供します。
package logo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

const (
	providerName = "logo"

	// MaxImageBytes は中継する画像サイズの上限です（5 MiB）。
	MaxImageBytes int64 = 5 << 20

	// DefaultContentType は上流がContent-Typeを返さなかった場合の値です。
	DefaultContentType = "application/octet-stream"

	maxRedirects = 10
)

var (
	errRedirectNotAllowed = errors.New("redirect target is not allowed")
	errTooManyRedirects   = errors.New("too many redirects")
)

// Fetcher はHTTP経由で画像を取得するImageFetcher実装です。
type Fetcher struct {
	client *http.Client
}

var _ usecase.ImageFetcher = (*Fetcher)(nil)

// NewFetcher は指定されたHTTPクライアントでFetcherを生成します。
func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchImage はuの画像を取得します。
// リダイレクト先のホストがallowを満たさない場合はErrInvalidParameterを返します。
// allowがnilの場合は同一ホストへのリダイレクトのみ追従します。
// 上流が2xx以外を返した場合はUpstreamError、画像以外のContent-TypeならErrUpstreamを返します。
// 返されるBodyはMaxImageBytesを超えて読むとErrUpstreamを返します。
func (f *Fetcher) FetchImage(ctx context.Context, u *url.URL, allow usecase.HostPolicy) (entity.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return entity.Image{}, apperror.Wrap(apperror.ErrUpstream, "", err)
	}
	req.Header.Set("Accept", "image/*")

	res, err := f.clientFor(u, allow).Do(req)
	if err != nil {
		if errors.Is(err, errRedirectNotAllowed) {
			return entity.Image{}, apperror.Wrap(apperror.ErrInvalidParameter, "url host is not allowed", err)
		}
		return entity.Image{}, apperror.Wrap(apperror.ErrUpstream, "", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		closeBody(res.Body)
		return entity.Image{}, &apperror.UpstreamError{Provider: providerName, StatusCode: res.StatusCode}
	}
	if res.ContentLength > MaxImageBytes {
		closeBody(res.Body)
		return entity.Image{}, apperror.Wrap(apperror.ErrUpstream, "",
			fmt.Errorf("image too large: %d bytes", res.ContentLength))
	}

	ct := res.Header.Get("Content-Type")
	if ct == "" {
		ct = DefaultContentType
	}
	if !isImageType(ct) {
		closeBody(res.Body)
		return entity.Image{}, apperror.Wrap(apperror.ErrUpstream, "",
			fmt.Errorf("unexpected content type %q", ct))
	}

	return entity.Image{
		Body:          &limitedBody{rc: res.Body, remaining: MaxImageBytes},
		ContentType:   ct,
		ContentLength: res.ContentLength,
	}, nil
}

// clientFor はリダイレクト先をallowで検査するクライアントを返します。
// Transportは元のクライアントと共有します。
func (f *Fetcher) clientFor(origin *url.URL, allow usecase.HostPolicy) *http.Client {
	c := *f.client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return errTooManyRedirects
		}
		target := req.URL
		if target.Scheme != "http" && target.Scheme != "https" {
			return fmt.Errorf("%w: scheme %q", errRedirectNotAllowed, target.Scheme)
		}
		host := strings.ToLower(target.Hostname())
		if allow == nil {
			if host != strings.ToLower(origin.Hostname()) {
				return fmt.Errorf("%w: host %q", errRedirectNotAllowed, host)
			}
			return nil
		}
		if !allow(host) {
			return fmt.Errorf("%w: host %q", errRedirectNotAllowed, host)
		}
		return nil
	}
	return &c
}

// isImageType はContent-Typeがimage/*またはapplication/octet-streamかを判定します。
func isImageType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/") || mt == DefaultContentType
}

// limitedBody は読み取り量がremainingを超えた時点でエラーを返すReadCloserです。
// Content-Lengthのないチャンク転送でも上限を超えた画像を黙って切り詰めません。
type limitedBody struct {
	rc        io.ReadCloser
	remaining int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, errImageTooLarge()
	}
	// 上限を1バイトだけ超えて読み、超過を検出する
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.rc.Read(p)
	if int64(n) > b.remaining {
		n = int(b.remaining)
		b.remaining = -1
		return n, errImageTooLarge()
	}
	b.remaining -= int64(n)
	return n, err
}

func (b *limitedBody) Close() error { return b.rc.Close() }

func errImageTooLarge() error {
	return apperror.Wrap(apperror.ErrUpstream, "", fmt.Errorf("image exceeds %d bytes", MaxImageBytes))
}

func closeBody(c io.Closer) {
	if err := c.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close logo response body")
	}
}
