package stocksapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	klineentity "kline_viewer/internal/feature/kline/domain/entity"
	klineusecase "kline_viewer/internal/feature/kline/usecase"
	"kline_viewer/internal/feature/symbollist/domain/entity"
	symbollistusecase "kline_viewer/internal/feature/symbollist/usecase"
	"kline_viewer/internal/platform/externalapi/stocksapi/dto"
)

// Client は株価APIから銘柄一覧と時系列データを取得します。
// リトライもキャッシュも行わず、レスポンスの各行はそのまま返します。
type Client struct {
	cfg  Config
	rest *resty.Client
}

// ClientがStockRepositoryとSeriesRepositoryを実装していることをコンパイル時に検証します。
var (
	_ symbollistusecase.StockRepository = (*Client)(nil)
	_ klineusecase.SeriesRepository     = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
// cfg.Timeout が正の場合は httpClient のタイムアウトより優先されます。
func NewClient(cfg Config, httpClient *http.Client) *Client {
	rest := resty.NewWithClient(httpClient).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	return &Client{cfg: cfg, rest: rest}
}

// ListStocks は GET /stocks/list を呼び出し、銘柄一覧を返します。
func (c *Client) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	var body []dto.StockItem
	if err := c.get(ctx, "/stocks/list", nil, &body); err != nil {
		return nil, err
	}

	stocks := make([]entity.Stock, 0, len(body))
	for _, s := range body {
		stocks = append(stocks, entity.Stock{Symbol: s.Symbol, Name: s.Name})
	}
	return stocks, nil
}

// GetKline は GET /stocks/{symbol}/kline を呼び出し、時系列を受信順のまま返します。
func (c *Client) GetKline(ctx context.Context, symbol string) ([]klineentity.Point, error) {
	var body dto.KlineResponse
	if err := c.get(ctx, "/stocks/{symbol}/kline", map[string]string{"symbol": symbol}, &body); err != nil {
		return nil, err
	}

	points := make([]klineentity.Point, 0, len(body.Data))
	for _, v := range body.Data {
		points = append(points, klineentity.Point{
			Date:   v.Date,
			Open:   v.Open,
			Close:  v.Close,
			Low:    v.Low,
			High:   v.High,
			Volume: v.Volume,
			MA20:   v.MA20,
			VolMA5: v.VolMA5,
			MACD:   v.MACD,
			DIFF:   v.DIFF,
			DEA:    v.DEA,
			K:      v.K,
			D:      v.D,
			J:      v.J,
		})
	}
	return points, nil
}

// get はGETリクエストを実行し、JSONボディをoutにデコードします。
func (c *Client) get(ctx context.Context, path string, pathParams map[string]string, out any) error {
	req := c.rest.R().SetContext(ctx)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	res, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("stocksapi request %s: %w", path, err)
	}
	if res.StatusCode() >= 400 {
		return fmt.Errorf("stocksapi http %d", res.StatusCode())
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("stocksapi decode %s: %w", path, err)
	}
	return nil
}
