package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kline_viewer/internal/api"
	"kline_viewer/internal/feature/chart/builder"
	"kline_viewer/internal/feature/chart/transport/handler"
	"kline_viewer/internal/feature/kline/domain/entity"
	klineusecase "kline_viewer/internal/feature/kline/usecase"
	"kline_viewer/internal/platform/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChartUsecase はChartUsecaseインターフェースのモック実装です。
type mockChartUsecase struct {
	GetChartFunc func(ctx context.Context, symbol string) (*charts.Kline, error)
}

func (m *mockChartUsecase) GetChart(ctx context.Context, symbol string) (*charts.Kline, error) {
	return m.GetChartFunc(ctx, symbol)
}

func sampleChart(symbol string) *charts.Kline {
	return builder.Build(symbol, builder.Reshape([]entity.Point{
		{Date: "2024-01-02", Open: 10, Close: 11, Low: 9, High: 12, Volume: 100},
		{Date: "2024-01-03", Open: 11, Close: 10, Low: 9.5, High: 11.5, Volume: 200},
	}))
}

func setupRouter(uc handler.ChartUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewChartHandler(uc)

	r := gin.New()
	r.GET("/stocks/:symbol/chart", h.GetPage)
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.Error())
	apiGroup.GET("/stocks/:symbol/chart", h.GetOption)
	return r
}

func TestChartHandler_GetOption(t *testing.T) {
	t.Run("success: returns echarts option", func(t *testing.T) {
		r := setupRouter(&mockChartUsecase{GetChartFunc: func(ctx context.Context, symbol string) (*charts.Kline, error) {
			return sampleChart(symbol), nil
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks/600519/chart", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Symbol string         `json:"symbol"`
			Option map[string]any `json:"option"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "600519", body.Symbol)
		assert.Len(t, body.Option["series"], 10)
		assert.Contains(t, w.Body.String(), "2024-01-03")
	})

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "error: upstream failure",
			err:            errors.New("stocksapi http 500"),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"` + api.LoadFailedMessage + `"}`,
		},
		{
			name:           "error: blank symbol",
			err:            klineusecase.ErrSymbolRequired,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol is required"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockChartUsecase{GetChartFunc: func(ctx context.Context, symbol string) (*charts.Kline, error) {
				return nil, tt.err
			}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks/600519/chart", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestChartHandler_GetPage(t *testing.T) {
	t.Run("success: renders html chart", func(t *testing.T) {
		r := setupRouter(&mockChartUsecase{GetChartFunc: func(ctx context.Context, symbol string) (*charts.Kline, error) {
			return sampleChart(symbol), nil
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stocks/600519/chart", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "echarts")
		assert.Contains(t, w.Body.String(), "600519")
		assert.NotContains(t, w.Body.String(), api.LoadFailedMessage)
	})

	t.Run("error: renders message in chart area", func(t *testing.T) {
		r := setupRouter(&mockChartUsecase{GetChartFunc: func(ctx context.Context, symbol string) (*charts.Kline, error) {
			return nil, errors.New("dial tcp: connection refused")
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stocks/600519/chart", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `id="chart"`)
		assert.Contains(t, w.Body.String(), api.LoadFailedMessage)
	})
}
