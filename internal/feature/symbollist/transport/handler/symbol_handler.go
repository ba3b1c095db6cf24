// Package handler はsymbollistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"kline_viewer/internal/api"
	"kline_viewer/internal/feature/symbollist/domain/entity"
	"kline_viewer/internal/feature/symbollist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// SymbolUsecase は銘柄一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	Search(ctx context.Context, query string) ([]entity.Stock, error)
}

// SymbolHandler は銘柄一覧に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は銘柄一覧を返すAPIです。クエリ q が指定された場合は銘柄コードまたは名称の部分一致で絞り込みます。
// 上流APIの取得に失敗した場合は固定のエラーメッセージで502を返します。
//
// エンドポイント例:
// GET /api/stocks?q=茅台
func (h *SymbolHandler) List(c *gin.Context) {
	stocks, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		slog.Error("failed to list stocks", "error", err)
		_ = c.Error(api.ErrUpstream)
		return
	}

	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockItem{Symbol: s.Symbol, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
