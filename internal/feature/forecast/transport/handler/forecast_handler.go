// Package handler はforecastフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"econ_backend/internal/feature/forecast/transport/http/dto"
	"econ_backend/internal/feature/forecast/usecase"
	"econ_backend/internal/feature/rates/domain/entity"
)

// ForecastUsecase は予測生成のユースケースインターフェースを定義します。
type ForecastUsecase interface {
	Forecast(ctx context.Context, seriesID string, horizon int) ([]usecase.ForecastPoint, error)
}

// ForecastHandler は時系列予測のHTTPリクエストを処理します。
type ForecastHandler struct {
	uc ForecastUsecase
}

// NewForecastHandler は指定されたusecaseでForecastHandlerの新しいインスタンスを生成します。
func NewForecastHandler(uc ForecastUsecase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetForecastHandler はシリーズIDと予測期間数を受け取り、点予測と区間予測をJSONで返します。
//
// エンドポイント例:
// GET /forecast/DGS10?horizon=12
func (h *ForecastHandler) GetForecastHandler(c *gin.Context) {
	seriesID := c.Param("series_id")
	horizonStr := c.DefaultQuery("horizon", "12")
	horizon, _ := strconv.Atoi(horizonStr)

	points, err := h.uc.Forecast(c.Request.Context(), seriesID, horizon)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, usecase.ErrNotEnoughData) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.ForecastPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ForecastPointResponse{
			Date:  p.Date.UTC().Format(entity.DateLayout),
			Mean:  p.Mean,
			Lower: p.Lower,
			Upper: p.Upper,
		})
	}

	c.JSON(http.StatusOK, out)
}
