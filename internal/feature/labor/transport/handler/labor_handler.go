// Package handler はlaborフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/transport/http/dto"
)

// LaborUsecase は労働統計シリーズ取得のユースケースインターフェースを定義します。
type LaborUsecase interface {
	GetLaborSeries(ctx context.Context, seriesID, startYear, endYear string) ([]entity.Observation, error)
}

// LaborHandler は労働統計シリーズのHTTPリクエストを処理します。
type LaborHandler struct {
	uc LaborUsecase
}

// NewLaborHandler は指定されたusecaseでLaborHandlerの新しいインスタンスを生成します。
func NewLaborHandler(uc LaborUsecase) *LaborHandler {
	return &LaborHandler{uc: uc}
}

// GetLaborSeriesHandler はシリーズIDと年範囲を受け取り、正規化済み観測値をJSONで返します。
//
// エンドポイント例:
// GET /labor/LNS14000000?startyear=2015&endyear=2024
func (h *LaborHandler) GetLaborSeriesHandler(c *gin.Context) {
	seriesID := c.Param("series_id")
	startYear := c.Query("startyear")
	endYear := c.Query("endyear")

	obs, err := h.uc.GetLaborSeries(c.Request.Context(), seriesID, startYear, endYear)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrMissingAPIKey) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromObservations(obs))
}
