package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/transport/http/dto"
)

// ObservationsUsecase は観測値履歴取得のユースケースインターフェースを定義します。
type ObservationsUsecase interface {
	GetHistory(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error)
}

// ObservationsHandler は永続化ストアからの観測値履歴のHTTPリクエストを処理します。
type ObservationsHandler struct {
	uc ObservationsUsecase
}

// NewObservationsHandler は指定されたusecaseでObservationsHandlerの新しいインスタンスを生成します。
func NewObservationsHandler(uc ObservationsUsecase) *ObservationsHandler {
	return &ObservationsHandler{uc: uc}
}

// GetObservationsHandler はシリーズIDを受け取り、観測値履歴をJSONで返します。
//
// エンドポイント例:
// GET /observations/DGS10?limit=500
func (h *ObservationsHandler) GetObservationsHandler(c *gin.Context) {
	seriesID := c.Param("series_id")
	// 未指定の場合はデフォルト値を使用
	limitStr := c.DefaultQuery("limit", "500")
	limit, _ := strconv.Atoi(limitStr)

	obs, err := h.uc.GetHistory(c.Request.Context(), seriesID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromObservations(obs))
}
