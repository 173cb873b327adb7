// Package handler はbeaフィーチャーのHTTPハンドラーを提供します。
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

// BEAUsecase はNIPAテーブル取得のユースケースインターフェースを定義します。
type BEAUsecase interface {
	GetTable(ctx context.Context, table, frequency, year string) ([]entity.Observation, error)
}

// BEAHandler はNIPAテーブルのHTTPリクエストを処理します。
type BEAHandler struct {
	uc BEAUsecase
}

// NewBEAHandler は指定されたusecaseでBEAHandlerの新しいインスタンスを生成します。
func NewBEAHandler(uc BEAUsecase) *BEAHandler {
	return &BEAHandler{uc: uc}
}

// GetTableHandler はテーブル名・頻度・年を受け取り、正規化済み観測値をJSONで返します。
//
// エンドポイント例:
// GET /bea/T10101?frequency=Q&year=2023
func (h *BEAHandler) GetTableHandler(c *gin.Context) {
	table := c.Param("table")
	frequency := c.Query("frequency")
	year := c.Query("year")

	obs, err := h.uc.GetTable(c.Request.Context(), table, frequency, year)
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
