// Package handler はratesフィーチャーのHTTPハンドラーを提供します。
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

// RatesUsecase は金利バンドル取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RatesUsecase interface {
	GetRatesBundle(ctx context.Context, observationStart string, useCache, writeCache bool) ([]entity.Observation, error)
}

// RatesHandler は金利バンドルのHTTPリクエストを処理します。
type RatesHandler struct {
	uc RatesUsecase
}

// NewRatesHandler は指定されたusecaseでRatesHandlerの新しいインスタンスを生成します。
func NewRatesHandler(uc RatesUsecase) *RatesHandler {
	return &RatesHandler{uc: uc}
}

// GetRatesHandler は金利バンドルの正規化済み観測値をJSONで返します。
//
// エンドポイント例:
// GET /rates?observation_start=2020-01-01&use_cache=true&cache=true
func (h *RatesHandler) GetRatesHandler(c *gin.Context) {
	observationStart := c.Query("observation_start")
	useCache := c.DefaultQuery("use_cache", "true") == "true"
	writeCache := c.DefaultQuery("cache", "true") == "true"

	obs, err := h.uc.GetRatesBundle(c.Request.Context(), observationStart, useCache, writeCache)
	if err != nil {
		c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromObservations(obs))
}

// statusFor はドメインエラーをHTTPステータスコードにマッピングします。
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrCacheCorrupted):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
