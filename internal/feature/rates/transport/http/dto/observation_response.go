// Package dto defines HTTP response DTOs for normalized observations.
package dto

import "econ_backend/internal/feature/rates/domain/entity"

// ObservationResponse は正規化済み観測値のレスポンスDTOです。
type ObservationResponse struct {
	SeriesID string  `json:"series_id"` // シリーズID
	Date     string  `json:"date"`      // 日付（YYYY-MM-DD）
	Value    float64 `json:"value"`     // 観測値
	Label    string  `json:"label"`     // 表示ラベル
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromObservations は正規化済み観測値をレスポンスDTOに変換します。
func FromObservations(obs []entity.Observation) []ObservationResponse {
	out := make([]ObservationResponse, 0, len(obs))
	for _, o := range obs {
		// 正規化済みの観測値に欠損値は含まれない
		var v float64
		if o.Value != nil {
			v = *o.Value
		}
		out = append(out, ObservationResponse{
			SeriesID: o.SeriesID,
			Date:     o.Date.UTC().Format(entity.DateLayout),
			Value:    v,
			Label:    o.Label,
		})
	}
	return out
}
