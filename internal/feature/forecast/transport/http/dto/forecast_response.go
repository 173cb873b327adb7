// Package dto defines HTTP response DTOs for the forecast feature.
package dto

// ForecastPointResponse は1期間分の予測のレスポンスDTOです。
type ForecastPointResponse struct {
	Date  string  `json:"date"`  // 予測対象日（YYYY-MM-DD）
	Mean  float64 `json:"mean"`  // 点予測
	Lower float64 `json:"lower"` // 95%区間の下限
	Upper float64 `json:"upper"` // 95%区間の上限
}
