// Package usecase は時系列予測のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNotEnoughData is returned when a series has too few observations
	// to fit a forecast model.
	ErrNotEnoughData = errors.New("not enough observations to forecast")

	// ErrModelFit is returned when model selection produced no usable model.
	ErrModelFit = errors.New("failed to fit forecast model")
)
