package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sartorproj/goarima/autoarima"
	"github.com/sartorproj/goarima/timeseries"

	"econ_backend/internal/feature/rates/domain/entity"
)

const (
	// DefaultHorizon はデフォルトの予測期間数です。
	DefaultHorizon = 12
	// MaxHorizon は予測期間数の上限です。
	MaxHorizon = 60
	// MinObservations はモデル当てはめに必要な最小観測数です。
	MinObservations = 24
)

// z95 is the standard normal quantile for a 95% interval.
const z95 = 1.96

// SeriesSource は予測対象シリーズの履歴を提供するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesSource interface {
	// GetHistory は正規化済みの観測値履歴を日付昇順で返します。limit 0 は全件。
	GetHistory(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error)
}

// ForecastPoint は1期間分の点予測と95%区間です。
type ForecastPoint struct {
	Date  time.Time
	Mean  float64
	Lower float64
	Upper float64
}

// ForecastUsecase はシリーズ履歴からの予測生成を定義します。
// モデル選択と推定は goarima の Auto-ARIMA に完全に委譲します。
type ForecastUsecase struct {
	source SeriesSource
}

// NewForecastUsecase はForecastUsecaseの新しいインスタンスを生成します。
func NewForecastUsecase(source SeriesSource) *ForecastUsecase {
	return &ForecastUsecase{source: source}
}

// Forecast は指定されたシリーズの今後 horizon 期間の点予測と区間予測を返します。
// 区間は残差の標準偏差から mean ± 1.96σ で算出します。予測日付は観測間隔の
// 中央値で最終観測日から等間隔に続けます。
func (fu *ForecastUsecase) Forecast(ctx context.Context, seriesID string, horizon int) ([]ForecastPoint, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	if horizon > MaxHorizon {
		horizon = MaxHorizon
	}

	obs, err := fu.source.GetHistory(ctx, seriesID, 0)
	if err != nil {
		return nil, err
	}
	if len(obs) < MinObservations {
		return nil, fmt.Errorf("%w: %s has %d observations, need %d", ErrNotEnoughData, seriesID, len(obs), MinObservations)
	}

	values := make([]float64, len(obs))
	for i, o := range obs {
		values[i] = *o.Value
	}

	result, err := autoarima.AutoARIMA(timeseries.New(values), autoarima.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelFit, err)
	}

	means, err := result.Predict(horizon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelFit, err)
	}
	if len(means) != horizon {
		return nil, fmt.Errorf("%w: model produced %d of %d forecasts", ErrModelFit, len(means), horizon)
	}

	sigma := stddev(result.Residuals())
	step := medianStep(obs)
	last := obs[len(obs)-1].Date

	points := make([]ForecastPoint, 0, horizon)
	for i, m := range means {
		points = append(points, ForecastPoint{
			Date:  last.Add(step * time.Duration(i+1)),
			Mean:  m,
			Lower: m - z95*sigma,
			Upper: m + z95*sigma,
		})
	}
	return points, nil
}

// stddev は残差の標本標準偏差を返します。残差が無い場合は0を返します。
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// medianStep は観測日付の間隔の中央値を返します。間隔を求められない場合は
// 1日を返します。
func medianStep(obs []entity.Observation) time.Duration {
	if len(obs) < 2 {
		return 24 * time.Hour
	}
	steps := make([]time.Duration, 0, len(obs)-1)
	for i := 1; i < len(obs); i++ {
		steps = append(steps, obs[i].Date.Sub(obs[i-1].Date))
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i] < steps[j] })
	return steps[len(steps)/2]
}
