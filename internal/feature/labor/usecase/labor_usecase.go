// Package usecase は労働統計データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strconv"
	"time"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
	ratesusecase "econ_backend/internal/feature/rates/usecase"
)

// DefaultYearSpan はデフォルトの取得年数です。BLS APIの1リクエスト上限に合わせています。
const DefaultYearSpan = 10

// LaborRepository はBLS APIから単一シリーズの観測値を取得するリポジトリを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LaborRepository interface {
	GetSeries(ctx context.Context, seriesID, startYear, endYear string) ([]entity.Observation, error)
}

// LaborUsecase は労働統計シリーズの取得を定義します。
type LaborUsecase struct {
	labor   LaborRepository
	catalog domain.Catalog
}

// NewLaborUsecase はLaborUsecaseの新しいインスタンスを生成します。
func NewLaborUsecase(labor LaborRepository, catalog domain.Catalog) *LaborUsecase {
	return &LaborUsecase{labor: labor, catalog: catalog}
}

// GetLaborSeries は指定されたシリーズの正規化済み観測値を返します。
// 年が未指定の場合は直近 DefaultYearSpan 年分を取得します。
func (lu *LaborUsecase) GetLaborSeries(ctx context.Context, seriesID, startYear, endYear string) ([]entity.Observation, error) {
	if endYear == "" {
		endYear = strconv.Itoa(time.Now().Year())
	}
	if startYear == "" {
		end, err := strconv.Atoi(endYear)
		if err != nil {
			end = time.Now().Year()
		}
		startYear = strconv.Itoa(end - DefaultYearSpan + 1)
	}

	obs, err := lu.labor.GetSeries(ctx, seriesID, startYear, endYear)
	if err != nil {
		return nil, err
	}
	return ratesusecase.Normalize(obs, lu.catalog), nil
}
