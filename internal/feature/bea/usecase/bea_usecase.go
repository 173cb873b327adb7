// Package usecase は国民経済計算データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
	ratesusecase "econ_backend/internal/feature/rates/usecase"
)

const (
	// DefaultFrequency はデフォルトの取得頻度（四半期）です。
	DefaultFrequency = "Q"
	// AllYears はBEA APIで全年を意味する指定です。
	AllYears = "X"
)

// NIPARepository はBEA APIからNIPAテーブルを取得するリポジトリを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NIPARepository interface {
	GetNIPATable(ctx context.Context, table, frequency, year string) ([]entity.Observation, error)
}

// BEAUsecase はNIPAテーブルの取得を定義します。
type BEAUsecase struct {
	nipa    NIPARepository
	catalog domain.Catalog
}

// NewBEAUsecase はBEAUsecaseの新しいインスタンスを生成します。
func NewBEAUsecase(nipa NIPARepository, catalog domain.Catalog) *BEAUsecase {
	return &BEAUsecase{nipa: nipa, catalog: catalog}
}

// GetTable は指定されたNIPAテーブルの正規化済み観測値を返します。
func (bu *BEAUsecase) GetTable(ctx context.Context, table, frequency, year string) ([]entity.Observation, error) {
	if frequency == "" {
		frequency = DefaultFrequency
	}
	if year == "" {
		year = AllYears
	}

	obs, err := bu.nipa.GetNIPATable(ctx, table, frequency, year)
	if err != nil {
		return nil, err
	}
	return ratesusecase.Normalize(obs, bu.catalog), nil
}
