package usecase

import (
	"context"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
)

const (
	// DefaultHistorySize はデフォルトの観測値返却件数です。
	DefaultHistorySize = 500
	// MaxHistorySize は観測値の最大返却件数です。
	MaxHistorySize = 10000
)

// ObservationRepository は永続化された観測値の読み書きレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ObservationRepository interface {
	// UpsertBatch は観測値を一括で挿入（または更新）します。
	UpsertBatch(ctx context.Context, obs []entity.Observation) error
	// Find は指定されたシリーズの観測値を日付昇順で検索します。
	// limit が正の場合は直近の limit 件に制限します。
	Find(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error)
}

// ObservationsUsecase は永続化ストアからの観測値履歴の取得を定義します。
type ObservationsUsecase struct {
	store   ObservationRepository
	catalog domain.Catalog
}

// NewObservationsUsecase はObservationsUsecaseの新しいインスタンスを生成します。
func NewObservationsUsecase(store ObservationRepository, catalog domain.Catalog) *ObservationsUsecase {
	return &ObservationsUsecase{store: store, catalog: catalog}
}

// GetHistory は指定されたシリーズの正規化済み観測値履歴を返します。
// limit が 0 の場合は全件を返します。
func (ou *ObservationsUsecase) GetHistory(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error) {
	if limit < 0 || limit > MaxHistorySize {
		limit = DefaultHistorySize
	}

	obs, err := ou.store.Find(ctx, seriesID, limit)
	if err != nil {
		return nil, err
	}
	return Normalize(obs, ou.catalog), nil
}
