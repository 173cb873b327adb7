// Package usecase は経済時系列データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
)

// RatesBundle は一括で取得・キャッシュする金利シリーズの固定セットです。
var RatesBundle = []string{"DFF", "DGS2", "DGS10"}

// SeriesRepository は外部APIから単一シリーズの観測値を取得するリポジトリを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesRepository interface {
	// GetObservations は指定されたシリーズの観測値を取得します。
	// observationStart が空でない場合は ISO 日付（YYYY-MM-DD）で開始日を制限します。
	GetObservations(ctx context.Context, seriesID, observationStart string) ([]entity.Observation, error)
}

// SnapshotStore はバンドルのキャッシュスナップショットの読み書きを抽象化します。
type SnapshotStore interface {
	// Read はスナップショットを読み込みます。ファイルが存在しない場合は
	// (nil, false, nil) を返します。存在するが解析できない場合はエラーを返します。
	Read(ctx context.Context) ([]entity.Observation, bool, error)
	// Write は現在のデータセット全体でスナップショットを上書きします。
	Write(ctx context.Context, obs []entity.Observation) error
}

// cacheDecision はキャッシュゲートの判定結果です。
type cacheDecision int

const (
	cacheMiss cacheDecision = iota
	cacheHit
)

// RatesUsecase は金利バンドルの取得パイプラインを定義します。
// キャッシュヒット時は Read→Normalize、ミス時は Fetch→Write→Normalize の順に実行します。
type RatesUsecase struct {
	series   SeriesRepository
	snapshot SnapshotStore
	catalog  domain.Catalog
}

// NewRatesUsecase はRatesUsecaseの新しいインスタンスを生成します。
func NewRatesUsecase(series SeriesRepository, snapshot SnapshotStore, catalog domain.Catalog) *RatesUsecase {
	return &RatesUsecase{series: series, snapshot: snapshot, catalog: catalog}
}

// gate はキャッシュゲートです。useCache が false の場合はファイルシステムに
// 一切触れず cacheMiss を返します。スナップショットの破損はここで呼び出し元に伝播します。
func (ru *RatesUsecase) gate(ctx context.Context, useCache bool) ([]entity.Observation, cacheDecision, error) {
	if !useCache {
		return nil, cacheMiss, nil
	}
	obs, found, err := ru.snapshot.Read(ctx)
	if err != nil {
		return nil, cacheMiss, err
	}
	if !found {
		return nil, cacheMiss, nil
	}
	return obs, cacheHit, nil
}

// GetRatesBundle は固定バンドル（DFF, DGS2, DGS10）の正規化済み観測値を返します。
// useCache はキャッシュ読み込みを、writeCache は取得結果の永続化を制御します。
// バンドル内のいずれかのシリーズの取得に失敗した場合、部分的な結果は返さず
// 全体を失敗させます。リトライは行いません。
func (ru *RatesUsecase) GetRatesBundle(ctx context.Context, observationStart string, useCache, writeCache bool) ([]entity.Observation, error) {
	cached, decision, err := ru.gate(ctx, useCache)
	if err != nil {
		return nil, err
	}
	if decision == cacheHit {
		return Normalize(cached, ru.catalog), nil
	}

	// キャッシュミス: シリーズごとに1リクエストずつ順番に取得して連結
	var all []entity.Observation
	for _, id := range RatesBundle {
		obs, err := ru.series.GetObservations(ctx, id, observationStart)
		if err != nil {
			return nil, err
		}
		all = append(all, obs...)
	}

	if writeCache {
		if err := ru.snapshot.Write(ctx, all); err != nil {
			return nil, err
		}
	}
	return Normalize(all, ru.catalog), nil
}
