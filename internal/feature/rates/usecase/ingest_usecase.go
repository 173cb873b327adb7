package usecase

import (
	"context"
	"log/slog"

	"econ_backend/internal/shared/ratelimiter"
)

// IngestUsecase は外部APIから観測値を取得し、永続化ストアに保存するユースケースを定義します。
type IngestUsecase struct {
	series      SeriesRepository
	store       ObservationRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(series SeriesRepository, store ObservationRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{series: series, store: store, rateLimiter: rateLimiter}
}

// ingestOne は指定されたシリーズの観測値を外部リポジトリから取得し、
// 欠損行を除いてストアに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, seriesID, observationStart string) error {
	obs, err := iu.series.GetObservations(ctx, seriesID, observationStart)
	if err != nil {
		return err
	}
	// 欠損行はストアに保存しない
	return iu.store.UpsertBatch(ctx, Normalize(obs, nil))
}

// IngestAll は指定された全シリーズの観測値を取得し、ストアに永続化します。
// APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
// 1つのシリーズでエラーが発生しても処理を止めずにログに出力し、次の処理を続けます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, seriesIDs []string, observationStart string) error {
	for _, id := range seriesIDs {
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, id, observationStart); err != nil {
			slog.Error("failed to ingest series", "series_id", id, "error", err)
			continue
		}
	}
	return nil
}
