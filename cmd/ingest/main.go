package main

import (
	"context"
	"log"
	"os"
	"time"

	"econ_backend/internal/feature/rates/adapters"
	"econ_backend/internal/feature/rates/adapters/fred"
	"econ_backend/internal/feature/rates/usecase"
	"econ_backend/internal/platform/db"
	platformhttp "econ_backend/internal/platform/http"
	"econ_backend/internal/shared/ratelimiter"
)

func main() {
	gormDB := db.OpenDB()

	cfg := fred.LoadConfig()
	seriesRepo := fred.NewFredSeries(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
	obsRepo := adapters.NewObservationRepository(gormDB)

	// FREDの無料枠は120リクエスト/分
	rl := ratelimiter.NewRateLimiter(120, time.Minute)
	uc := usecase.NewIngestUsecase(seriesRepo, obsRepo, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// 開始日は環境変数で制御（未指定なら全期間）
	observationStart := os.Getenv("OBSERVATION_START")

	if err := uc.IngestAll(ctx, usecase.RatesBundle, observationStart); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
