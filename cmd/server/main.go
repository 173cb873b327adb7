package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"econ_backend/internal/app/router"
	beaapi "econ_backend/internal/feature/bea/adapters/beaapi"
	beahandler "econ_backend/internal/feature/bea/transport/handler"
	beausecase "econ_backend/internal/feature/bea/usecase"
	forecasthandler "econ_backend/internal/feature/forecast/transport/handler"
	forecastusecase "econ_backend/internal/feature/forecast/usecase"
	"econ_backend/internal/feature/labor/adapters/bls"
	laborhandler "econ_backend/internal/feature/labor/transport/handler"
	laborusecase "econ_backend/internal/feature/labor/usecase"
	"econ_backend/internal/feature/rates/adapters"
	"econ_backend/internal/feature/rates/adapters/csvcache"
	"econ_backend/internal/feature/rates/adapters/fred"
	"econ_backend/internal/feature/rates/domain"
	rateshandler "econ_backend/internal/feature/rates/transport/handler"
	"econ_backend/internal/feature/rates/usecase"
	"econ_backend/internal/platform/cache"
	"econ_backend/internal/platform/db"
	platformhttp "econ_backend/internal/platform/http"
	jwtmw "econ_backend/internal/platform/jwt"
	platformredis "econ_backend/internal/platform/redis"
)

// SnapshotPath はバンドルのキャッシュスナップショットの固定パスです。
const SnapshotPath = "data/cache/rates.csv"

func main() {
	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	catalog := domain.DefaultCatalog()

	// Repository
	fredCfg := fred.LoadConfig()
	fredRepo := fred.NewFredSeries(fredCfg, platformhttp.NewHTTPClient(fredCfg.Timeout))
	blsCfg := bls.LoadConfig()
	blsRepo := bls.NewBLSLabor(blsCfg, platformhttp.NewHTTPClient(blsCfg.Timeout))
	beaCfg := beaapi.LoadConfig()
	beaRepo := beaapi.NewBEATables(beaCfg, platformhttp.NewHTTPClient(beaCfg.Timeout))
	snapshot := csvcache.NewStore(SnapshotPath)
	obsRepo := adapters.NewObservationRepository(gormDB)

	// Redisキャッシュでラップ
	cachedObsRepo := cache.NewCachingObservationRepository(rdb, 0, obsRepo, "observations")

	// Usecase
	ratesUC := usecase.NewRatesUsecase(fredRepo, snapshot, catalog)
	obsUC := usecase.NewObservationsUsecase(cachedObsRepo, catalog)
	forecastUC := forecastusecase.NewForecastUsecase(obsUC)
	laborUC := laborusecase.NewLaborUsecase(blsRepo, catalog)
	beaUC := beausecase.NewBEAUsecase(beaRepo, catalog)

	// Handler
	ratesH := rateshandler.NewRatesHandler(ratesUC)
	obsH := rateshandler.NewObservationsHandler(obsUC)
	forecastH := forecasthandler.NewForecastHandler(forecastUC)
	laborH := laborhandler.NewLaborHandler(laborUC)
	beaH := beahandler.NewBEAHandler(beaUC)

	// ルータ生成
	router := router.NewRouter(ratesH, obsH, forecastH, laborH, beaH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Data routes are unauthenticated.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
