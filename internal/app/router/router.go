// Package router wires HTTP handlers into the gin engine.
package router

import (
	"os"

	"github.com/gin-gonic/gin"

	beahandler "econ_backend/internal/feature/bea/transport/handler"
	forecasthandler "econ_backend/internal/feature/forecast/transport/handler"
	laborhandler "econ_backend/internal/feature/labor/transport/handler"
	rateshandler "econ_backend/internal/feature/rates/transport/handler"
	"econ_backend/internal/platform/http/handler"
	jwtmw "econ_backend/internal/platform/jwt"
)

func NewRouter(rates *rateshandler.RatesHandler, observations *rateshandler.ObservationsHandler,
	forecast *forecasthandler.ForecastHandler, labor *laborhandler.LaborHandler,
	bea *beahandler.BEAHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// データ系のルート
	// JWT_SECRET が設定されている場合のみ認証必須にし、トークン発行を受け付ける
	api := r.Group("/")
	if os.Getenv(jwtmw.EnvKeyJWTSecret) != "" {
		r.POST("/token", jwtmw.TokenHandler(jwtmw.DefaultTokenExpiration))
		api.Use(jwtmw.AuthRequired())
	}
	{
		api.GET("/rates", rates.GetRatesHandler)
		api.GET("/observations/:series_id", observations.GetObservationsHandler)
		api.GET("/forecast/:series_id", forecast.GetForecastHandler)
		api.GET("/labor/:series_id", labor.GetLaborSeriesHandler)
		api.GET("/bea/:table", bea.GetTableHandler)
	}

	return r
}
