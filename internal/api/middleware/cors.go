package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lab-cms/internal/pkg/config"
	"lab-cms/pkg/constants"
)

// CORSMiddleware 允许任意来源时回显 Origin，以便携带凭证
func CORSMiddleware(cfg *config.CORSConfig, actorHeader string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With",
			constants.HeaderRequestID, actorHeader,
		},
		ExposeHeaders:    []string{"Content-Length", constants.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}

	if cfg.AllowAllOrigins() {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	return cors.New(corsCfg)
}
