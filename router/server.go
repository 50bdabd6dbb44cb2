package router

import (
	"net/http"

	commongin "github.com/equinor/radix-common/pkg/gin"
	"github.com/gin-gonic/gin"
	"github.com/zosjobs/jobs-gateway/api/v1/controllers"
)

const apiVersionRoute = "/api/v1"

// NewServer creates a new jobs gateway REST service
func NewServer(controllers ...controllers.Controller) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RemoveExtraSlash = true
	engine.Use(commongin.ZerologRequestLogger(), gin.Recovery())

	v1Router := engine.Group(apiVersionRoute)
	{
		initializeAPIServer(v1Router, controllers)
	}

	return engine
}

func initializeAPIServer(router gin.IRoutes, controllers []controllers.Controller) {
	for _, controller := range controllers {
		for _, route := range controller.GetRoutes() {
			addHandlerRoute(router, route)
		}
	}
}

func addHandlerRoute(router gin.IRoutes, route controllers.Route) {
	router.Handle(route.Method, route.Path, route.Handler)
}
