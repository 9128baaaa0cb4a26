package router

import (
	"github.com/labstack/echo/v4"

	"sprout/pkg/middleware"
)

func New(
	e *echo.Echo,
	strictAuth bool,
	gardenCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	spaceCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	seedCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Import(echo.Context) error
	},
	catalogCtrl interface {
		ListPlantTypes(echo.Context) error
		ListProfiles(echo.Context) error
		ListVarieties(echo.Context) error
		CreateVariety(echo.Context) error
	},
	seasonCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	settingsCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
	},
	planCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		ListBySeason(echo.Context) error
		Generate(echo.Context) error
	},
	taskCtrl interface {
		ListByPlan(echo.Context) error
		ListRange(echo.Context) error
		Patch(echo.Context) error
	},
	journalCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.StrictAuth(strictAuth))
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/gardens", gardenCtrl.Create)
	api.GET("/gardens", gardenCtrl.List)
	api.GET("/gardens/:id", gardenCtrl.Get)
	api.POST("/gardens/:id/journal", journalCtrl.Create)
	api.GET("/gardens/:id/journal", journalCtrl.List)

	api.POST("/grow_spaces", spaceCtrl.Create)
	api.GET("/grow_spaces", spaceCtrl.List)

	api.POST("/seeds", seedCtrl.Create)
	api.GET("/seeds", seedCtrl.List)
	api.POST("/seeds/import", seedCtrl.Import)

	api.GET("/plant_types", catalogCtrl.ListPlantTypes)
	api.GET("/profiles", catalogCtrl.ListProfiles)
	api.GET("/varieties", catalogCtrl.ListVarieties)
	api.POST("/varieties", catalogCtrl.CreateVariety)

	api.POST("/seasons", seasonCtrl.Create)
	api.GET("/seasons", seasonCtrl.List)
	api.GET("/seasons/:id", seasonCtrl.Get)
	api.GET("/seasons/:id/plans", planCtrl.ListBySeason)
	api.GET("/seasons/:id/tasks", taskCtrl.ListRange)

	api.GET("/settings", settingsCtrl.Get)
	api.PUT("/settings", settingsCtrl.Put)

	g := e.Group("/crop_plans")
	g.POST("", planCtrl.Create)
	g.GET("/:id", planCtrl.Get)
	g.POST("/:id/generate", planCtrl.Generate)
	g.GET("/:id/tasks", taskCtrl.ListByPlan)

	api.PATCH("/tasks/:task_id", taskCtrl.Patch)

	api.POST("/guides/ingest", guideCtrl.IngestText)
	api.POST("/guides/ingest/url", guideCtrl.IngestURL)
	api.GET("/guides/search", guideCtrl.Search)

	return e
}
