package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"sprout/config"
	"sprout/database"
	"sprout/router"

	// Auth + Health
	authCtrlImp "sprout/pkg/auth/controllerImp"
	healthCtrlImp "sprout/pkg/health/controllerImp"

	// Gardens + grow spaces + journal
	gardenCtrlImp "sprout/pkg/garden/controllerImp"
	gardenRepoImp "sprout/pkg/garden/repositoryImp"
	spaceCtrlImp "sprout/pkg/growspace/controllerImp"
	spaceRepoImp "sprout/pkg/growspace/repositoryImp"
	journalCtrlImp "sprout/pkg/journal/controllerImp"
	journalRepoImp "sprout/pkg/journal/repositoryImp"

	// Seeds
	seedCtrlImp "sprout/pkg/seeds/controllerImp"
	seedRepoImp "sprout/pkg/seeds/repositoryImp"

	// Catalog
	"sprout/pkg/catalog"
	catalogCtrlImp "sprout/pkg/catalog/controllerImp"
	catalogRepoImp "sprout/pkg/catalog/repositoryImp"

	// Seasons + settings
	seasonCtrlImp "sprout/pkg/season/controllerImp"
	seasonRepoImp "sprout/pkg/season/repositoryImp"
	settingsCtrlImp "sprout/pkg/settings/controllerImp"
	settingsRepoImp "sprout/pkg/settings/repositoryImp"

	// Crop plans + tasks
	planCtrlImp "sprout/pkg/cropplan/controllerImp"
	planRepoImp "sprout/pkg/cropplan/repositoryImp"
	planSvc "sprout/pkg/cropplan/serviceImp"
	taskCtrlImp "sprout/pkg/croptask/controllerImp"
	taskRepoImp "sprout/pkg/croptask/repositoryImp"

	// Guides
	guideCtrlImp "sprout/pkg/guides/controllerImp"
	guideRepoImp "sprout/pkg/guides/repositoryImp"
	guideSvcImp "sprout/pkg/guides/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Catalog seed from bundled CSV (first boot only)
	catalogRepo := catalogRepoImp.New(db)
	if rows, err := catalog.LoadProfilesCSV(cfg.ProfileCSV); err != nil {
		log.Printf("[catalog] profile CSV warn: %v", err)
	} else if err := catalog.SeedDefaults(catalogRepo, rows); err != nil {
		log.Printf("[catalog] seed warn: %v", err)
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Repos
	gardenRepo := gardenRepoImp.New(db)
	spaceRepo := spaceRepoImp.New(db)
	seedRepo := seedRepoImp.New(db)
	seasonRepo := seasonRepoImp.New(db)
	settingsRepo := settingsRepoImp.New(db)
	planRepo := planRepoImp.New(db)
	taskRepo := taskRepoImp.New(db)
	journalRepo := journalRepoImp.New(db)
	guideRepo := guideRepoImp.New(db)

	// 6) Services + controllers
	pSvc := planSvc.NewPlanService(planRepo, taskRepo, seasonRepo, settingsRepo, catalogRepo)
	gSvc := guideSvcImp.New(guideRepo)

	r := router.New(
		e,
		cfg.StrictAuth,
		gardenCtrlImp.New(gardenRepo),
		spaceCtrlImp.New(spaceRepo),
		seedCtrlImp.New(seedRepo),
		catalogCtrlImp.New(catalogRepo),
		seasonCtrlImp.New(seasonRepo),
		settingsCtrlImp.New(settingsRepo),
		planCtrlImp.NewPlanCtrl(pSvc, planRepo),
		taskCtrlImp.New(taskRepo),
		journalCtrlImp.New(journalRepo),
		guideCtrlImp.New(gSvc, cfg.GuideHosts),
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db),
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
