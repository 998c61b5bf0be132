package main

import (
	"log"
	"path/filepath"
	"runtime"

	"fyne.io/fyne/v2/app"

	"asthroapp/internal/auth"
	"asthroapp/internal/controller"
	"asthroapp/internal/view"
	"asthroapp/pkg/config"
	"asthroapp/pkg/localization"
	"asthroapp/pkg/logger"
)

func main() {
	fyneApp := app.NewWithID("app.asthro.admin")

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		log.Fatal("cannot resolve project root")
	}
	rootDir := filepath.Dir(filepath.Dir(filename))
	localesDir := filepath.Join(rootDir, "assets", "locales")

	// a missing config file falls back to defaults
	cfg, _ := config.LoadConfig()

	locale, err := localization.NewLocale(localesDir, cfg.Language)
	if err != nil {
		log.Fatalf("locale load failed: %v", err)
	}

	build := logger.New().Console()
	if cfg.LogFile != "" {
		build = logger.New().FromPath(cfg.LogFile)
	}
	logData, err := build.Make()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logData.Close()

	// the desktop build runs as the seeded administrator
	caps := auth.NewCapabilities(auth.Wildcard)
	appController := controller.NewApp(caps, cfg.PageSize, logData.Logger)

	mainWindow := view.NewMainWindow(fyneApp, appController, locale, cfg, localesDir)
	mainWindow.Show()
}
