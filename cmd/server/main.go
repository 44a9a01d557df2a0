package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ThomasMo54/teaching-shop-example/app"
	"github.com/ThomasMo54/teaching-shop-example/controller"
	"github.com/ThomasMo54/teaching-shop-example/datamanager"
	"github.com/ThomasMo54/teaching-shop-example/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	db, err := app.OpenDB(cfg.Database)
	if err != nil {
		logger.Error("cannot open database", slog.String("path", cfg.Database), slog.Any("error", err))
		os.Exit(1)
	}

	// A broken registration leaves no usable admin surface, so it aborts
	// startup with the offending entity in the diagnostic.
	reg, err := models.Admin()
	if err != nil {
		logger.Error("entity registration failed", slog.Any("error", err))
		os.Exit(1)
	}

	dm := datamanager.FromRegistry(reg)
	dm.Seeders = []*datamanager.Seeder{
		{
			ID: "20240901-default-carriers",
			Seed: func(db *gorm.DB) error {
				carriers := []models.Carrier{
					{Name: "UPS", DelayDays: 2},
					{Name: "DHL", DelayDays: 3},
				}
				return db.Create(&carriers).Error
			},
		},
	}
	if err := dm.Run(db); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	admin := controller.New(db, reg)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.Any("/admin/*path", gin.WrapH(http.StripPrefix("/admin", admin.Handler())))

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.Int("entities", reg.Len()))
	if err := engine.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
