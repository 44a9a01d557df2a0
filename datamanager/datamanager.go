package datamanager

import (
	"log/slog"
	"time"

	"github.com/ThomasMo54/teaching-shop-example/registry"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

type Seeder struct {
	ID   string
	Seed func(*gorm.DB) error
}

// DataManager migrates and seeds the schema of every registered entity
// type. Before migrations run ahead of AutoMigrate, After migrations and
// seeders after it.
type DataManager struct {
	Options *gormigrate.Options
	Models  []interface{}
	Before  []*gormigrate.Migration
	After   []*gormigrate.Migration
	Seeders []*Seeder
}

// FromRegistry builds a DataManager covering the registered entity types,
// in registration order.
func FromRegistry(reg *registry.Registry) DataManager {
	dm := DataManager{Options: gormigrate.DefaultOptions}
	for entry := range reg.All() {
		dm.Models = append(dm.Models, entry.Model)
	}
	return dm
}

func (dm DataManager) Run(db *gorm.DB) error {
	if err := dm.BeforeMigrate(db); err != nil {
		return err
	}
	if err := dm.Migrate(db); err != nil {
		return err
	}
	if err := dm.AfterMigrate(db); err != nil {
		return err
	}
	return dm.Seed(db)
}

func (dm DataManager) BeforeMigrate(db *gorm.DB) error {
	if len(dm.Before) == 0 {
		return nil
	}
	start := time.Now()
	m := gormigrate.New(db, dm.options(), dm.Before)
	if err := m.Migrate(); err != nil {
		return err
	}
	slog.Info("BeforeMigrate done", slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (dm DataManager) Migrate(db *gorm.DB) error {
	start := time.Now()
	if err := db.AutoMigrate(dm.Models...); err != nil {
		return err
	}
	slog.Info("Migrate done", slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (dm DataManager) AfterMigrate(db *gorm.DB) error {
	if len(dm.After) == 0 {
		return nil
	}
	start := time.Now()
	m := gormigrate.New(db, dm.options(), dm.After)
	if err := m.Migrate(); err != nil {
		return err
	}
	slog.Info("AfterMigrate done", slog.Duration("elapsed", time.Since(start)))
	return nil
}

// Seed runs the seeders through gormigrate so each one is applied exactly
// once, tracked in a dedicated table.
func (dm DataManager) Seed(db *gorm.DB) error {
	if len(dm.Seeders) == 0 {
		return nil
	}
	migrations := make([]*gormigrate.Migration, 0, len(dm.Seeders))
	for _, seeder := range dm.Seeders {
		migrations = append(migrations, &gormigrate.Migration{
			ID:      seeder.ID,
			Migrate: gormigrate.MigrateFunc(seeder.Seed),
		})
	}
	opts := *dm.options()
	opts.TableName = "seeders"
	return gormigrate.New(db, &opts, migrations).Migrate()
}

func (dm DataManager) options() *gormigrate.Options {
	if dm.Options != nil {
		return dm.Options
	}
	return gormigrate.DefaultOptions
}
