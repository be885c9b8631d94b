package main

import (
	"context"
	"fmt"
	"moodbite/cmd/config"
	"moodbite/internal/utils"
	"moodbite/pkg/gamification"
	"moodbite/pkg/recipe"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

type rootOptions struct {
	configPath string
	dataset    string
	store      string
}

// load reads the config file and applies flag overrides.
func (o *rootOptions) load(cmd *cobra.Command) error {
	if err := utils.LoadConfig(o.configPath); err != nil {
		return err
	}
	if cmd.Flags().Changed("dataset") {
		utils.SetConfig("DATASET_SOURCE", o.dataset)
	}
	if cmd.Flags().Changed("store") {
		utils.SetConfig("STORE_DRIVER", o.store)
	}
	return nil
}

type runtime struct {
	services *config.Services
	location *time.Location
	db       *gorm.DB
}

func (r *runtime) Close() {
	r.services.GamificationService.Close()
	if r.db == nil {
		return
	}
	if sqlDB, err := r.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// bootstrap loads the dataset and wires the services. A dataset that
// cannot be loaded is fatal for every command.
func bootstrap(ctx context.Context) (*runtime, error) {
	loc, err := config.LoadLocation(utils.GetConfig("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	var db *gorm.DB
	driver := utils.GetConfig("STORE_DRIVER")
	if driver == "postgres" {
		if db, err = config.ConnectDB(); err != nil {
			return nil, err
		}
	}
	records, err := config.NewRecordStore(driver, db)
	if err != nil {
		return nil, err
	}

	source := utils.GetConfig("DATASET_SOURCE")
	loader, err := config.NewLoader(ctx, source)
	if err != nil {
		return nil, err
	}
	recipes, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	services := config.NewServices(
		recipe.NewRecipeRepository(recipes),
		records,
		loc,
		gamification.NewScheduler(),
		utils.GetConfig("JWT_SECRET"),
	)
	return &runtime{services: services, location: loc, db: db}, nil
}
