package config

import (
	"context"
	"fmt"
	"io"
	"moodbite/internal/api/handlers"
	"moodbite/internal/api/routes"
	"moodbite/internal/middleware"
	"moodbite/internal/utils"
	"moodbite/pkg/dataset"
	"moodbite/pkg/export"
	"moodbite/pkg/gamification"
	"moodbite/pkg/jwt"
	"moodbite/pkg/mood"
	"moodbite/pkg/recipe"
	"moodbite/pkg/record"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

type (
	// Services is the wired application state shared by the HTTP app and
	// the CLI commands.
	Services struct {
		RecipeRepository    recipe.RecipeRepository
		Records             *record.Store
		Classifier          *mood.Classifier
		RecipeService       recipe.RecipeService
		GamificationService gamification.GamificationService
		ExportService       export.ExportService
		JWTService          jwt.JWTService
	}

	AppOptions struct {
		// LogOutput receives request logs. Nil disables the request logger.
		LogOutput io.Writer
		// RateLimit is requests per second per client. Zero disables it.
		RateLimit    int
		PrintRoutes  bool
		TimeZoneName string
	}
)

// NewRecordStore picks the record backend named by STORE_DRIVER. db is only
// used by the postgres driver.
func NewRecordStore(driver string, db *gorm.DB) (*record.Store, error) {
	switch strings.ToLower(driver) {
	case "", "memory":
		return record.NewStore(record.NewMemoryRepository()), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("store driver postgres needs a database connection")
		}
		return record.NewStore(record.NewRecordRepository(db)), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// NewLoader builds a dataset loader, attaching an S3 client only when the
// source needs one.
func NewLoader(ctx context.Context, source string) (*dataset.Loader, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if !strings.HasPrefix(source, "s3://") {
		return dataset.NewLoader(httpClient, nil), nil
	}

	s3Client, err := dataset.NewS3Client(
		ctx,
		utils.GetConfig("AWS_S3_REGION"),
		utils.GetConfig("AWS_ACCESS_KEY"),
		utils.GetConfig("AWS_SECRET_KEY"),
	)
	if err != nil {
		return nil, err
	}
	return dataset.NewLoader(httpClient, s3Client), nil
}

func NewServices(
	recipeRepository recipe.RecipeRepository,
	records *record.Store,
	loc *time.Location,
	scheduler gamification.Scheduler,
	jwtSecret string,
) *Services {
	classifier := mood.NewClassifier(time.Now, loc)
	return &Services{
		RecipeRepository:    recipeRepository,
		Records:             records,
		Classifier:          classifier,
		RecipeService:       recipe.NewRecipeService(recipeRepository, classifier, records),
		GamificationService: gamification.NewGamificationService(records, scheduler),
		ExportService:       export.NewExportService(recipeRepository, records),
		JWTService:          jwt.NewJWTService(jwtSecret),
	}
}

// OpenLogFile opens <dir>/app.log for appending, creating dir as needed.
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(dir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return file, nil
}

func NewApp(services *Services, opts AppOptions) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes:     opts.PrintRoutes,
		DisableStartupMessage: !opts.PrintRoutes,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if opts.LogOutput != nil {
		tz := opts.TimeZoneName
		if tz == "" {
			tz = "Local"
		}
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   tz,
			Output:     opts.LogOutput,
		}))
	}

	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Handler
	recipeHandler := handlers.NewRecipeHandler(services.RecipeService, validator)
	gamificationHandler := handlers.NewGamificationHandler(services.GamificationService, services.RecipeService, validator)
	exportHandler := handlers.NewExportHandler(services.ExportService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		RecipeHandler:       recipeHandler,
		GamificationHandler: gamificationHandler,
		ExportHandler:       exportHandler,
		Middleware:          middlewares,
		JWTService:          services.JWTService,
	}
	routesConfig.Setup()

	log.Debugf("http app ready with %d recipes", services.RecipeRepository.Count())
	return app
}
