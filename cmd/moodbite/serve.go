package main

import (
	"context"
	"fmt"
	"moodbite/cmd/config"
	"moodbite/internal/utils"
	"moodbite/pkg/dataset"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr      string
		watch     bool
		rateLimit int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				utils.SetConfig("APP_PORT", strings.TrimPrefix(addr, ":"))
			}
			if cmd.Flags().Changed("watch") {
				utils.SetConfig("WATCH_DATASET", fmt.Sprint(watch))
			}
			return runServe(cmd.Context(), rateLimit)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen port, overrides APP_PORT")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the dataset file when it changes")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 10, "requests per second per client, 0 disables")
	return cmd
}

func runServe(parent context.Context, rateLimit int) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	logFile, err := config.OpenLogFile(utils.GetConfig("LOG_DIR"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	app := config.NewApp(rt.services, config.AppOptions{
		LogOutput:    logFile,
		RateLimit:    rateLimit,
		PrintRoutes:  true,
		TimeZoneName: rt.location.String(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(":" + utils.GetConfig("APP_PORT"))
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.ShutdownWithTimeout(5 * time.Second)
	})

	source := utils.GetConfig("DATASET_SOURCE")
	if utils.GetConfig("WATCH_DATASET") == "true" {
		if isLocalSource(source) {
			watcher := dataset.NewWatcher(strings.TrimPrefix(source, "file://"), reloadFunc(rt, source))
			g.Go(func() error { return watcher.Run(gctx) })
		} else {
			log.Warnf("dataset watching only applies to local files, ignoring for %s", source)
		}
	}

	fmt.Println(successColor("moodbite"), "listening on port", utils.GetConfig("APP_PORT"))
	return g.Wait()
}

func reloadFunc(rt *runtime, source string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		loader, err := config.NewLoader(ctx, source)
		if err != nil {
			return err
		}
		recipes, err := loader.Load(ctx, source)
		if err != nil {
			return err
		}
		return rt.services.RecipeRepository.Replace(ctx, recipes)
	}
}

func isLocalSource(source string) bool {
	return !strings.HasPrefix(source, "s3://") &&
		!strings.HasPrefix(source, "http://") &&
		!strings.HasPrefix(source, "https://")
}
