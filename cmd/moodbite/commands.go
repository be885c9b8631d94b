package main

import (
	"fmt"
	"moodbite/cmd/config"
	migration "moodbite/cmd/database/migrate"
	"moodbite/domain"
	"moodbite/internal/utils"
	"moodbite/pkg/jwt"
	"moodbite/pkg/mood"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the record table in PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			if err := migration.Migrate(db); err != nil {
				return err
			}
			fmt.Println(successColor("migrated"), "records table")
			return nil
		},
	}
}

func newRecipesCmd(opts *rootOptions) *cobra.Command {
	var keyword, moodFlag string
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List recipes matching a keyword and mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			req := domain.RecipeListRequest{Keyword: keyword, Mood: moodFlag}
			utils.InitValidator()
			if err := utils.Validate.Struct(req); err != nil {
				return fmt.Errorf("invalid mood %q", moodFlag)
			}

			res, err := rt.services.RecipeService.GetRecipes(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, %d recipes\n", headerColor("mood:"), res.Mood, res.Total)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tAREA\tFAV\tDONE")
			for _, r := range res.Recipes {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Category, r.Area, mark(r.IsFavorite), mark(r.IsCompleted))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&keyword, "query", "q", "", "keyword matched against names and ingredients")
	cmd.Flags().StringVarP(&moodFlag, "mood", "m", "auto", "auto, happy, sad, tired, adventurous, lazy or neutral")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write recipes and mission progress to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			f, err := rt.services.ExportService.Build(cmd.Context())
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.SaveAs(out); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successColor("exported"), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "moodbite.xlsx", "output file")
	return cmd
}

func newMoodCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mood [selection]",
		Short: "Print the mood the recipe grid would use right now",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := config.LoadLocation(utils.GetConfig("TIMEZONE"))
			if err != nil {
				return err
			}
			selection := domain.MoodAuto
			if len(args) == 1 {
				selection = domain.ParseMood(args[0])
			}

			now := time.Now().In(loc)
			m := mood.NewClassifier(func() time.Time { return now }, loc).CurrentMood(selection)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", headerColor("mood:"), m, selection, now.Format("15:04 MST"))
			return nil
		},
	}
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for the mutating routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET")).GenerateToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			if ttl > 30*24*time.Hour {
				fmt.Fprintln(os.Stderr, warnColor("warning:"), "token lifetime exceeds 30 days")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "moodbite-client", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", jwt.DefaultTokenTTL, "token lifetime")
	return cmd
}

func mark(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return "-"
}
