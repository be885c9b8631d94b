// Package export renders the recipe catalogue and mission progress as an
// XLSX workbook.
package export

import (
	"context"
	"fmt"
	"moodbite/domain"
	"moodbite/pkg/recipe"
	"moodbite/pkg/record"

	"github.com/xuri/excelize/v2"
)

const (
	SheetRecipes  = "Recipes"
	SheetMissions = "Missions"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	recipeHeader  = []any{"id", "name", "category", "area", "tags", "ingredients", "favorite", "completed"}
	missionHeader = []any{"id", "group", "label", "current", "target", "percent"}
)

type (
	ExportService interface {
		Build(ctx context.Context) (*excelize.File, error)
	}

	exportService struct {
		recipeRepository recipe.RecipeRepository
		records          *record.Store
	}
)

func NewExportService(recipeRepository recipe.RecipeRepository, records *record.Store) ExportService {
	return &exportService{
		recipeRepository: recipeRepository,
		records:          records,
	}
}

func (s *exportService) Build(ctx context.Context) (*excelize.File, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.records.LoadCompleted(ctx)
	if err != nil {
		return nil, err
	}
	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return nil, err
	}
	return Workbook(recipes, favorites, completed, missions.Missions())
}

// Workbook writes one row per recipe and one row per mission. Callers own
// the returned file and must Close it.
func Workbook(recipes []domain.Recipe, favorites, completed []string, missions []domain.Mission) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetRecipes); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetMissions); err != nil {
		f.Close()
		return nil, err
	}

	fav := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		fav[id] = true
	}
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	recipeRows := make([][]any, 0, len(recipes))
	for _, r := range recipes {
		recipeRows = append(recipeRows, []any{
			r.ID, r.Name, r.Category, r.Area, r.Tags, len(r.Ingredients), fav[r.ID], done[r.ID],
		})
	}
	if err := writeSheet(f, SheetRecipes, recipeHeader, recipeRows); err != nil {
		f.Close()
		return nil, err
	}

	missionRows := make([][]any, 0, len(missions))
	for _, m := range missions {
		missionRows = append(missionRows, []any{m.ID, m.Group, m.Label, m.Current, m.Target, m.Percent})
	}
	if err := writeSheet(f, SheetMissions, missionHeader, missionRows); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return sw.Flush()
}
