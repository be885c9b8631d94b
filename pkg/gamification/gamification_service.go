// Package gamification owns the pet and mission records and the UI events
// that mutate them.
package gamification

import (
	"context"
	"moodbite/domain"
	"moodbite/pkg/record"
	"slices"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	GamificationService interface {
		Feed(ctx context.Context, recipeID string) (domain.FeedResponse, error)
		SetMood(ctx context.Context, mood domain.PetMood) (domain.PetResponse, error)
		ToggleFavorite(ctx context.Context, recipeID string) (domain.ToggleResponse, error)
		ToggleCompleted(ctx context.Context, recipeID string) (domain.ToggleResponse, error)
		RecordInstructionsView(ctx context.Context) (domain.MissionProgress, error)
		GetPet(ctx context.Context) (domain.PetResponse, error)
		GetMissions(ctx context.Context) (domain.MissionsResponse, error)
		Close()
	}

	// gamificationService serializes every transition on mu, so each
	// read-modify-write of a record runs to completion before the next.
	gamificationService struct {
		mu       sync.Mutex
		records  *record.Store
		reverter *Deferred
	}
)

func NewGamificationService(records *record.Store, scheduler Scheduler) GamificationService {
	return &gamificationService{
		records:  records,
		reverter: NewDeferred(scheduler),
	}
}

func (s *gamificationService) Feed(ctx context.Context, recipeID string) (domain.FeedResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.records.LoadPet(ctx)
	if err != nil {
		return domain.FeedResponse{}, err
	}
	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return domain.FeedResponse{}, err
	}

	pet.XP += domain.XPPerFeed
	missions.WeeklyFeed++

	leveledUp := false
	next := domain.PetFull
	if pet.XP >= domain.XPPerLevel {
		pet.Level++
		pet.XP = 0
		missions.DailyLevel = domain.CapDailyLevel
		next = domain.PetExcited
		leveledUp = true
		log.Infof("pet %s reached level %d", pet.Name, pet.Level)
	}

	if err := s.setMoodLocked(ctx, &pet, next); err != nil {
		return domain.FeedResponse{}, err
	}
	if err := s.records.SaveMissions(ctx, missions); err != nil {
		return domain.FeedResponse{}, err
	}

	log.Debugf("fed recipe %s to pet, xp=%d level=%d", recipeID, pet.XP, pet.Level)
	return domain.FeedResponse{Pet: pet.View(), LeveledUp: leveledUp}, nil
}

func (s *gamificationService) SetMood(ctx context.Context, mood domain.PetMood) (domain.PetResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.records.LoadPet(ctx)
	if err != nil {
		return domain.PetResponse{}, err
	}
	if err := s.setMoodLocked(ctx, &pet, mood); err != nil {
		return domain.PetResponse{}, err
	}
	return pet.View(), nil
}

// setMoodLocked persists the new mood and replaces the pending reversion.
// Happy and unknown moods leave nothing pending.
func (s *gamificationService) setMoodLocked(ctx context.Context, pet *domain.PetState, mood domain.PetMood) error {
	pet.Mood = mood
	if err := s.records.SavePet(ctx, *pet); err != nil {
		return err
	}

	delay, ok := domain.RevertDelay(mood)
	if !ok {
		s.reverter.Cancel()
		return nil
	}
	s.reverter.Schedule(delay, s.revert)
	return nil
}

func (s *gamificationService) revert(token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.reverter.Claim(token) {
		return
	}

	ctx := context.Background()
	pet, err := s.records.LoadPet(ctx)
	if err != nil {
		log.Errorf("revert pet mood: %v", err)
		return
	}
	pet.Mood = domain.PetHappy
	if err := s.records.SavePet(ctx, pet); err != nil {
		log.Errorf("revert pet mood: %v", err)
	}
}

func (s *gamificationService) ToggleFavorite(ctx context.Context, recipeID string) (domain.ToggleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	favorites, active := toggle(favorites, recipeID)
	if err := s.records.SaveFavorites(ctx, favorites); err != nil {
		return domain.ToggleResponse{}, err
	}

	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return domain.ToggleResponse{}, err
	}
	missions.DailyFav = min(len(favorites), domain.CapDailyFav)
	if err := s.records.SaveMissions(ctx, missions); err != nil {
		return domain.ToggleResponse{}, err
	}

	return domain.ToggleResponse{RecipeID: recipeID, Active: active, Progress: missions}, nil
}

func (s *gamificationService) ToggleCompleted(ctx context.Context, recipeID string) (domain.ToggleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed, err := s.records.LoadCompleted(ctx)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	completed, active := toggle(completed, recipeID)
	if err := s.records.SaveCompleted(ctx, completed); err != nil {
		return domain.ToggleResponse{}, err
	}

	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return domain.ToggleResponse{}, err
	}
	if active {
		missions.DailyTry = min(missions.DailyTry+1, domain.CapDailyTry)
		missions.WeeklyCook = min(missions.WeeklyCook+1, domain.CapWeeklyCook)
		if err := s.records.SaveMissions(ctx, missions); err != nil {
			return domain.ToggleResponse{}, err
		}
	}

	return domain.ToggleResponse{RecipeID: recipeID, Active: active, Progress: missions}, nil
}

func (s *gamificationService) RecordInstructionsView(ctx context.Context) (domain.MissionProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return domain.MissionProgress{}, err
	}
	missions.WeeklyRead = min(missions.WeeklyRead+1, domain.CapWeeklyRead)
	if err := s.records.SaveMissions(ctx, missions); err != nil {
		return domain.MissionProgress{}, err
	}
	return missions, nil
}

func (s *gamificationService) GetPet(ctx context.Context) (domain.PetResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.records.LoadPet(ctx)
	if err != nil {
		return domain.PetResponse{}, err
	}
	return pet.View(), nil
}

func (s *gamificationService) GetMissions(ctx context.Context) (domain.MissionsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	missions, err := s.records.LoadMissions(ctx)
	if err != nil {
		return domain.MissionsResponse{}, err
	}
	return domain.MissionsResponse{
		Progress: missions,
		Missions: missions.Missions(),
	}, nil
}

// Close drops any pending mood reversion.
func (s *gamificationService) Close() {
	s.reverter.Cancel()
}

// toggle removes id when present and appends it otherwise. It reports
// whether id is in the returned set.
func toggle(ids []string, id string) ([]string, bool) {
	if i := slices.Index(ids, id); i != -1 {
		return slices.Delete(ids, i, i+1), false
	}
	return append(ids, id), true
}
