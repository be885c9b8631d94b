package domain

var (
	MessageSuccessGetMissions      = "success get missions"
	MessageSuccessToggleFavorite   = "favorite toggled successfully"
	MessageSuccessToggleCompleted  = "completed toggled successfully"
	MessageSuccessInstructionsView = "instructions view recorded"

	MessageFailedGetMissions      = "failed to get missions"
	MessageFailedToggleFavorite   = "failed to toggle favorite"
	MessageFailedToggleCompleted  = "failed to toggle completed"
	MessageFailedInstructionsView = "failed to record instructions view"
)

const (
	CapDailyTry   = 3
	CapDailyFav   = 2
	CapDailyLevel = 1
	CapWeeklyCook = 5
	CapWeeklyRead = 5
	// CapWeeklyFeed is a display target only; the stored counter is never clamped.
	CapWeeklyFeed = 10
)

const (
	MissionGroupDaily  = "daily"
	MissionGroupWeekly = "weekly"
)

type (
	MissionProgress struct {
		DailyTry   int `json:"dailyTry"`
		DailyFav   int `json:"dailyFav"`
		DailyLevel int `json:"dailyLevel"`
		WeeklyCook int `json:"weeklyCook"`
		WeeklyRead int `json:"weeklyRead"`
		WeeklyFeed int `json:"weeklyFeed"`
	}

	// Mission is one progress bar of the mission panel.
	Mission struct {
		ID      string `json:"id"`
		Group   string `json:"group"`
		Label   string `json:"label"`
		Current int    `json:"current"`
		Target  int    `json:"target"`
		Percent int    `json:"percent"`
	}

	MissionsResponse struct {
		Progress MissionProgress `json:"progress"`
		Missions []Mission       `json:"missions"`
	}

	ToggleResponse struct {
		RecipeID string          `json:"recipe_id"`
		Active   bool            `json:"active"`
		Progress MissionProgress `json:"progress"`
	}
)

// Missions lays out the panel in display order. Percent is clamped to 100
// while Current keeps the stored value.
func (m MissionProgress) Missions() []Mission {
	return []Mission{
		newMission("daily-try", MissionGroupDaily, "Try 3 new recipes", m.DailyTry, CapDailyTry),
		newMission("daily-fav", MissionGroupDaily, "Favorite 2 meals", m.DailyFav, CapDailyFav),
		newMission("daily-level", MissionGroupDaily, "Level up your pet", m.DailyLevel, CapDailyLevel),
		newMission("weekly-cook", MissionGroupWeekly, "Cook 5 unique dishes", m.WeeklyCook, CapWeeklyCook),
		newMission("weekly-read", MissionGroupWeekly, "Read 5 instructions", m.WeeklyRead, CapWeeklyRead),
		newMission("weekly-feed", MissionGroupWeekly, "Feed pet 10 times", m.WeeklyFeed, CapWeeklyFeed),
	}
}

func newMission(id, group, label string, current, target int) Mission {
	percent := current * 100 / target
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return Mission{
		ID:      id,
		Group:   group,
		Label:   label,
		Current: current,
		Target:  target,
		Percent: percent,
	}
}
