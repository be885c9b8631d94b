package domain

var (
	MessageSuccessGetMood = "success get current mood"
	MessageFailedGetMood  = "failed to get current mood"
)

// Mood is the recipe-browsing mood used to narrow the grid.
type Mood string

const (
	MoodAuto        Mood = "auto"
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodTired       Mood = "tired"
	MoodAdventurous Mood = "adventurous"
	MoodLazy        Mood = "lazy"
	MoodNeutral     Mood = "neutral"
)

type (
	MoodRequest struct {
		Selection string `query:"selection" validate:"omitempty,oneof=auto happy sad tired adventurous lazy neutral"`
	}

	MoodResponse struct {
		Selection Mood `json:"selection"`
		Mood      Mood `json:"mood"`
	}
)

// ParseMood maps an empty selection to auto and leaves anything else as given.
func ParseMood(s string) Mood {
	if s == "" {
		return MoodAuto
	}
	return Mood(s)
}
