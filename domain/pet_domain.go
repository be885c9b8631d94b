package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPet  = "success get pet"
	MessageSuccessFeedPet = "pet fed successfully"
	MessageSuccessSetMood = "pet mood updated successfully"

	MessageFailedGetPet  = "failed to get pet"
	MessageFailedFeedPet = "failed to feed pet"
	MessageFailedSetMood = "failed to update pet mood"

	ErrInvalidPetMood = errors.New("invalid pet mood")
)

// PetMood is the pet's emotional state, independent from the recipe Mood.
type PetMood string

const (
	PetHappy   PetMood = "Happy"
	PetExcited PetMood = "Excited"
	PetFull    PetMood = "Full"
	PetSleepy  PetMood = "Sleepy"
)

const (
	DefaultPetName = "Chefie"

	XPPerFeed  = 20
	XPPerLevel = 100
)

// RevertDelay reports how long a mood lasts before the pet settles back to
// Happy. Happy and unknown moods never revert.
func RevertDelay(m PetMood) (time.Duration, bool) {
	switch m {
	case PetExcited:
		return 12 * time.Second, true
	case PetFull:
		return 10 * time.Second, true
	case PetSleepy:
		return 15 * time.Second, true
	default:
		return 0, false
	}
}

type (
	PetState struct {
		Name  string             `json:"name"`
		Mood  PetMood            `json:"mood"`
		Level int                `json:"level"`
		XP    int                `json:"xp"`
		Img   map[PetMood]string `json:"img"`
	}

	SetPetMoodRequest struct {
		Mood string `json:"mood" validate:"required,oneof=Happy Excited Full Sleepy"`
	}

	PetResponse struct {
		PetState
		Image     string `json:"image"`
		XPPercent int    `json:"xp_percent"`
	}

	FeedResponse struct {
		Pet       PetResponse `json:"pet"`
		LeveledUp bool        `json:"leveled_up"`
	}
)

// DefaultPetImages maps each mood to its sprite.
func DefaultPetImages() map[PetMood]string {
	return map[PetMood]string{
		PetHappy:   "pet_happy.gif",
		PetExcited: "pet_excited.gif",
		PetFull:    "pet_full.gif",
		PetSleepy:  "pet_sleepy.gif",
	}
}

func DefaultPet() PetState {
	return PetState{
		Name:  DefaultPetName,
		Mood:  PetHappy,
		Level: 1,
		XP:    0,
		Img:   DefaultPetImages(),
	}
}

// View builds the display shape for the pet widget.
func (p PetState) View() PetResponse {
	return PetResponse{
		PetState:  p,
		Image:     p.Img[p.Mood],
		XPPercent: p.XP * 100 / XPPerLevel,
	}
}
