package record

import (
	"encoding/json"
	"fmt"
	"moodbite/domain"
)

// Source tells where a decoded record value came from.
type Source int

const (
	// SourceStored means the persisted value decoded cleanly.
	SourceStored Source = iota
	// SourceMissing means nothing was persisted; the default was used.
	SourceMissing
	// SourceCorrupt means the persisted value did not decode; the default was used.
	SourceCorrupt
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceMissing:
		return "missing"
	case SourceCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Decoded is a record value tagged with its Source.
type Decoded[T any] struct {
	Value  T
	Source Source
}

// Defaulted reports whether the default value was substituted.
func (d Decoded[T]) Defaulted() bool {
	return d.Source != SourceStored
}

func decode[T any](raw string, found bool, def func() T, normalize func(*T)) Decoded[T] {
	if !found {
		return Decoded[T]{Value: def(), Source: SourceMissing}
	}
	v := def()
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Decoded[T]{Value: def(), Source: SourceCorrupt}
	}
	if normalize != nil {
		normalize(&v)
	}
	return Decoded[T]{Value: v, Source: SourceStored}
}

// DecodeIDs decodes favoriteRecipes/completedRecipes. Blank and repeated
// IDs are dropped, first occurrence wins.
func DecodeIDs(raw string, found bool) Decoded[[]string] {
	return decode(raw, found, func() []string { return []string{} }, func(ids *[]string) {
		seen := make(map[string]struct{}, len(*ids))
		out := make([]string, 0, len(*ids))
		for _, id := range *ids {
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
		*ids = out
	})
}

// DecodePet decodes petData. Missing sprites are filled from the defaults
// and out-of-range fields are reset.
func DecodePet(raw string, found bool) Decoded[domain.PetState] {
	return decode(raw, found, domain.DefaultPet, func(p *domain.PetState) {
		img := domain.DefaultPetImages()
		for mood, ref := range p.Img {
			img[mood] = ref
		}
		p.Img = img
		if p.Name == "" {
			p.Name = domain.DefaultPetName
		}
		if p.Mood == "" {
			p.Mood = domain.PetHappy
		}
		if p.Level < 1 {
			p.Level = 1
		}
		if p.XP < 0 || p.XP >= domain.XPPerLevel {
			p.XP = 0
		}
	})
}

// DecodeMissions decodes missionProgress. Absent counters read as zero.
func DecodeMissions(raw string, found bool) Decoded[domain.MissionProgress] {
	return decode(raw, found, func() domain.MissionProgress { return domain.MissionProgress{} }, nil)
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(b), nil
}
