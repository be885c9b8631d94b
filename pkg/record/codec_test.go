package record

import (
	"testing"

	"moodbite/domain"

	"github.com/stretchr/testify/assert"
)

func TestDecodeIDs(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		found  bool
		want   []string
		source Source
	}{
		{name: "missing", found: false, want: []string{}, source: SourceMissing},
		{name: "stored", raw: `["52772","52773"]`, found: true, want: []string{"52772", "52773"}, source: SourceStored},
		{name: "duplicates and blanks dropped", raw: `["1","","1","2"]`, found: true, want: []string{"1", "2"}, source: SourceStored},
		{name: "null", raw: `null`, found: true, want: []string{}, source: SourceStored},
		{name: "corrupt", raw: `["1",`, found: true, want: []string{}, source: SourceCorrupt},
		{name: "wrong shape", raw: `{"a":1}`, found: true, want: []string{}, source: SourceCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeIDs(tt.raw, tt.found)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.source, got.Source)
		})
	}
}

func TestDecodePet(t *testing.T) {
	t.Run("missing uses default", func(t *testing.T) {
		got := DecodePet("", false)
		assert.Equal(t, domain.DefaultPet(), got.Value)
		assert.True(t, got.Defaulted())
	})

	t.Run("corrupt uses default", func(t *testing.T) {
		got := DecodePet("{not json", true)
		assert.Equal(t, domain.DefaultPet(), got.Value)
		assert.Equal(t, SourceCorrupt, got.Source)
	})

	t.Run("custom sprite kept, missing sprites patched", func(t *testing.T) {
		got := DecodePet(`{"name":"Nori","mood":"Full","level":3,"xp":40,"img":{"Full":"custom.gif"}}`, true)
		assert.Equal(t, SourceStored, got.Source)
		assert.Equal(t, "Nori", got.Value.Name)
		assert.Equal(t, domain.PetFull, got.Value.Mood)
		assert.Equal(t, 3, got.Value.Level)
		assert.Equal(t, 40, got.Value.XP)
		assert.Equal(t, "custom.gif", got.Value.Img[domain.PetFull])
		assert.Equal(t, "pet_sleepy.gif", got.Value.Img[domain.PetSleepy])
	})

	t.Run("out of range fields reset", func(t *testing.T) {
		got := DecodePet(`{"name":"","mood":"","level":0,"xp":250}`, true)
		assert.Equal(t, domain.DefaultPetName, got.Value.Name)
		assert.Equal(t, domain.PetHappy, got.Value.Mood)
		assert.Equal(t, 1, got.Value.Level)
		assert.Equal(t, 0, got.Value.XP)
	})
}

func TestDecodeMissions(t *testing.T) {
	got := DecodeMissions(`{"dailyTry":2,"weeklyFeed":14}`, true)
	assert.Equal(t, SourceStored, got.Source)
	assert.Equal(t, domain.MissionProgress{DailyTry: 2, WeeklyFeed: 14}, got.Value)

	got = DecodeMissions(`{"dailyTry":"two"}`, true)
	assert.Equal(t, SourceCorrupt, got.Source)
	assert.Equal(t, domain.MissionProgress{}, got.Value)

	got = DecodeMissions("", false)
	assert.Equal(t, SourceMissing, got.Source)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "stored", SourceStored.String())
	assert.Equal(t, "missing", SourceMissing.String())
	assert.Equal(t, "corrupt", SourceCorrupt.String())
	assert.Equal(t, "unknown", Source(42).String())
}
