package entities

// Record is one persisted JSON value under a fixed key (favoriteRecipes,
// completedRecipes, petData, missionProgress).
type Record struct {
	Key   string `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`

	Timestamp
}
