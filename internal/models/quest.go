package models

// Module is a thematic unit of financial-literacy content containing quests.
type Module struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	Name            string `bson:"name" json:"name"`
	Description     string `bson:"description" json:"description"`
	DifficultyLevel string `bson:"difficulty_level" json:"difficultyLevel"`
	ContentURL      string `bson:"content_url,omitempty" json:"contentUrl,omitempty"`
}

// Quest is a single scenario-based exercise within a module. Quest definitions
// are reference data owned by content authoring and are never mutated by the
// scoring path.
type Quest struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	ModuleID    string `bson:"module_id" json:"moduleId"`
	QuestName   string `bson:"quest_name" json:"questName"`
	Description string `bson:"description" json:"description"`
	Scenario    string `bson:"scenario" json:"scenario"`
	// DifficultyMultiplier scales how the attempt is presented and feeds the
	// difficulty-adjustment signal. It does not rescale the computed score.
	DifficultyMultiplier float64 `bson:"difficulty_multiplier" json:"difficultyMultiplier"`
}
