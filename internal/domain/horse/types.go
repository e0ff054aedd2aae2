package horse

import "time"

type HorseStatus struct {
	Hunger      int `json:"hunger"`
	Cleanliness int `json:"cleanliness"`
	Happiness   int `json:"happiness"`
}

type Inventory struct {
	Carrots   int `json:"carrots"`
	BrushUses int `json:"brush_uses"`
}

type Tool string

const (
	ToolNone   Tool = ""
	ToolCarrot Tool = "carrot"
	ToolBrush  Tool = "brush"
)

type UIState struct {
	SelectedTool    Tool      `json:"selected_tool,omitempty"`
	LastInteraction time.Time `json:"-"`
	LastPet         time.Time `json:"-"`
}

type FeedingState struct {
	// Eating and EatStart are transient: they never survive a save.
	Eating         bool        `json:"is_eating"`
	EatStart       *time.Time  `json:"eat_start_time,omitempty"`
	RecentFeedings []time.Time `json:"recent_feedings"`
	FullUntil      *time.Time  `json:"full_until,omitempty"`
}

type GameClockState struct {
	StartedAt *time.Time `json:"started_at,omitempty"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type GiftBox struct {
	ID        string   `json:"id"`
	SpawnTime int64    `json:"spawn_time"` // elapsed session seconds at spawn
	Position  Position `json:"position"`
	Claimed   bool     `json:"claimed"`
}

type RewardType string

const (
	RewardCarrots   RewardType = "carrots"
	RewardBrushUses RewardType = "brush_uses"
	RewardCurrency  RewardType = "currency"
)

type Reward struct {
	Type   RewardType `json:"type"`
	Amount int        `json:"amount"`
}

// GameState is the aggregate every other component reads from and writes
// through. GameOver holds exactly when all three meters are simultaneously
// zero; only the explicit game-over check sets it and only a reset clears it.
type GameState struct {
	Version   string         `json:"version"`
	UpdatedAt time.Time      `json:"updated_at"`
	Horse     HorseStatus    `json:"horse"`
	Inventory Inventory      `json:"inventory"`
	UI        UIState        `json:"ui"`
	Feeding   FeedingState   `json:"feeding"`
	Language  string         `json:"language"`
	Currency  int            `json:"currency"`
	Clock     GameClockState `json:"game_clock"`
	GiftBoxes []GiftBox      `json:"gift_boxes"`
	GameOver  bool           `json:"is_game_over"`
}
