package game

import (
	"horsekeep/internal/domain/gametime"
	"horsekeep/internal/domain/horse"
)

// StateView is the read model the transports hand to the presentation layer:
// the snapshot plus the derived facts the UI polls every frame.
type StateView struct {
	Horse               horse.HorseStatus `json:"horse"`
	Inventory           horse.Inventory   `json:"inventory"`
	SelectedTool        horse.Tool        `json:"selected_tool"`
	IsEating            bool              `json:"is_eating"`
	CanFeed             bool              `json:"can_feed"`
	IsFull              bool              `json:"is_full"`
	SatietyCount        int               `json:"satiety_count"`
	CooldownRemainingMs int64             `json:"cooldown_remaining_ms"`
	Currency            int               `json:"currency"`
	GiftBoxes           []horse.GiftBox   `json:"gift_boxes"`
	Language            string            `json:"language"`
	ElapsedSeconds      int64             `json:"elapsed_seconds"`
	SessionClock        string            `json:"session_clock"`
	GameOver            bool              `json:"is_game_over"`
}

func (o *Orchestrator) View() StateView {
	now := o.now()
	snapshot := o.Store.Snapshot()
	elapsed := snapshot.ElapsedSessionSeconds(now)
	return StateView{
		Horse:               snapshot.Horse,
		Inventory:           snapshot.Inventory,
		SelectedTool:        snapshot.UI.SelectedTool,
		IsEating:            snapshot.Feeding.Eating,
		CanFeed:             horse.CanFeed(snapshot, now),
		IsFull:              horse.IsFull(snapshot, now),
		SatietyCount:        horse.SatietyCount(snapshot.Feeding.RecentFeedings, now),
		CooldownRemainingMs: horse.FullCooldownRemaining(snapshot, now).Milliseconds(),
		Currency:            snapshot.Currency,
		GiftBoxes:           snapshot.GiftBoxes,
		Language:            snapshot.Language,
		ElapsedSeconds:      elapsed,
		SessionClock:        gametime.FormatClock(elapsed),
		GameOver:            snapshot.GameOver,
	}
}
