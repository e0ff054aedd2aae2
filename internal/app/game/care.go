package game

import (
	"context"
	"log"

	"horsekeep/internal/app/events"
	"horsekeep/internal/domain/horse"
)

// Groom consumes one brush use for a cleanliness gain.
func (o *Orchestrator) Groom(ctx context.Context) bool {
	now := o.now()
	ok := false
	o.Store.Update(func(s *horse.GameState) {
		ok = s.ApplyGroom(now)
	})
	if !ok {
		log.Printf("game: groom rejected")
		o.recordRejected("groom")
		return false
	}
	o.recordSuccess("groom")
	o.persistState(ctx)
	o.publish(events.TypeGroomed, now, nil)
	return true
}

// Pet raises happiness, gated by the pet cooldown.
func (o *Orchestrator) Pet(ctx context.Context) bool {
	now := o.now()
	ok := false
	o.Store.Update(func(s *horse.GameState) {
		ok = s.ApplyPet(now)
	})
	if !ok {
		o.recordRejected("pet")
		return false
	}
	o.recordSuccess("pet")
	o.persistState(ctx)
	o.publish(events.TypePetted, now, nil)
	return true
}

// SelectTool toggles the active tool: re-selecting the current tool
// deselects it.
func (o *Orchestrator) SelectTool(tool horse.Tool) horse.Tool {
	now := o.now()
	var selected horse.Tool
	o.Store.Update(func(s *horse.GameState) {
		if s.UI.SelectedTool == tool {
			s.UI.SelectedTool = horse.ToolNone
		} else {
			s.UI.SelectedTool = tool
		}
		s.UI.LastInteraction = now
		selected = s.UI.SelectedTool
	})
	return selected
}

// SetLanguage switches the locale tag. Translation content is the
// presentation layer's concern.
func (o *Orchestrator) SetLanguage(ctx context.Context, language string) bool {
	if language == "" {
		return false
	}
	now := o.now()
	changed := false
	o.Store.Update(func(s *horse.GameState) {
		if s.Language != language {
			s.Language = language
			s.UpdatedAt = now
			changed = true
		}
	})
	if changed {
		o.persistState(ctx)
		o.publish(events.TypeLanguageChanged, now, language)
	}
	return changed
}
