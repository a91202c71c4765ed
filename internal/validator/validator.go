package validator

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/news"
	"github.com/arcanaland/cardcollector/internal/player"
	"github.com/arcanaland/cardcollector/internal/render"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks store contents against the data model invariants
type Validator struct {
	Cards   []card.Card
	Players []player.Player
	News    []news.Item
	ArtDir  string // Empty skips the art checks
	Results ValidationResults
}

// NewValidator creates a validator over the compiled-in stores
func NewValidator(artDir string) *Validator {
	return &Validator{
		Cards:   card.ListCards(),
		Players: player.ListPlayers(),
		News:    news.ListNews(),
		ArtDir:  artDir,
	}
}

// Validate runs every check. Errors are invariant violations; warnings are
// problems the renderers can work around.
func (v *Validator) Validate() ValidationResults {
	v.Results = ValidationResults{}

	v.validateCards()
	v.validatePlayers()
	v.validateNews()
	v.validateArt()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCards checks card ids, rarities and stats
func (v *Validator) validateCards() {
	if len(v.Cards) == 0 {
		v.errorf("card catalog is empty")
		return
	}

	seen := make(map[int]bool)
	for _, c := range v.Cards {
		if seen[c.ID] {
			v.errorf("card id %d is not unique", c.ID)
		}
		seen[c.ID] = true

		if c.Name == "" {
			v.errorf("card %d has no name", c.ID)
		}
		if !c.Rarity.Valid() {
			v.errorf("card %d has unknown rarity %s", c.ID, c.Rarity)
		}
		if c.Level < 0 {
			v.errorf("card %d has negative level %d", c.ID, c.Level)
		}
		if c.Power < 0 {
			v.errorf("card %d has negative power %d", c.ID, c.Power)
		}
		if c.Image == "" {
			v.warnf("card %d has no image reference", c.ID)
		}
	}
}

// validatePlayers checks player ids, counters and the rank order
func (v *Validator) validatePlayers() {
	seen := make(map[int]bool)
	for i, p := range v.Players {
		if seen[p.ID] {
			v.errorf("player id %d is not unique", p.ID)
		}
		seen[p.ID] = true

		if p.Level < 0 {
			v.errorf("player %s has negative level %d", p.Name, p.Level)
		}
		if p.Cards < 0 {
			v.errorf("player %s has negative card count %d", p.Name, p.Cards)
		}
		if i > 0 && p.Rating > v.Players[i-1].Rating {
			v.errorf("leaderboard out of order: %s (%d) ranked below %s (%d)",
				p.Name, p.Rating, v.Players[i-1].Name, v.Players[i-1].Rating)
		}
	}
}

// validateNews checks news ids, categories and dates
func (v *Validator) validateNews() {
	seen := make(map[int]bool)
	for _, it := range v.News {
		if seen[it.ID] {
			v.errorf("news id %d is not unique", it.ID)
		}
		seen[it.ID] = true

		if !it.Category.Valid() {
			v.errorf("news %d has unknown category %s", it.ID, it.Category)
		}
		if _, err := it.Time(); err != nil {
			v.errorf("%v", err)
		}
	}
}

// validateArt warns about card images missing from the art directory
func (v *Validator) validateArt() {
	if v.ArtDir == "" {
		return
	}
	if _, err := os.Stat(v.ArtDir); os.IsNotExist(err) {
		v.warnf("art directory %s does not exist; cards render as gradient swatches", v.ArtDir)
		return
	}

	loader := &render.ArtLoader{Dir: v.ArtDir}
	for _, c := range v.Cards {
		if c.Image == "" {
			continue
		}
		if _, err := os.Stat(loader.ImagePath(c)); os.IsNotExist(err) {
			v.warnf("card %d art not found: %s", c.ID, c.Image)
		}
	}
}
