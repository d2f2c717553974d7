package services

import (
	"fmt"
	"strings"

	"mission-mischief/models"

	"github.com/gosimple/unidecode"
)

// Catalog is the immutable, ordered mission registry.
type Catalog struct {
	missions []models.Mission
	byID     map[int]int
	badges   []models.Badge
	badgeIdx map[string]int
	buyIns   []models.BuyIn
	buyInIdx map[string]int
	folded   []string // search keys, aligned with missions
}

// NewCatalog validates and indexes the given definitions.
func NewCatalog(missions []models.Mission, badges []models.Badge, buyIns []models.BuyIn) (*Catalog, error) {
	c := &Catalog{
		missions: append([]models.Mission(nil), missions...),
		byID:     make(map[int]int, len(missions)),
		badges:   append([]models.Badge(nil), badges...),
		badgeIdx: make(map[string]int, len(badges)),
		buyIns:   append([]models.BuyIn(nil), buyIns...),
		buyInIdx: make(map[string]int, len(buyIns)),
	}

	for i, b := range c.badges {
		if _, dup := c.badgeIdx[b.ID]; dup {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		c.badgeIdx[b.ID] = i
	}
	for i, b := range c.buyIns {
		if _, dup := c.buyInIdx[b.ID]; dup {
			return nil, fmt.Errorf("duplicate buy-in id %q", b.ID)
		}
		c.buyInIdx[b.ID] = i
	}

	type pair struct{ prank, goodwill int }
	groups := map[string]*pair{}
	for i, m := range c.missions {
		if m.ID <= 0 {
			return nil, fmt.Errorf("mission %q has non-positive id %d", m.Title, m.ID)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate mission id %d", m.ID)
		}
		if !m.Points.Valid() {
			return nil, fmt.Errorf("mission %d has invalid point spec %+v", m.ID, m.Points)
		}
		c.byID[m.ID] = i

		if m.BadgeGroup == "" {
			continue
		}
		if _, ok := c.badgeIdx[m.BadgeGroup]; !ok {
			return nil, fmt.Errorf("mission %d references unknown badge group %q", m.ID, m.BadgeGroup)
		}
		g := groups[m.BadgeGroup]
		if g == nil {
			g = &pair{}
			groups[m.BadgeGroup] = g
		}
		switch m.Kind {
		case models.MissionKindPrank:
			g.prank++
		case models.MissionKindGoodwill:
			g.goodwill++
		}
		if g.prank > 1 || g.goodwill > 1 {
			return nil, fmt.Errorf("badge group %q has more than one %s mission", m.BadgeGroup, m.Kind)
		}
	}

	for _, id := range append(append([]int(nil), models.SetupMissionIDs...), models.BuyInSelectMissionID, models.FinishLineMissionID) {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("catalog is missing designated mission %d", id)
		}
	}

	c.folded = make([]string, len(c.missions))
	for i, m := range c.missions {
		c.folded[i] = foldSearch(m.Title + " " + m.Hashtag)
	}
	return c, nil
}

// MustNewCatalog panics on a corrupt catalog.
func MustNewCatalog(missions []models.Mission, badges []models.Badge, buyIns []models.BuyIn) *Catalog {
	c, err := NewCatalog(missions, badges, buyIns)
	if err != nil {
		panic(fmt.Sprintf("corrupt mission catalog: %v", err))
	}
	return c
}

// DefaultCatalog builds the built-in 50-mission catalog.
func DefaultCatalog() *Catalog {
	return MustNewCatalog(models.DefaultMissions, models.DefaultBadges, models.DefaultBuyIns)
}

func (c *Catalog) ByID(id int) (models.Mission, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Mission{}, false
	}
	return c.missions[i], true
}

// All returns every mission in catalog order.
func (c *Catalog) All() []models.Mission {
	return append([]models.Mission(nil), c.missions...)
}

func (c *Catalog) Len() int { return len(c.missions) }

func (c *Catalog) ByBadgeGroup(group string) []models.Mission {
	var out []models.Mission
	for _, m := range c.missions {
		if m.BadgeGroup == group {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) ByKind(kind models.MissionKind) []models.Mission {
	var out []models.Mission
	for _, m := range c.missions {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) Badge(id string) (models.Badge, bool) {
	i, ok := c.badgeIdx[id]
	if !ok {
		return models.Badge{}, false
	}
	return c.badges[i], true
}

func (c *Catalog) Badges() []models.Badge {
	return append([]models.Badge(nil), c.badges...)
}

func (c *Catalog) BuyIn(id string) (models.BuyIn, bool) {
	i, ok := c.buyInIdx[id]
	if !ok {
		return models.BuyIn{}, false
	}
	return c.buyIns[i], true
}

func (c *Catalog) BuyIns() []models.BuyIn {
	return append([]models.BuyIn(nil), c.buyIns...)
}

// Search matches missions whose title or hashtag contains query,
// ignoring case and diacritics.
func (c *Catalog) Search(query string) []models.Mission {
	q := foldSearch(query)
	if q == "" {
		return nil
	}
	var out []models.Mission
	for i, key := range c.folded {
		if strings.Contains(key, q) {
			out = append(out, c.missions[i])
		}
	}
	return out
}

func foldSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}
