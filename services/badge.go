package services

import (
	"strings"

	"mission-mischief/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tierLabel title-cases a tier. Casers carry state, so each call builds its own.
func tierLabel(tier models.BadgeTier) string {
	return cases.Title(language.English).String(string(tier))
}

type BadgeService struct {
	Catalog *Catalog
}

func NewBadgeService(catalog *Catalog) *BadgeService {
	return &BadgeService{Catalog: catalog}
}

// BadgeTier derives the tier of group from the prank/goodwill pair.
// Goodwill alone outranks prank alone.
func (s *BadgeService) BadgeTier(profile *models.PlayerProfile, group string) models.BadgeTier {
	p := baseline(profile)
	var prankDone, goodwillDone bool
	for _, m := range s.Catalog.ByBadgeGroup(group) {
		if !p.HasCompleted(m.ID) {
			continue
		}
		switch m.Kind {
		case models.MissionKindPrank:
			prankDone = true
		case models.MissionKindGoodwill:
			goodwillDone = true
		}
	}
	switch {
	case prankDone && goodwillDone:
		return models.TierGold
	case goodwillDone:
		return models.TierVibrant
	case prankDone:
		return models.TierSilhouette
	}
	return models.TierLocked
}

// AllBadgeTiers renders every badge in catalog order.
func (s *BadgeService) AllBadgeTiers(profile *models.PlayerProfile) []models.BadgeView {
	p := baseline(profile)
	badges := s.Catalog.Badges()
	out := make([]models.BadgeView, 0, len(badges))
	for _, b := range badges {
		tier := s.BadgeTier(p, b.ID)
		out = append(out, models.BadgeView{
			Badge:   b,
			Tier:    tier,
			Label:   tierLabel(tier),
			Awarded: p.HasBadge(b.ID),
			Art:     badgeArt(b.Icon, tier),
		})
	}
	return out
}

// badgeArt maps "<name>-color.png" to the tier's artwork variant.
func badgeArt(icon string, tier models.BadgeTier) string {
	base := strings.TrimSuffix(icon, "-color.png")
	switch tier {
	case models.TierGold:
		return base + "-gold.png"
	case models.TierVibrant:
		return base + "-color.png"
	case models.TierSilhouette:
		return base + "-black.png"
	}
	return ""
}
