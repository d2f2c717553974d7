package models

// BadgeTier is the derived visual state of a badge group.
type BadgeTier string

const (
	TierLocked     BadgeTier = "locked"
	TierSilhouette BadgeTier = "silhouette" // prank only
	TierVibrant    BadgeTier = "vibrant"    // goodwill only
	TierGold       BadgeTier = "gold"       // both halves
)

// Rank orders tiers so callers can compare them.
func (t BadgeTier) Rank() int {
	switch t {
	case TierGold:
		return 3
	case TierVibrant:
		return 2
	case TierSilhouette:
		return 1
	}
	return 0
}

// BadgeView is a badge group as rendered for the player.
type BadgeView struct {
	Badge
	Tier    BadgeTier `json:"tier"`
	Label   string    `json:"label"`
	Awarded bool      `json:"awarded"`
	Art     string    `json:"art"` // tier-specific artwork file
}

// SpecialOverlay drawn over the avatar.
type SpecialOverlay string

const (
	OverlayNone         SpecialOverlay = ""
	OverlayCheater      SpecialOverlay = "cheater"
	OverlayBountyHunter SpecialOverlay = "bounty_hunter"
)

// MascotExpression is the mood of the Mayhem mascot.
type MascotExpression string

const (
	MascotWorried    MascotExpression = "worried"
	MascotExcited    MascotExpression = "excited"
	MascotVampire    MascotExpression = "vampire"
	MascotBlankStare MascotExpression = "blank-stare"
	MascotHalo       MascotExpression = "halo"
)

// CrownBadge is the artwork shown once every buy-in path has been walked.
const CrownBadge = "crown-of-chaos.png"
