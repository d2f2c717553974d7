package models

import "sort"

// MissionKind classifies a mission; badge tiering only looks at prank and goodwill.
type MissionKind string

const (
	MissionKindSetup    MissionKind = "setup"
	MissionKindBuyIn    MissionKind = "buyin"
	MissionKindPrank    MissionKind = "prank"
	MissionKindGoodwill MissionKind = "goodwill"
	MissionKindSpecial  MissionKind = "special"
)

// PointSpecKind describes how a mission's point value is expressed.
type PointSpecKind string

const (
	PointsFixed    PointSpecKind = "fixed"
	PointsRange    PointSpecKind = "range"
	PointsSet      PointSpecKind = "set"
	PointsVariable PointSpecKind = "variable"
)

// PointSpec is the allowed point value(s) for a mission.
// Variable specs are open-ended in the game but the UI prompts from Min..Max.
type PointSpec struct {
	Kind   PointSpecKind `json:"kind"`
	Value  int           `json:"value,omitempty"`
	Min    int           `json:"min,omitempty"`
	Max    int           `json:"max,omitempty"`
	Values []int         `json:"values,omitempty"`
	Label  string        `json:"label"` // as printed on the mission card
}

func FixedPoints(v int, label string) PointSpec {
	return PointSpec{Kind: PointsFixed, Value: v, Label: label}
}

func RangePoints(min, max int, label string) PointSpec {
	return PointSpec{Kind: PointsRange, Min: min, Max: max, Label: label}
}

func SetPoints(label string, values ...int) PointSpec {
	vs := append([]int(nil), values...)
	sort.Ints(vs)
	return PointSpec{Kind: PointsSet, Values: vs, Label: label}
}

func VariablePoints(min, max int, label string) PointSpec {
	return PointSpec{Kind: PointsVariable, Min: min, Max: max, Label: label}
}

// Allows reports whether points is an acceptable submission value.
func (p PointSpec) Allows(points int) bool {
	switch p.Kind {
	case PointsFixed:
		return points == p.Value
	case PointsRange, PointsVariable:
		return points >= p.Min && points <= p.Max
	case PointsSet:
		for _, v := range p.Values {
			if v == points {
				return true
			}
		}
	}
	return false
}

// Options lists every allowed value in ascending order, for point pickers.
func (p PointSpec) Options() []int {
	switch p.Kind {
	case PointsFixed:
		return []int{p.Value}
	case PointsRange, PointsVariable:
		if p.Max < p.Min {
			return nil
		}
		out := make([]int, 0, p.Max-p.Min+1)
		for v := p.Min; v <= p.Max; v++ {
			out = append(out, v)
		}
		return out
	case PointsSet:
		return append([]int(nil), p.Values...)
	}
	return nil
}

// Valid reports whether the point rule is internally consistent.
func (p PointSpec) Valid() bool {
	switch p.Kind {
	case PointsFixed:
		return p.Value >= 0
	case PointsRange, PointsVariable:
		return p.Min >= 0 && p.Max >= p.Min
	case PointsSet:
		return len(p.Values) > 0
	}
	return false
}

// Mission is one immutable catalog entry.
type Mission struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	ProofHint     string      `json:"proof_hint"`
	Hashtag       string      `json:"hashtag"`
	CardDrop      string      `json:"card_drop,omitempty"`
	BadgeGroup    string      `json:"badge_group,omitempty"` // empty for badge-less missions
	Kind          MissionKind `json:"kind"`
	Points        PointSpec   `json:"points"`
	RequiresBuyIn bool        `json:"requires_buy_in"`
	Mayhem        string      `json:"mayhem,omitempty"` // mascot mood shown on the card
}

// Badge is a grouping key for paired missions plus its artwork.
type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// BuyIn is one of the pacing choices offered by the selection mission.
type BuyIn struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge,omitempty"` // empty for the opt-out
	Hashtag     string `json:"hashtag"`
	ProofHint   string `json:"proof_hint"`
}

const (
	BuyInRecycling = "recycling"
	BuyInCleanup   = "cleanup"
	BuyInReferral  = "referral"
	BuyInNothing   = "nothing"
)
