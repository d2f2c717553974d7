package services

import (
	"time"

	"mission-mischief/models"
)

// Honor change reasons recorded in the audit trail.
const (
	ReasonMissionSubmission = "mission_submission"
	ReasonGuiltyVerdict     = "guilty_verdict"
	ReasonFalseAccusation   = "false_accusation"
	ReasonJuryDuty          = "jury_duty"
)

// UpdateHonor applies a signed delta, flooring the score at 0. There is no upper cap.
func UpdateHonor(profile *models.PlayerProfile, delta int, reason string, now time.Time) *models.PlayerProfile {
	out := baseline(profile).Clone()
	applyHonor(out, delta, reason, now)
	return out
}

func applyHonor(p *models.PlayerProfile, delta int, reason string, now time.Time) {
	score := p.HonorScore + delta
	if score < 0 {
		score = 0
	}
	p.HonorScore = score
	p.HonorHistory = append(p.HonorHistory, models.HonorEntry{
		Delta:  delta,
		Reason: reason,
		Score:  score,
		At:     now.UTC(),
	})
}

// CanStartTrial is the single honor gate for accusations and direct submissions.
func CanStartTrial(profile *models.PlayerProfile) bool {
	return baseline(profile).HonorScore >= models.MinHonorForTrial
}
