// internals/features/assessment/engine/scoring.go
package engine

import "math"

// QuestionCeiling: plafond fixe par question pour le score maximum, quel que soit
// le barème réel des options (comparabilité historique des scores, conservé tel quel).
const QuestionCeiling = 30

// Tally accumule les points pondérés d'une session. Raw ≤ Max en permanence.
type Tally struct {
	Raw float64
	Max float64
}

func (t *Tally) Add(weight float64, optionScore int) {
	t.Raw += float64(optionScore) * weight
	t.Max += QuestionCeiling * weight
}

// Ratio renvoie le pourcentage 0–100; défini uniquement quand Max > 0.
func (t Tally) Ratio() float64 {
	if t.Max <= 0 {
		return 0
	}
	return t.Raw / t.Max * 100
}

func (t Tally) FinalScore() int {
	return int(math.Round(t.Ratio()))
}

/* =========================
   Classification
   ========================= */

type Band int

const (
	BandFragile Band = iota
	BandResilient
	BandLeader
)

// BandOf: ratio < 40 → fragile, 40 ≤ ratio < 75 → résilient, ratio ≥ 75 → leader.
func BandOf(ratio float64) Band {
	if ratio < 40 {
		return BandFragile
	}
	if ratio < 75 {
		return BandResilient
	}
	return BandLeader
}

type Diagnosis struct {
	Band           Band   `json:"-"`
	Title          string `json:"title"`
	Recommendation string `json:"recommendation"`
}

var diagnoses = map[Band]Diagnosis{
	BandFragile: {
		Band:           BandFragile,
		Title:          "Compétitivité Fragile",
		Recommendation: "Urgence : Consolidation ou adossement à un groupe.",
	},
	BandResilient: {
		Band:           BandResilient,
		Title:          "Bonne résilience",
		Recommendation: "Action : Croissance externe ciblée.",
	},
	BandLeader: {
		Band:           BandLeader,
		Title:          "Leader de marché",
		Recommendation: "Stratégie : Devenez un consolidateur sectoriel.",
	},
}

func Diagnose(ratio float64) Diagnosis {
	return diagnoses[BandOf(ratio)]
}
