package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyMaxUsesFixedCeiling(t *testing.T) {
	// Le plafond par question reste 30 même quand la meilleure option vaut 25.
	var tl Tally
	sumWeights := 0.0
	for _, q := range Battery {
		w := q.Weight[SectorIndustry]
		tl.Add(w, q.Options[len(q.Options)-1].Score)
		sumWeights += w
	}
	assert.InDelta(t, QuestionCeiling*sumWeights, tl.Max, 1e-9)
	assert.LessOrEqual(t, tl.Raw, tl.Max)
}

func TestRatioEmptyTally(t *testing.T) {
	var tl Tally
	assert.Equal(t, 0.0, tl.Ratio())
	assert.Equal(t, 0, tl.FinalScore())
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Band
	}{
		{0, BandFragile},
		{39.999, BandFragile},
		{40, BandResilient},
		{74.999, BandResilient},
		{75, BandLeader},
		{100, BandLeader},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, BandOf(c.ratio), "ratio=%v", c.ratio)
	}
}

func TestDiagnoseTitles(t *testing.T) {
	assert.Equal(t, "Compétitivité Fragile", Diagnose(20).Title)
	assert.Equal(t, "Urgence : Consolidation ou adossement à un groupe.", Diagnose(20).Recommendation)
	assert.Equal(t, "Bonne résilience", Diagnose(55).Title)
	assert.Equal(t, "Action : Croissance externe ciblée.", Diagnose(55).Recommendation)
	assert.Equal(t, "Leader de marché", Diagnose(90).Title)
	assert.Equal(t, "Stratégie : Devenez un consolidateur sectoriel.", Diagnose(90).Recommendation)
}

// Toutes les combinaisons possibles (6 secteurs × 3^5 parcours) doivent produire
// un score borné et un tally cohérent.
func TestScoreBoundedForAllPaths(t *testing.T) {
	for _, sc := range Sectors {
		picks := make([]int, len(Battery))
		for {
			var tl Tally
			for qi, q := range Battery {
				tl.Add(q.Weight[sc.Value], q.Options[picks[qi]].Score)
			}
			require.LessOrEqual(t, tl.Raw, tl.Max)
			score := tl.FinalScore()
			require.GreaterOrEqual(t, score, 0)
			require.LessOrEqual(t, score, 100)

			// incrément en base 3
			i := 0
			for ; i < len(picks); i++ {
				picks[i]++
				if picks[i] < len(Battery[i].Options) {
					break
				}
				picks[i] = 0
			}
			if i == len(picks) {
				break
			}
		}
	}
}

func TestTechBestAnswersScore(t *testing.T) {
	var tl Tally
	for _, q := range Battery {
		tl.Add(q.Weight[SectorTech], q.Options[len(q.Options)-1].Score)
	}
	// 30×0.8 + 25×(2.0+1.2+0.5+2.5) = 179 sur 210
	assert.InDelta(t, 179.0, tl.Raw, 1e-9)
	assert.InDelta(t, 210.0, tl.Max, 1e-9)
	assert.Equal(t, 85, tl.FinalScore())
	assert.Equal(t, BandLeader, BandOf(tl.Ratio()))
}

func TestParseSectorAndSize(t *testing.T) {
	s, ok := ParseSector("Transport")
	require.True(t, ok)
	assert.Equal(t, SectorTransport, s)
	assert.Equal(t, "Transport / Logistique", SectorLabel(s))

	_, ok = ParseSector("Agriculture")
	assert.False(t, ok)
	_, ok = ParseSector("")
	assert.False(t, ok)

	z, ok := ParseSize("Corp")
	require.True(t, ok)
	assert.Equal(t, "> 50 M€ (Groupe)", SizeLabel(z))
	_, ok = ParseSize("Huge")
	assert.False(t, ok)
}

func TestBatteryWeightsCoverEverySector(t *testing.T) {
	for _, q := range Battery {
		for _, sc := range Sectors {
			w, ok := q.Weight[sc.Value]
			require.Truef(t, ok, "question %d sans poids pour %s", q.ID, sc.Value)
			require.Greater(t, w, 0.0)
		}
	}
}
