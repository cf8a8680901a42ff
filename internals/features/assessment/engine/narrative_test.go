package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrativeOpeningFollowsBand(t *testing.T) {
	assert.True(t, strings.HasPrefix(ComposeNarrative(20, SectorTech, SizeMedium), openings[BandFragile]))
	assert.True(t, strings.HasPrefix(ComposeNarrative(55, SectorTech, SizeMedium), openings[BandResilient]))
	assert.True(t, strings.HasPrefix(ComposeNarrative(80, SectorTech, SizeMedium), openings[BandLeader]))
}

func TestNarrativeSectorBranchAtThreshold(t *testing.T) {
	for sector, para := range sectorParagraphs {
		weak := ComposeNarrative(59.999, sector, SizeMedium)
		strong := ComposeNarrative(60, sector, SizeMedium)
		assert.Containsf(t, weak, para[0], "secteur %s", sector)
		assert.NotContainsf(t, weak, para[1], "secteur %s", sector)
		assert.Containsf(t, strong, para[1], "secteur %s", sector)
	}
}

func TestNarrativeSizeClosing(t *testing.T) {
	assert.Contains(t, ComposeNarrative(50, SectorRetail, SizeSmall), sizeClosings[0])
	assert.Contains(t, ComposeNarrative(50, SectorRetail, SizeCorp), sizeClosings[2])

	// PME et ETI partagent la même conclusion
	medium := ComposeNarrative(50, SectorRetail, SizeMedium)
	large := ComposeNarrative(50, SectorRetail, SizeLarge)
	assert.Equal(t, medium, large)
	assert.Contains(t, medium, sizeClosings[1])
}

func TestNarrativeUnknownSectorFallsBack(t *testing.T) {
	got := ComposeNarrative(50, Sector("???"), SizeMedium)
	assert.Contains(t, got, sectorParagraphs[SectorOther][0])
}

func TestNarrativeAlwaysThreeParagraphs(t *testing.T) {
	ratios := []float64{0, 39.9, 40, 59.9, 60, 74.9, 75, 100}
	for _, sc := range Sectors {
		for _, sz := range Sizes {
			for _, r := range ratios {
				n := ComposeNarrative(r, sc.Value, sz.Value)
				parts := strings.Split(n, "\n\n")
				require.Len(t, parts, 3)
				for _, p := range parts {
					require.NotEmpty(t, p)
				}
			}
		}
	}
}
