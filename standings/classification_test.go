package standings

import (
	"testing"

	"github.com/pprado/futsal-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReferenceThirteen(t *testing.T) {
	plan := Classify(13)

	assert.Equal(t, 6, plan.DirectSlots)
	assert.Equal(t, 4, plan.RepechageSlots)
	assert.Equal(t, 3, plan.EliminatedSlots)
	assert.Equal(t, 13, plan.DirectSlots+plan.RepechageSlots+plan.EliminatedSlots)

	// Direct qualifiers plus repechage winners fill the quarterfinal bracket.
	assert.Equal(t, KnockoutSize, plan.DirectSlots+plan.RepechageSlots/2)
}

func TestClassifySlotSum(t *testing.T) {
	for n := 1; n <= 32; n++ {
		plan := Classify(n)
		assert.Equal(t, n, plan.DirectSlots+plan.RepechageSlots+plan.EliminatedSlots, "n=%d", n)
		assert.GreaterOrEqual(t, plan.DirectSlots, 0, "n=%d", n)
		assert.GreaterOrEqual(t, plan.RepechageSlots, 0, "n=%d", n)
		assert.GreaterOrEqual(t, plan.EliminatedSlots, 0, "n=%d", n)
	}
}

func TestClassifySmallLeagues(t *testing.T) {
	tests := []struct {
		teamCount  int
		direct     int
		repechage  int
		eliminated int
	}{
		{1, 1, 0, 0},
		{8, 8, 0, 0},
		{9, 7, 2, 0},
		{10, 6, 4, 0},
		{11, 6, 4, 1},
		{16, 6, 4, 6},
	}
	for _, tt := range tests {
		plan := Classify(tt.teamCount)
		assert.Equal(t, tt.direct, plan.DirectSlots, "n=%d direct", tt.teamCount)
		assert.Equal(t, tt.repechage, plan.RepechageSlots, "n=%d repechage", tt.teamCount)
		assert.Equal(t, tt.eliminated, plan.EliminatedSlots, "n=%d eliminated", tt.teamCount)
	}
}

func TestClassifyNonPositive(t *testing.T) {
	assert.Equal(t, models.ClassificationPlan{}, Classify(0))
	assert.Equal(t, models.ClassificationPlan{}, Classify(-3))
}

func TestApplyZones(t *testing.T) {
	teams := make([]models.Team, 13)
	for i := range teams {
		teams[i] = models.Team{ID: i + 1}
	}

	table := ApplyZones(Compute(teams, nil))
	require.Len(t, table, 13)

	for i, e := range table {
		switch {
		case i < 6:
			assert.Equal(t, models.ZoneDirect, e.Zone, "rank %d", e.Rank)
		case i < 10:
			assert.Equal(t, models.ZoneRepechage, e.Zone, "rank %d", e.Rank)
		default:
			assert.Equal(t, models.ZoneEliminated, e.Zone, "rank %d", e.Rank)
		}
	}
}
