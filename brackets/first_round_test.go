package brackets

import (
	"fmt"
	"testing"

	"github.com/pprado/futsal-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeds(n int) []SeedEntry {
	entries := make([]SeedEntry, n)
	for i := range entries {
		entries[i] = SeedEntry{TeamID: i + 1, Name: fmt.Sprintf("Team %d", i+1)}
	}
	return entries
}

func TestGenerateFirstRoundEmpty(t *testing.T) {
	assert.Empty(t, GenerateFirstRound(1, nil))
}

func TestGenerateFirstRoundSingleEntry(t *testing.T) {
	// rounds=0, totalSlots=1, byeCount=0: a lone entrant produces no fixture.
	assert.Empty(t, GenerateFirstRound(1, seeds(1)))
}

func TestGenerateFirstRoundFiveEntries(t *testing.T) {
	// N=5: rounds=3, totalSlots=8, byeCount=3.
	drafts := GenerateFirstRound(42, seeds(5))
	require.Len(t, drafts, 4)

	for i := 0; i < 3; i++ {
		d := drafts[i]
		require.NotNil(t, d.HomeTeamID)
		assert.Equal(t, i+1, *d.HomeTeamID, "byes go to the top seeds in order")
		assert.Nil(t, d.AwayTeamID)
		assert.Equal(t, models.MatchCompleted, d.Status)
		require.NotNil(t, d.HomeScore)
		require.NotNil(t, d.AwayScore)
		assert.Equal(t, 1, *d.HomeScore)
		assert.Equal(t, 0, *d.AwayScore)
		require.NotNil(t, d.Note)
		assert.Contains(t, *d.Note, "bye")
		assert.Equal(t, "Round 1", d.Round)
		assert.Equal(t, 42, d.TournamentID)
	}

	pairing := drafts[3]
	require.NotNil(t, pairing.HomeTeamID)
	require.NotNil(t, pairing.AwayTeamID)
	assert.Equal(t, 4, *pairing.HomeTeamID)
	assert.Equal(t, 5, *pairing.AwayTeamID)
	assert.Equal(t, models.MatchScheduled, pairing.Status)
	assert.Nil(t, pairing.HomeScore)
	assert.Nil(t, pairing.AwayScore)
	assert.Equal(t, "Round 1", pairing.Round)
}

func TestGenerateFirstRoundPowerOfTwo(t *testing.T) {
	// N=8: byeCount=0, exactly 4 scheduled pairings.
	drafts := GenerateFirstRound(1, seeds(8))
	require.Len(t, drafts, 4)

	for i, d := range drafts {
		assert.Equal(t, models.MatchScheduled, d.Status)
		require.NotNil(t, d.HomeTeamID)
		require.NotNil(t, d.AwayTeamID)
		assert.Equal(t, 2*i+1, *d.HomeTeamID)
		assert.Equal(t, 2*i+2, *d.AwayTeamID)
	}
}

func TestGenerateFirstRoundConsumesEveryEntryOnce(t *testing.T) {
	for _, n := range []int{2, 3, 5, 6, 7, 8, 9, 13, 16} {
		drafts := GenerateFirstRound(1, seeds(n))

		seen := map[int]int{}
		for _, d := range drafts {
			if d.HomeTeamID != nil {
				seen[*d.HomeTeamID]++
			}
			if d.AwayTeamID != nil {
				seen[*d.AwayTeamID]++
			}
		}

		assert.Len(t, seen, n, "n=%d: every entry consumed", n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "n=%d: team %d appears once", n, id)
		}
	}
}

func TestGenerateFirstRoundThreeEntries(t *testing.T) {
	// N=3: rounds=2, totalSlots=4, byeCount=1.
	drafts := GenerateFirstRound(7, seeds(3))
	require.Len(t, drafts, 2)

	assert.Equal(t, models.MatchCompleted, drafts[0].Status)
	assert.Equal(t, 1, *drafts[0].HomeTeamID)
	assert.Nil(t, drafts[0].AwayTeamID)

	assert.Equal(t, models.MatchScheduled, drafts[1].Status)
	assert.Equal(t, 2, *drafts[1].HomeTeamID)
	assert.Equal(t, 3, *drafts[1].AwayTeamID)
}
