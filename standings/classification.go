package standings

import "github.com/pprado/futsal-league/models"

// The knockout stage is a fixed quarterfinal bracket of 8, and each repechage
// tie is a single match sending one team through. The reference rule set for
// a 13-team league: top 6 qualify directly, positions 7-10 contest the
// repechage for the 2 remaining slots, bottom 3 are out.
const (
	KnockoutSize               = 8
	maxRepechageSlots          = 4
	repechageTeamsPerQualifier = 2
)

// Classify derives the qualification plan for a league of teamCount teams.
//
// For teamCount > KnockoutSize the spare teams first shrink the repechage:
// repechage = min(4, 2*(teamCount-8)), direct = 8 - repechage/2, and the rest
// are eliminated, so direct plus repechage winners always fill the bracket.
// At 13 teams this reproduces the reference 6/4/3 split. At KnockoutSize or
// below, every team qualifies directly and there is no repechage.
func Classify(teamCount int) models.ClassificationPlan {
	if teamCount <= 0 {
		return models.ClassificationPlan{}
	}
	if teamCount <= KnockoutSize {
		return models.ClassificationPlan{
			TeamCount:   teamCount,
			DirectSlots: teamCount,
		}
	}

	repechage := repechageTeamsPerQualifier * (teamCount - KnockoutSize)
	if repechage > maxRepechageSlots {
		repechage = maxRepechageSlots
	}
	direct := KnockoutSize - repechage/repechageTeamsPerQualifier

	return models.ClassificationPlan{
		TeamCount:       teamCount,
		DirectSlots:     direct,
		RepechageSlots:  repechage,
		EliminatedSlots: teamCount - direct - repechage,
	}
}

// ApplyZones stamps each standings row with its classification zone according
// to the plan for the table size. The table must already be ranked.
func ApplyZones(table []models.StandingsEntry) []models.StandingsEntry {
	plan := Classify(len(table))
	for i := range table {
		switch {
		case i < plan.DirectSlots:
			table[i].Zone = models.ZoneDirect
		case i < plan.DirectSlots+plan.RepechageSlots:
			table[i].Zone = models.ZoneRepechage
		default:
			table[i].Zone = models.ZoneEliminated
		}
	}
	return table
}
