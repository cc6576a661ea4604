package team

import "strings"

// SelectDefault picks the team the dashboard shows when none is chosen.
// The flagged home team wins; otherwise a case-insensitive match on
// homeName; otherwise the first team. It reports false for an empty list.
func SelectDefault(teams []Team, homeName string) (Team, bool) {
	if len(teams) == 0 {
		return Team{}, false
	}

	for _, t := range teams {
		if t.IsMyTeam {
			return t, true
		}
	}

	if homeName != "" {
		for _, t := range teams {
			if IsHomeTeamName(t.Name, homeName) {
				return t, true
			}
		}
	}

	return teams[0], true
}

// IsHomeTeamName reports whether name designates the configured home team.
// Spreadsheets spell it with varying case ("Corpo'mate", "Corpo'Mate").
func IsHomeTeamName(name, homeName string) bool {
	return homeName != "" && strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(homeName))
}
