package award

import "github.com/binetime/binetime/internal/domain/sleeper"

// game is a week's pairing of exactly two rosters.
type game struct {
	week int
	home sleeper.MatchupRecord
	away sleeper.MatchupRecord
}

// side returns the roster's record and its opponent's when it played in g.
func (g game) side(rosterID int) (own, opp sleeper.MatchupRecord, ok bool) {
	switch rosterID {
	case g.home.RosterID:
		return g.home, g.away, true
	case g.away.RosterID:
		return g.away, g.home, true
	}
	return sleeper.MatchupRecord{}, sleeper.MatchupRecord{}, false
}

// pairGames groups each week by matchup id and keeps groups of exactly two
// records. Bye weeks (no matchup id) never pair.
func pairGames(season sleeper.Season) []game {
	var games []game
	for i, week := range season {
		groups := make(map[int][]sleeper.MatchupRecord)
		var order []int
		for _, rec := range week {
			if rec.MatchupID == nil {
				continue
			}
			id := *rec.MatchupID
			if _, seen := groups[id]; !seen {
				order = append(order, id)
			}
			groups[id] = append(groups[id], rec)
		}
		for _, id := range order {
			if recs := groups[id]; len(recs) == 2 {
				games = append(games, game{week: i + 1, home: recs[0], away: recs[1]})
			}
		}
	}
	return games
}

// weeklyScores collects every roster's week totals in chronological order.
// Rosters are listed in order of first appearance; missing weeks add nothing.
func weeklyScores(season sleeper.Season) (order []int, scores map[int][]float64) {
	scores = make(map[int][]float64)
	for _, week := range season {
		for _, rec := range week {
			if _, seen := scores[rec.RosterID]; !seen {
				order = append(order, rec.RosterID)
			}
			scores[rec.RosterID] = append(scores[rec.RosterID], rec.Score())
		}
	}
	return order, scores
}

// recordFor returns the roster's first record in the week.
func recordFor(week sleeper.Week, rosterID int) (sleeper.MatchupRecord, bool) {
	for _, rec := range week {
		if rec.RosterID == rosterID {
			return rec, true
		}
	}
	return sleeper.MatchupRecord{}, false
}
