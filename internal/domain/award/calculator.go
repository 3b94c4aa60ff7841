package award

import (
	"fmt"
	"math"
	"sort"

	"github.com/binetime/binetime/internal/domain/sleeper"
)

const noData = "No data available"

// Calculator turns one league's season data into ranked awards. It performs
// no I/O and never mutates its inputs.
type Calculator struct {
	rosters []sleeper.Roster
	season  sleeper.Season
	names   map[int]string
	configs map[ID]Config
	games   []game
}

// NewCalculator indexes team names once. A nil or partial configs map falls
// back to the built-in catalog per award.
func NewCalculator(rosters []sleeper.Roster, users []sleeper.LeagueUser, season sleeper.Season, configs map[ID]Config) *Calculator {
	merged := DefaultConfigs()
	for id, cfg := range configs {
		merged[id] = cfg
	}
	return &Calculator{
		rosters: rosters,
		season:  season,
		names:   teamNames(rosters, users),
		configs: merged,
		games:   pairGames(season),
	}
}

// All computes every award in display order.
func (c *Calculator) All() []Award {
	return []Award{
		c.FewestPointsAgainst(),
		c.MostPointsAgainst(),
		c.MostPredictable(),
		c.MostConsistent(),
		c.BoomOrBustPlayer(),
		c.BoomOrBustTeam(),
		c.BestSingleGame(),
		c.BestGameAboveProjections(),
		c.BiggestBlowout(),
		c.BenchOutscoredStarters(),
		c.StartersOutplayedBench(),
		c.HighestScoringLoss(),
		c.MostInjuries(),
	}
}

func (c *Calculator) TeamName(rosterID int) string {
	if name, ok := c.names[rosterID]; ok {
		return name
	}
	return UnknownTeam
}

func (c *Calculator) entry(rosterID int, value float64, details string) Entry {
	return Entry{RosterID: rosterID, TeamName: c.TeamName(rosterID), Value: Round2(value), Details: details}
}

// ranked sorts entries stably by value and numbers them 1..N.
func (c *Calculator) ranked(id ID, entries []Entry, descending bool) Award {
	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Value < entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	a := c.shell(id)
	a.Available = true
	a.Leaderboard = entries
	if len(entries) > 0 {
		winner := entries[0]
		a.Winner = &winner
	}
	return a
}

func (c *Calculator) unavailable(id ID, reason string) Award {
	a := c.shell(id)
	a.UnavailableReason = reason
	a.Leaderboard = []Entry{}
	return a
}

func (c *Calculator) shell(id ID) Award {
	cfg, ok := c.configs[id]
	if !ok {
		cfg = Config{ID: id, Name: string(id)}
	}
	return Award{
		ID:          id,
		Name:        cfg.Name,
		Description: cfg.Description,
		Icon:        cfg.Icon,
		Category:    cfg.Category,
	}
}

func (c *Calculator) FewestPointsAgainst() Award {
	return c.ranked(FewestPointsAgainst, c.pointsAgainst(), false)
}

func (c *Calculator) MostPointsAgainst() Award {
	return c.ranked(MostPointsAgainst, c.pointsAgainst(), true)
}

func (c *Calculator) pointsAgainst() []Entry {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		v := Round2(r.Season().PointsAgainst())
		entries = append(entries, c.entry(r.RosterID, v, fmt.Sprintf("%.2f points against", v)))
	}
	return entries
}

func (c *Calculator) MostPredictable() Award {
	return c.unavailable(MostPredictable, "Requires weekly projections, which the league data does not include")
}

func (c *Calculator) MostConsistent() Award {
	return c.ranked(MostConsistent, c.deviations(), false)
}

func (c *Calculator) BoomOrBustTeam() Award {
	return c.ranked(BoomOrBustTeam, c.deviations(), true)
}

// deviations covers only rosters that have at least one weekly score.
func (c *Calculator) deviations() []Entry {
	order, scores := weeklyScores(c.season)
	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		samples := scores[id]
		if len(samples) == 0 {
			continue
		}
		sd := Round2(StdDev(samples))
		entries = append(entries, c.entry(id, sd, fmt.Sprintf("StdDev: %.2f", sd)))
	}
	return entries
}

// BoomOrBustPlayer ranks rosters by the most volatile player they rostered:
// the highest population std-dev of that player's weekly points.
func (c *Calculator) BoomOrBustPlayer() Award {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		weekly := make(map[string][]float64)
		for _, week := range c.season {
			rec, ok := recordFor(week, r.RosterID)
			if !ok {
				continue
			}
			for player, pts := range rec.PlayersPoints {
				weekly[player] = append(weekly[player], pts)
			}
		}

		players := make([]string, 0, len(weekly))
		for p := range weekly {
			players = append(players, p)
		}
		sort.Strings(players)

		best, bestPlayer := 0.0, ""
		for _, p := range players {
			if sd := StdDev(weekly[p]); bestPlayer == "" || sd > best {
				best, bestPlayer = sd, p
			}
		}

		if bestPlayer == "" {
			entries = append(entries, c.entry(r.RosterID, 0, noData))
			continue
		}
		v := Round2(best)
		entries = append(entries, c.entry(r.RosterID, v, fmt.Sprintf("Player %s, StdDev: %.2f", bestPlayer, v)))
	}
	return c.ranked(BoomOrBustPlayer, entries, true)
}

func (c *Calculator) BestSingleGame() Award {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		best, bestWeek := 0.0, 0
		for i, week := range c.season {
			rec, ok := recordFor(week, r.RosterID)
			if !ok {
				continue
			}
			if pts := clamp(rec.Score()); pts > best {
				best, bestWeek = pts, i+1
			}
		}
		entries = append(entries, c.entry(r.RosterID, best, weekDetail("%.2f points in Week %d", best, bestWeek)))
	}
	return c.ranked(BestSingleGame, entries, true)
}

func (c *Calculator) BestGameAboveProjections() Award {
	return c.unavailable(BestGameAboveProjections, "Requires weekly projections, which the league data does not include")
}

func (c *Calculator) BiggestBlowout() Award {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		best, bestWeek := 0.0, 0
		for _, g := range c.games {
			own, opp, ok := g.side(r.RosterID)
			if !ok {
				continue
			}
			if margin := clamp(own.Score() - opp.Score()); margin > best {
				best, bestWeek = margin, g.week
			}
		}
		entries = append(entries, c.entry(r.RosterID, best, weekDetail("%.2f point margin in Week %d", best, bestWeek)))
	}
	return c.ranked(BiggestBlowout, entries, true)
}

func (c *Calculator) BenchOutscoredStarters() Award {
	return c.ranked(BenchOutscoredStarters, c.lineupMargins(func(starters, bench float64) float64 {
		return bench - starters
	}), true)
}

func (c *Calculator) StartersOutplayedBench() Award {
	return c.ranked(StartersOutplayedBench, c.lineupMargins(func(starters, bench float64) float64 {
		return starters - bench
	}), true)
}

// lineupMargins finds each roster's largest weekly margin between starter and
// bench points. Weeks without a per-player breakdown are skipped.
func (c *Calculator) lineupMargins(margin func(starters, bench float64) float64) []Entry {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		best, bestWeek := math.Inf(-1), 0
		var bestStarters, bestBench float64
		for i, week := range c.season {
			rec, ok := recordFor(week, r.RosterID)
			if !ok || len(rec.PlayersPoints) == 0 {
				continue
			}
			starters := sum(rec.StartersPoints)
			total := 0.0
			for _, pts := range rec.PlayersPoints {
				total += clamp(pts)
			}
			bench := total - starters
			if m := clamp(margin(starters, bench)); m > best {
				best, bestWeek, bestStarters, bestBench = m, i+1, starters, bench
			}
		}

		if bestWeek == 0 {
			entries = append(entries, c.entry(r.RosterID, 0, noData))
			continue
		}
		entries = append(entries, c.entry(r.RosterID, best,
			fmt.Sprintf("Bench %.2f vs starters %.2f in Week %d", Round2(bestBench), Round2(bestStarters), bestWeek)))
	}
	return entries
}

func (c *Calculator) HighestScoringLoss() Award {
	entries := make([]Entry, 0, len(c.rosters))
	for _, r := range c.rosters {
		best, bestWeek := 0.0, 0
		for _, g := range c.games {
			own, opp, ok := g.side(r.RosterID)
			if !ok || own.Score() >= opp.Score() {
				continue
			}
			if pts := clamp(own.Score()); bestWeek == 0 || pts > best {
				best, bestWeek = pts, g.week
			}
		}
		details := "No losses recorded"
		if bestWeek > 0 {
			details = fmt.Sprintf("%.2f points in a Week %d loss", Round2(best), bestWeek)
		}
		entries = append(entries, c.entry(r.RosterID, best, details))
	}
	return c.ranked(HighestScoringLoss, entries, true)
}

func (c *Calculator) MostInjuries() Award {
	return c.unavailable(MostInjuries, "Requires a weekly injury report, which the league data does not include")
}

func weekDetail(format string, value float64, week int) string {
	if week == 0 {
		return noData
	}
	return fmt.Sprintf(format, Round2(value), week)
}
