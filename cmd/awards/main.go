package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/binetime/binetime/external/sleeperapi"
	"github.com/binetime/binetime/internal/config"
	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/platform/logging"
	"github.com/binetime/binetime/internal/usecase"
)

const (
	leagueFlag  = "league"
	weeksFlag   = "weeks"
	jsonFlag    = "json"
	baseURLFlag = "sleeper-base-url"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "awards",
		Usage: "compute season awards for a Sleeper league",
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "fetch a league season and print every award",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    leagueFlag,
						Aliases: []string{"l"},
						Usage:   "Sleeper league id",
						EnvVars: []string{"SLEEPER_DEFAULT_LEAGUE_ID"},
						Value:   config.DefaultSleeperLeagueID,
					},
					&cli.IntFlag{
						Name:    weeksFlag,
						Aliases: []string{"w"},
						Usage:   "number of regular season weeks to load",
						EnvVars: []string{"SLEEPER_SEASON_WEEKS"},
						Value:   sleeperapi.DefaultSeasonWeeks,
					},
					&cli.BoolFlag{
						Name:  jsonFlag,
						Usage: "print awards as JSON",
					},
					&cli.StringFlag{
						Name:    baseURLFlag,
						Usage:   "Sleeper API base url",
						EnvVars: []string{"SLEEPER_BASE_URL"},
						Value:   sleeperapi.DefaultBaseURL,
					},
				},
				Action: compute,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func compute(c *cli.Context) error {
	weeks := c.Int(weeksFlag)
	if weeks < 1 || weeks > 18 {
		return fmt.Errorf("--weeks must be between 1 and 18")
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	client := sleeperapi.NewClient(sleeperapi.ClientConfig{
		BaseURL:    c.String(baseURLFlag),
		MaxRetries: 2,
		Logger:     logging.NewJSON(logging.LevelWarn),
	})

	snapshot, err := usecase.FetchSeasonSnapshot(ctx, client, c.String(leagueFlag), weeks)
	if err != nil {
		return err
	}
	awards := award.NewCalculator(snapshot.Rosters, snapshot.Users, snapshot.Season, award.DefaultConfigs()).All()

	if c.Bool(jsonFlag) {
		return writeJSON(c.App.Writer, snapshot.League, weeks, awards)
	}
	return writeTable(c.App.Writer, snapshot.League.Name, weeks, awards)
}

type entryOutput struct {
	Rank     int     `json:"rank"`
	RosterID int     `json:"roster_id"`
	TeamName string  `json:"team_name"`
	Value    float64 `json:"value"`
	Details  string  `json:"details"`
}

type awardOutput struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Icon              string        `json:"icon"`
	Category          string        `json:"category"`
	Available         bool          `json:"available"`
	UnavailableReason string        `json:"unavailable_reason,omitempty"`
	Winner            *entryOutput  `json:"winner"`
	Leaderboard       []entryOutput `json:"leaderboard"`
}

type awardsOutput struct {
	LeagueID   string        `json:"league_id"`
	LeagueName string        `json:"league_name"`
	Weeks      int           `json:"weeks"`
	Awards     []awardOutput `json:"awards"`
}

func toEntryOutput(e award.Entry) entryOutput {
	return entryOutput{Rank: e.Rank, RosterID: e.RosterID, TeamName: e.TeamName, Value: e.Value, Details: e.Details}
}

func writeJSON(w io.Writer, league sleeper.League, weeks int, awards []award.Award) error {
	out := awardsOutput{
		LeagueID:   league.LeagueID,
		LeagueName: league.Name,
		Weeks:      weeks,
		Awards:     make([]awardOutput, 0, len(awards)),
	}
	for _, a := range awards {
		item := awardOutput{
			ID:                string(a.ID),
			Name:              a.Name,
			Icon:              a.Icon,
			Category:          a.Category,
			Available:         a.Available,
			UnavailableReason: a.UnavailableReason,
			Leaderboard:       make([]entryOutput, 0, len(a.Leaderboard)),
		}
		if a.Winner != nil {
			winner := toEntryOutput(*a.Winner)
			item.Winner = &winner
		}
		for _, e := range a.Leaderboard {
			item.Leaderboard = append(item.Leaderboard, toEntryOutput(e))
		}
		out.Awards = append(out.Awards, item)
	}

	raw, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode awards: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func writeTable(w io.Writer, leagueName string, weeks int, awards []award.Award) error {
	fmt.Fprintf(w, "%s (%d weeks)\n\n", leagueName, weeks)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AWARD\tWINNER\tVALUE\tDETAILS")
	for _, a := range awards {
		switch {
		case !a.Available:
			fmt.Fprintf(tw, "%s %s\t-\t-\t%s\n", a.Icon, a.Name, a.UnavailableReason)
		case a.Winner == nil:
			fmt.Fprintf(tw, "%s %s\t-\t-\tno data yet\n", a.Icon, a.Name)
		default:
			fmt.Fprintf(tw, "%s %s\t%s\t%.2f\t%s\n", a.Icon, a.Name, a.Winner.TeamName, a.Winner.Value, a.Winner.Details)
		}
	}
	return tw.Flush()
}
