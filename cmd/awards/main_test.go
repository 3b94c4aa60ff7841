package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/sleeper"
)

func sampleAwards() []award.Award {
	winner := award.Entry{Rank: 1, RosterID: 1, TeamName: "Galaxy Brains", Value: 142.3, Details: "142.30 pts in week 1"}
	return []award.Award{
		{ID: award.ID("bestSingleGame"), Name: "Best Single Game", Icon: "🔥", Available: true, Winner: &winner, Leaderboard: []award.Entry{winner}},
		{ID: award.ID("mostInjuries"), Name: "Most Injuries", Icon: "🚑", UnavailableReason: "injury data is not available"},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, sleeper.League{LeagueID: "123", Name: "Bine to Shrine"}, 1, sampleAwards())
	if err != nil {
		t.Fatalf("write json: %v", err)
	}

	var got awardsOutput
	if err := sonic.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.LeagueID != "123" || len(got.Awards) != 2 {
		t.Fatalf("unexpected output: %+v", got)
	}
	if got.Awards[0].Winner == nil || got.Awards[0].Winner.Value != 142.3 {
		t.Fatalf("unexpected winner: %+v", got.Awards[0].Winner)
	}
	if got.Awards[1].Winner != nil || got.Awards[1].Available {
		t.Fatalf("expected unavailable award without winner: %+v", got.Awards[1])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, "Bine to Shrine", 1, sampleAwards()); err != nil {
		t.Fatalf("write table: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Bine to Shrine (1 weeks)", "Galaxy Brains", "142.30", "injury data is not available"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
