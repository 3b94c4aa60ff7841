package award

import (
	"fmt"
	"strings"
	"time"
)

// ID names one of the thirteen season awards.
type ID string

const (
	FewestPointsAgainst      ID = "fewestPointsAgainst"
	MostPointsAgainst        ID = "mostPointsAgainst"
	MostPredictable          ID = "mostPredictable"
	MostConsistent           ID = "mostConsistent"
	BoomOrBustPlayer         ID = "boomOrBustPlayer"
	BoomOrBustTeam           ID = "boomOrBustTeam"
	BestSingleGame           ID = "bestSingleGame"
	BestGameAboveProjections ID = "bestGameAboveProjections"
	BiggestBlowout           ID = "biggestBlowout"
	BenchOutscoredStarters   ID = "benchOutscoredStarters"
	StartersOutplayedBench   ID = "startersOutplayedBench"
	HighestScoringLoss       ID = "highestScoringLoss"
	MostInjuries             ID = "mostInjuries"
)

// Type is the catalog definition of an award.
type Type struct {
	ID          ID     `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category"`
	SortOrder   int    `yaml:"-"`
}

func (t Type) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("award type id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("award type %s name is required", t.ID)
	}
	return nil
}

// Customization is a league's override of an award's display name and icon.
// An inactive customization is kept so a later re-enable can restore it.
type Customization struct {
	ID          string
	LeagueID    string
	AwardTypeID ID
	CustomName  string
	CustomIcon  string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Config is the effective presentation of an award inside one league.
type Config struct {
	ID          ID
	Name        string
	Description string
	Icon        string
	Category    string
	Customized  bool
}

func DefaultConfig(t Type) Config {
	return Config{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		Category:    t.Category,
	}
}

// Apply overlays an active customization; empty custom fields keep the default.
func (c Config) Apply(custom Customization) Config {
	if !custom.IsActive || custom.AwardTypeID != c.ID {
		return c
	}
	if name := strings.TrimSpace(custom.CustomName); name != "" {
		c.Name = name
		c.Customized = true
	}
	if icon := strings.TrimSpace(custom.CustomIcon); icon != "" {
		c.Icon = icon
		c.Customized = true
	}
	return c
}

// Configs resolves every catalog type against a league's customizations.
func Configs(types []Type, customs []Customization) map[ID]Config {
	byType := make(map[ID]Customization, len(customs))
	for _, c := range customs {
		byType[c.AwardTypeID] = c
	}

	out := make(map[ID]Config, len(types))
	for _, t := range types {
		cfg := DefaultConfig(t)
		if custom, ok := byType[t.ID]; ok {
			cfg = cfg.Apply(custom)
		}
		out[t.ID] = cfg
	}
	return out
}

// Entry is one leaderboard line.
type Entry struct {
	Rank     int
	RosterID int
	TeamName string
	Value    float64
	Details  string
}

// Award is a computed award with its ranked leaderboard. Winner is nil when
// the leaderboard is empty.
type Award struct {
	ID                ID
	Name              string
	Description       string
	Icon              string
	Category          string
	Available         bool
	UnavailableReason string
	Winner            *Entry
	Leaderboard       []Entry
}
