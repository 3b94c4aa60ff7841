package team

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/binetime/binetime/internal/domain/league"
)

// ErrDuplicate is returned by repositories when an owner already has a team in
// the league or the roster is already claimed.
var ErrDuplicate = errors.New("team already exists")

// Team links a user to one Sleeper roster inside a league.
type Team struct {
	ID              string
	Name            string
	SleeperRosterID int
	OwnerID         string
	LeagueID        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WithLeague is a team together with the league it belongs to.
type WithLeague struct {
	Team
	League league.League
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.SleeperRosterID <= 0 {
		return fmt.Errorf("team sleeper roster id must be > 0")
	}
	if t.OwnerID == "" {
		return fmt.Errorf("team owner id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	return nil
}
