package league

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDuplicate is returned by repositories when the Sleeper league is already
// registered.
var ErrDuplicate = errors.New("league already exists")

// League is a BineTime league backed by one Sleeper league.
type League struct {
	ID              string
	Name            string
	Description     string
	SleeperLeagueID string
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary is a league listing row.
type Summary struct {
	League
	TeamCount int
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.SleeperLeagueID) == "" {
		return fmt.Errorf("league sleeper id is required")
	}
	return nil
}
