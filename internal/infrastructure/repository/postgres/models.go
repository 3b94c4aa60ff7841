package postgres

import (
	"database/sql"
	"time"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
)

type userTableModel struct {
	ID        string         `db:"id"`
	Email     string         `db:"email"`
	Name      sql.NullString `db:"name"`
	IsDefault bool           `db:"is_default"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name.String,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type leagueTableModel struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     sql.NullString `db:"description"`
	SleeperLeagueID string         `db:"sleeper_league_id"`
	IsDefault       bool           `db:"is_default"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description.String,
		SleeperLeagueID: m.SleeperLeagueID,
		IsDefault:       m.IsDefault,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type leagueSummaryModel struct {
	leagueTableModel
	TeamCount int `db:"team_count"`
}

type teamTableModel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	SleeperRosterID int       `db:"sleeper_roster_id"`
	OwnerID         string    `db:"owner_id"`
	LeagueID        string    `db:"league_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:              m.ID,
		Name:            m.Name,
		SleeperRosterID: m.SleeperRosterID,
		OwnerID:         m.OwnerID,
		LeagueID:        m.LeagueID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// teamWithLeagueModel is a teams row joined to its league; league columns are
// aliased with an l_ prefix.
type teamWithLeagueModel struct {
	teamTableModel
	LeagueName        string         `db:"l_name"`
	LeagueDescription sql.NullString `db:"l_description"`
	LeagueSleeperID   string         `db:"l_sleeper_league_id"`
	LeagueIsDefault   bool           `db:"l_is_default"`
	LeagueCreatedAt   time.Time      `db:"l_created_at"`
	LeagueUpdatedAt   time.Time      `db:"l_updated_at"`
}

func (m teamWithLeagueModel) toDomain() team.WithLeague {
	return team.WithLeague{
		Team: m.teamTableModel.toDomain(),
		League: league.League{
			ID:              m.LeagueID,
			Name:            m.LeagueName,
			Description:     m.LeagueDescription.String,
			SleeperLeagueID: m.LeagueSleeperID,
			IsDefault:       m.LeagueIsDefault,
			CreatedAt:       m.LeagueCreatedAt,
			UpdatedAt:       m.LeagueUpdatedAt,
		},
	}
}

type awardTypeTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	Category    sql.NullString `db:"category"`
	SortOrder   int            `db:"sort_order"`
}

func (m awardTypeTableModel) toDomain() award.Type {
	return award.Type{
		ID:          award.ID(m.ID),
		Name:        m.Name,
		Description: m.Description.String,
		Icon:        m.Icon.String,
		Category:    m.Category.String,
		SortOrder:   m.SortOrder,
	}
}

type customizationTableModel struct {
	ID          string    `db:"id"`
	LeagueID    string    `db:"league_id"`
	AwardTypeID string    `db:"award_type_id"`
	CustomName  string    `db:"custom_name"`
	CustomIcon  string    `db:"custom_icon"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m customizationTableModel) toDomain() award.Customization {
	return award.Customization{
		ID:          m.ID,
		LeagueID:    m.LeagueID,
		AwardTypeID: award.ID(m.AwardTypeID),
		CustomName:  m.CustomName,
		CustomIcon:  m.CustomIcon,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
