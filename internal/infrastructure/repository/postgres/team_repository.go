package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/binetime/binetime/internal/domain/team"
	qb "github.com/binetime/binetime/internal/platform/querybuilder"
)

var teamColumns = []string{"id", "name", "sleeper_roster_id", "owner_id", "league_id", "created_at", "updated_at"}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func teamWithLeagueSelect() *qb.SelectBuilder {
	return qb.Select(
		"t.id", "t.name", "t.sleeper_roster_id", "t.owner_id", "t.league_id", "t.created_at", "t.updated_at",
		"l.name AS l_name",
		"l.description AS l_description",
		"l.sleeper_league_id AS l_sleeper_league_id",
		"l.is_default AS l_is_default",
		"l.created_at AS l_created_at",
		"l.updated_at AS l_updated_at",
	).
		From("teams t").
		Join("leagues l ON l.id = t.league_id")
}

func (r *TeamRepository) ListByOwner(ctx context.Context, ownerID string) ([]team.WithLeague, error) {
	query, args, err := teamWithLeagueSelect().
		Where(qb.Eq("t.owner_id", ownerID)).
		OrderBy("t.created_at", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by owner query: %w", err)
	}

	var rows []teamWithLeagueModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by owner: %w", err)
	}

	out := make([]team.WithLeague, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.WithLeague, bool, error) {
	query, args, err := teamWithLeagueSelect().
		Where(qb.Eq("t.id", teamID)).
		ToSQL()
	if err != nil {
		return team.WithLeague{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamWithLeagueModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.WithLeague{}, false, nil
		}
		return team.WithLeague{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByOwnerAndLeague(ctx context.Context, ownerID, leagueID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by owner and league", qb.Eq("owner_id", ownerID), qb.Eq("league_id", leagueID))
}

func (r *TeamRepository) GetByRosterAndLeague(ctx context.Context, sleeperRosterID int, leagueID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by roster and league", qb.Eq("sleeper_roster_id", sleeperRosterID), qb.Eq("league_id", leagueID))
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns(teamColumns...).
		Values(t.ID, t.Name, t.SleeperRosterID, t.OwnerID, t.LeagueID, t.CreatedAt, t.UpdatedAt).
		Returning(teamColumns...).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, "") {
			return team.Team{}, fmt.Errorf("%w: %v", team.ErrDuplicate, err)
		}
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(conds...).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}
