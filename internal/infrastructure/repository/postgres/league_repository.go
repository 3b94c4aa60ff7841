package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/binetime/binetime/internal/domain/league"
	qb "github.com/binetime/binetime/internal/platform/querybuilder"
)

var leagueColumns = []string{"id", "name", "description", "sleeper_league_id", "is_default", "created_at", "updated_at"}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func listLeaguesQuery() (string, []any, error) {
	return qb.Select(
		"l.id", "l.name", "l.description", "l.sleeper_league_id", "l.is_default", "l.created_at", "l.updated_at",
		"COUNT(t.id) AS team_count",
	).
		From("leagues l").
		LeftJoin("teams t ON t.league_id = l.id").
		GroupBy("l.id").
		OrderBy("l.name", "l.id").
		ToSQL()
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.Summary, error) {
	query, args, err := listLeaguesQuery()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueSummaryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Summary{League: row.toDomain(), TeamCount: row.TeamCount})
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getOne(ctx, "get league by id", qb.Eq("id", leagueID))
}

func (r *LeagueRepository) GetBySleeperID(ctx context.Context, sleeperLeagueID string) (league.League, bool, error) {
	return r.getOne(ctx, "get league by sleeper id", qb.Eq("sleeper_league_id", sleeperLeagueID))
}

func (r *LeagueRepository) GetDefault(ctx context.Context) (league.League, bool, error) {
	return r.getOne(ctx, "get default league", qb.Eq("is_default", true))
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) (league.League, error) {
	query, args, err := qb.InsertInto("leagues").
		Columns(leagueColumns...).
		Values(l.ID, l.Name, nullString(l.Description), l.SleeperLeagueID, l.IsDefault, l.CreatedAt, l.UpdatedAt).
		Returning(leagueColumns...).
		ToSQL()
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, "leagues_sleeper_league_id_key") {
			return league.League{}, fmt.Errorf("%w: %v", league.ErrDuplicate, err)
		}
		return league.League{}, fmt.Errorf("insert league: %w", err)
	}
	return row.toDomain(), nil
}

func (r *LeagueRepository) getOne(ctx context.Context, op string, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(cond).
		OrderBy("created_at").
		Limit(1).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}
