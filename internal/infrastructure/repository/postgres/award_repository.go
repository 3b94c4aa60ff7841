package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/binetime/binetime/internal/domain/award"
	qb "github.com/binetime/binetime/internal/platform/querybuilder"
)

var (
	awardTypeColumns     = []string{"id", "name", "description", "icon", "category", "sort_order"}
	customizationColumns = []string{"id", "league_id", "award_type_id", "custom_name", "custom_icon", "is_active", "created_at", "updated_at"}
)

type AwardTypeRepository struct {
	db *sqlx.DB
}

func NewAwardTypeRepository(db *sqlx.DB) *AwardTypeRepository {
	return &AwardTypeRepository{db: db}
}

func (r *AwardTypeRepository) ListTypes(ctx context.Context) ([]award.Type, error) {
	query, args, err := qb.Select(awardTypeColumns...).From("award_types").
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select award types query: %w", err)
	}

	var rows []awardTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select award types: %w", err)
	}

	out := make([]award.Type, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AwardTypeRepository) GetType(ctx context.Context, typeID award.ID) (award.Type, bool, error) {
	query, args, err := qb.Select(awardTypeColumns...).From("award_types").
		Where(qb.Eq("id", string(typeID))).
		ToSQL()
	if err != nil {
		return award.Type{}, false, fmt.Errorf("build get award type query: %w", err)
	}

	var row awardTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.Type{}, false, nil
		}
		return award.Type{}, false, fmt.Errorf("get award type: %w", err)
	}
	return row.toDomain(), true, nil
}

type AwardCustomizationRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAwardCustomizationRepository(db *sqlx.DB) *AwardCustomizationRepository {
	return &AwardCustomizationRepository{db: db, now: time.Now}
}

func (r *AwardCustomizationRepository) ListByLeague(ctx context.Context, leagueID string) ([]award.Customization, error) {
	query, args, err := qb.Select(customizationColumns...).From("league_award_customizations").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("award_type_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select award customizations query: %w", err)
	}

	var rows []customizationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select award customizations: %w", err)
	}

	out := make([]award.Customization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func upsertCustomizationQuery(c award.Customization) (string, []any, error) {
	return qb.InsertInto("league_award_customizations").
		Columns(customizationColumns...).
		Values(c.ID, c.LeagueID, string(c.AwardTypeID), c.CustomName, c.CustomIcon, c.IsActive, c.CreatedAt, c.UpdatedAt).
		OnConflictUpdate([]string{"league_id", "award_type_id"}, "custom_name", "custom_icon", "is_active", "updated_at").
		Returning(customizationColumns...).
		ToSQL()
}

func (r *AwardCustomizationRepository) Upsert(ctx context.Context, c award.Customization) (award.Customization, error) {
	query, args, err := upsertCustomizationQuery(c)
	if err != nil {
		return award.Customization{}, fmt.Errorf("build upsert award customization query: %w", err)
	}

	var row customizationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return award.Customization{}, fmt.Errorf("upsert award customization: %w", err)
	}
	return row.toDomain(), nil
}

// deactivateCustomizationQuery inserts an empty inactive row, or flips an
// existing one inactive while keeping its custom name and icon.
func deactivateCustomizationQuery(leagueID string, awardTypeID award.ID, now time.Time) (string, []any, error) {
	return qb.InsertInto("league_award_customizations").
		Columns("league_id", "award_type_id", "custom_name", "custom_icon", "is_active", "created_at", "updated_at").
		Values(leagueID, string(awardTypeID), "", "", false, now, now).
		OnConflictUpdate([]string{"league_id", "award_type_id"}, "is_active", "updated_at").
		Returning(customizationColumns...).
		ToSQL()
}

func (r *AwardCustomizationRepository) Deactivate(ctx context.Context, leagueID string, awardTypeID award.ID) (award.Customization, error) {
	query, args, err := deactivateCustomizationQuery(leagueID, awardTypeID, r.now().UTC())
	if err != nil {
		return award.Customization{}, fmt.Errorf("build deactivate award customization query: %w", err)
	}

	var row customizationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return award.Customization{}, fmt.Errorf("deactivate award customization: %w", err)
	}
	return row.toDomain(), nil
}
