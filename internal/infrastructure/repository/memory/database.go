package memory

import (
	"sync"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/id"
)

// Database holds every aggregate behind one lock so repositories can join
// across tables the way the SQL ones do.
type Database struct {
	mu sync.RWMutex

	users      map[string]user.User
	leagues    map[string]league.League
	teams      map[string]team.Team
	teamOrder  []string
	awardTypes []award.Type
	customs    map[customKey]award.Customization

	idGen id.Generator
}

type customKey struct {
	leagueID    string
	awardTypeID award.ID
}

func NewDatabase(seed Seed, idGen id.Generator) *Database {
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}
	db := &Database{
		users:      make(map[string]user.User, len(seed.Users)),
		leagues:    make(map[string]league.League, len(seed.Leagues)),
		teams:      make(map[string]team.Team, len(seed.Teams)),
		teamOrder:  make([]string, 0, len(seed.Teams)),
		awardTypes: append([]award.Type(nil), seed.AwardTypes...),
		customs:    make(map[customKey]award.Customization),
		idGen:      idGen,
	}
	for _, u := range seed.Users {
		u.Email = user.NormalizeEmail(u.Email)
		db.users[u.ID] = u
	}
	for _, l := range seed.Leagues {
		db.leagues[l.ID] = l
	}
	for _, t := range seed.Teams {
		db.teams[t.ID] = t
		db.teamOrder = append(db.teamOrder, t.ID)
	}
	return db
}

func (db *Database) Users() *UserRepository {
	return &UserRepository{db: db}
}

func (db *Database) Leagues() *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (db *Database) Teams() *TeamRepository {
	return &TeamRepository{db: db}
}

func (db *Database) AwardTypes() *AwardTypeRepository {
	return &AwardTypeRepository{db: db}
}

func (db *Database) AwardCustomizations() *AwardCustomizationRepository {
	return &AwardCustomizationRepository{db: db}
}
