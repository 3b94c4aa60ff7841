package award

import (
	"strconv"

	"github.com/binetime/binetime/internal/domain/sleeper"
)

const UnknownTeam = "Unknown Team"

// ResolveTeamName picks the custom team name, then the display name, then
// "Team {rosterID}". A nil user means the roster has no owner.
func ResolveTeamName(user *sleeper.LeagueUser, rosterID int) string {
	if user != nil {
		if name, ok := user.CustomTeamName(); ok {
			return name
		}
		if name, ok := user.Display(); ok {
			return name
		}
	}
	return "Team " + strconv.Itoa(rosterID)
}

func teamNames(rosters []sleeper.Roster, users []sleeper.LeagueUser) map[int]string {
	byID := make(map[string]*sleeper.LeagueUser, len(users))
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		names[r.RosterID] = ResolveTeamName(byID[r.OwnerID], r.RosterID)
	}
	return names
}
