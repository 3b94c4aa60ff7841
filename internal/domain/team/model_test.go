package team

import "testing"

func TestTeamValidate(t *testing.T) {
	valid := Team{Name: "Citra Squad", SleeperRosterID: 3, OwnerID: "u1", LeagueID: "l1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid team, got %v", err)
	}

	cases := map[string]Team{
		"blank name":  {Name: " ", SleeperRosterID: 3, OwnerID: "u1", LeagueID: "l1"},
		"zero roster": {Name: "x", OwnerID: "u1", LeagueID: "l1"},
		"no owner":    {Name: "x", SleeperRosterID: 1, LeagueID: "l1"},
		"no league":   {Name: "x", SleeperRosterID: 1, OwnerID: "u1"},
	}
	for name, tm := range cases {
		if err := tm.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
