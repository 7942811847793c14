package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/teams"
)

func testReport(t *testing.T) (*Report, *teams.Roster) {
	t.Helper()
	m := &teams.Membership{
		RootTeams: []teams.TeamMembers{
			{Name: "Platform", Members: []string{"alice", "ghost"}},
			{Name: "Product", Members: []string{}},
		},
		Subteams: []teams.SubteamMembers{
			{Name: "Infra", ParentTeam: "Platform", Members: []string{"alice"}},
		},
	}
	roster := &teams.Roster{Members: []string{"alice", "bob"}}
	return Validate(m, roster), roster
}

func TestBreakdown(t *testing.T) {
	report, _ := testReport(t)

	rows := report.Breakdown()
	require.Len(t, rows, 4)

	assert.Equal(t, BreakdownRow{Team: "Platform", Member: "alice", Status: "valid"}, rows[0])
	assert.Equal(t, BreakdownRow{Team: "Platform", Member: "ghost", Status: "invalid"}, rows[1])
	// Empty teams get an explicit marker
	assert.Equal(t, "Product", rows[2].Team)
	assert.Equal(t, NoMembersMarker, rows[2].Member)
	// Subteams are parent-qualified
	assert.Equal(t, "Platform/Infra", rows[3].Team)
}

func TestMemberTeams(t *testing.T) {
	report, roster := testReport(t)

	view := report.MemberTeams(roster)
	require.Len(t, view.Rows, 2)

	// Rows are sorted by member name
	assert.Equal(t, "alice", view.Rows[0].Member)
	assert.Equal(t, "Platform, Platform/Infra", view.Rows[0].Teams)
	assert.True(t, view.Rows[0].Valid)

	assert.Equal(t, "ghost", view.Rows[1].Member)
	assert.Equal(t, "Platform", view.Rows[1].Teams)
	assert.False(t, view.Rows[1].Valid)

	// bob is in the roster but belongs to no team
	assert.Equal(t, []string{"bob"}, view.Unassigned)
}

func TestMemberTeamsAllAssigned(t *testing.T) {
	m := &teams.Membership{
		RootTeams: []teams.TeamMembers{{Name: "Platform", Members: []string{"alice"}}},
	}
	roster := &teams.Roster{Members: []string{"alice"}}

	view := Validate(m, roster).MemberTeams(roster)
	assert.Empty(t, view.Unassigned)
}
