package validate

import (
	"sort"
	"strings"

	"github.com/agentstation/teammap/pkg/teams"
)

// NoMembersMarker is shown for teams with an empty member list in the
// breakdown view.
const NoMembersMarker = "(no members)"

// BreakdownRow is one line of the team-by-team breakdown view.
type BreakdownRow struct {
	Team   string `json:"team"`
	Member string `json:"member"`
	Status string `json:"status"`
}

// Breakdown projects the report into team-by-team rows, one per recorded
// member, with an explicit marker for teams that have no members. Rows
// follow the report's team ordering.
func (r *Report) Breakdown() []BreakdownRow {
	rows := []BreakdownRow{}

	appendTeam := func(result TeamResult) {
		team := qualifiedName(result)
		if len(result.Members) == 0 {
			rows = append(rows, BreakdownRow{Team: team, Member: NoMembersMarker})
			return
		}
		for _, member := range result.Members {
			status := "valid"
			if !member.Valid {
				status = "invalid"
			}
			rows = append(rows, BreakdownRow{
				Team:   team,
				Member: member.Username,
				Status: status,
			})
		}
	}

	for _, result := range r.ValidationResults.RootTeams {
		appendTeam(result)
	}
	for _, result := range r.ValidationResults.Subteams {
		appendTeam(result)
	}
	return rows
}

// MemberTeamsRow links one recorded member to every team they belong to.
type MemberTeamsRow struct {
	Member string `json:"member"`
	Teams  string `json:"teams"`
	Valid  bool   `json:"valid"`
}

// MemberTeamsView maps each recorded member to the comma-joined list of
// teams they belong to, and lists the roster members who belong to no
// team at all.
type MemberTeamsView struct {
	Rows       []MemberTeamsRow `json:"rows"`
	Unassigned []string         `json:"unassigned"`
}

// MemberTeams projects the report into a member-to-teams mapping. The
// roster is only consulted for members that belong to no team; validity
// comes from the already computed report.
func (r *Report) MemberTeams(roster *teams.Roster) *MemberTeamsView {
	memberTeams := make(map[string][]string)
	memberValid := make(map[string]bool)

	walk := func(result TeamResult) {
		team := qualifiedName(result)
		for _, member := range result.Members {
			memberTeams[member.Username] = append(memberTeams[member.Username], team)
			memberValid[member.Username] = member.Valid
		}
	}
	for _, result := range r.ValidationResults.RootTeams {
		walk(result)
	}
	for _, result := range r.ValidationResults.Subteams {
		walk(result)
	}

	members := make([]string, 0, len(memberTeams))
	for username := range memberTeams {
		members = append(members, username)
	}
	sort.Strings(members)

	view := &MemberTeamsView{
		Rows:       make([]MemberTeamsRow, 0, len(members)),
		Unassigned: []string{},
	}
	for _, username := range members {
		view.Rows = append(view.Rows, MemberTeamsRow{
			Member: username,
			Teams:  strings.Join(memberTeams[username], ", "),
			Valid:  memberValid[username],
		})
	}

	for _, username := range roster.Members {
		if _, ok := memberTeams[username]; !ok {
			view.Unassigned = append(view.Unassigned, username)
		}
	}
	sort.Strings(view.Unassigned)
	return view
}

// qualifiedName renders a subteam as parent/name; root teams keep their
// bare name.
func qualifiedName(result TeamResult) string {
	if result.ParentTeam != "" {
		return result.ParentTeam + "/" + result.Name
	}
	return result.Name
}
