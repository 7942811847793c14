// Package generate rebuilds the membership document from the team
// structure while preserving previously recorded member assignments.
package generate

import (
	"os"

	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/teams"
)

// subteamKey identifies a subteam by its parent-qualified name. Subteam
// names are only unique within a parent, so the parent is part of the key.
type subteamKey struct {
	parent string
	name   string
}

// Generate flattens the team structure into a membership template and
// carries member lists forward from prev for teams that still exist.
// Teams absent from the structure are dropped along with their members.
func Generate(st *teams.Structure, prev *teams.Membership) *teams.Membership {
	var prevRoot map[string][]string
	var prevSub map[subteamKey][]string
	if prev != nil {
		prevRoot = make(map[string][]string, len(prev.RootTeams))
		for _, t := range prev.RootTeams {
			prevRoot[t.Name] = t.Members
		}
		prevSub = make(map[subteamKey][]string, len(prev.Subteams))
		for _, s := range prev.Subteams {
			prevSub[subteamKey{s.ParentTeam, s.Name}] = s.Members
		}
	}

	m := &teams.Membership{
		RootTeams: make([]teams.TeamMembers, 0, len(st.RootTeams)),
		Subteams:  []teams.SubteamMembers{},
	}
	for _, team := range st.RootTeams {
		m.RootTeams = append(m.RootTeams, teams.TeamMembers{
			Name:    team.Name,
			Members: carryForward(prevRoot[team.Name]),
		})
		for _, sub := range team.Subteams {
			m.Subteams = append(m.Subteams, teams.SubteamMembers{
				Name:       sub.Name,
				ParentTeam: team.Name,
				Members:    carryForward(prevSub[subteamKey{team.Name, sub.Name}]),
			})
		}
	}
	return m
}

// carryForward returns the previous member list verbatim, or an empty
// list so the document never serializes members as null.
func carryForward(previous []string) []string {
	if previous == nil {
		return []string{}
	}
	return previous
}

// Run loads the structure at teamsPath, reconciles it against any
// existing membership document at membersPath, and writes the result
// back. The previous document is left untouched if any step before the
// write fails.
func Run(teamsPath, membersPath string) (*teams.Membership, error) {
	st, err := teams.LoadStructure(teamsPath)
	if err != nil {
		return nil, err
	}

	var prev *teams.Membership
	if _, statErr := os.Stat(membersPath); statErr == nil {
		prev, err = teams.LoadMembership(membersPath)
		if err != nil {
			return nil, err
		}
		logging.Debug().
			Str("path", membersPath).
			Msg("Carrying forward members from existing document")
	}

	m := Generate(st, prev)
	if err := m.Save(membersPath); err != nil {
		return nil, err
	}

	logging.Info().
		Int("root_teams", len(m.RootTeams)).
		Int("subteams", len(m.Subteams)).
		Str("path", membersPath).
		Msg("Membership document generated")
	return m, nil
}
