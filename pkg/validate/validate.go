package validate

import (
	"sort"
	"time"

	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/teams"
)

// Validate cross-checks every recorded team member against the roster.
// The unique-member summary is computed over the deduplicated set of all
// recorded usernames; per-team results re-walk the original sequences so
// duplicates across teams count for each team they appear in. Blank
// entries are discarded throughout.
func Validate(m *teams.Membership, r *teams.Roster) *Report {
	roster := r.Set()

	unique := make(map[string]struct{})
	collect := func(members []string) {
		for _, username := range members {
			if username == "" {
				continue
			}
			unique[username] = struct{}{}
		}
	}
	for _, t := range m.RootTeams {
		collect(t.Members)
	}
	for _, s := range m.Subteams {
		collect(s.Members)
	}

	// Sorted for diff-stable report output.
	invalid := []string{}
	validCount := 0
	for username := range unique {
		if _, ok := roster[username]; ok {
			validCount++
		} else {
			invalid = append(invalid, username)
		}
	}
	sort.Strings(invalid)

	teamsWithInvalid := 0
	walk := func(name, parent string, members []string) TeamResult {
		result := TeamResult{
			Name:       name,
			ParentTeam: parent,
			Members:    []MemberResult{},
		}
		hasInvalid := false
		for _, username := range members {
			if username == "" {
				continue
			}
			_, ok := roster[username]
			result.Members = append(result.Members, MemberResult{
				Username: username,
				Valid:    ok,
			})
			if !ok {
				hasInvalid = true
			}
		}
		result.MemberCount = len(result.Members)
		if hasInvalid {
			teamsWithInvalid++
		}
		return result
	}

	results := Results{
		RootTeams: make([]TeamResult, 0, len(m.RootTeams)),
		Subteams:  make([]TeamResult, 0, len(m.Subteams)),
	}
	for _, t := range m.RootTeams {
		results.RootTeams = append(results.RootTeams, walk(t.Name, "", t.Members))
	}
	for _, s := range m.Subteams {
		results.Subteams = append(results.Subteams, walk(s.Name, s.ParentTeam, s.Members))
	}

	report := &Report{
		ValidationTimestamp:     time.Now().UTC().Format(time.RFC3339),
		OrganizationMemberCount: len(r.Members),
		ValidationResults:       results,
		Summary: Summary{
			TotalUniqueTeamMembers:  len(unique),
			ValidMembers:            validCount,
			InvalidMembers:          len(invalid),
			TeamsWithInvalidMembers: teamsWithInvalid,
		},
		InvalidMembersList: invalid,
	}

	logging.Debug().
		Int("unique_members", len(unique)).
		Int("invalid_members", len(invalid)).
		Msg("Validation computed")
	return report
}

// Run loads the membership and roster documents, validates them, and
// persists the report to reportPath.
func Run(membersPath, rosterPath, reportPath string) (*Report, error) {
	m, err := teams.LoadMembership(membersPath)
	if err != nil {
		return nil, err
	}
	r, err := teams.LoadRoster(rosterPath)
	if err != nil {
		return nil, err
	}

	report := Validate(m, r)
	if err := report.Save(reportPath); err != nil {
		return nil, err
	}

	logging.Info().
		Int("organization_members", report.OrganizationMemberCount).
		Int("invalid_members", report.Summary.InvalidMembers).
		Str("path", reportPath).
		Msg("Validation report written")
	return report, nil
}
