// Package validate cross-checks the membership document against the
// organization roster and produces a structured validation report.
package validate

import (
	"github.com/goccy/go-yaml"

	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/save"
)

// MemberResult tags a single recorded member as present in or absent
// from the organization roster.
type MemberResult struct {
	Username string `yaml:"username" json:"username"`
	Valid    bool   `yaml:"valid" json:"valid"`
}

// TeamResult is the per-team breakdown of recorded members.
type TeamResult struct {
	Name        string         `yaml:"name" json:"name"`
	ParentTeam  string         `yaml:"parent_team,omitempty" json:"parent_team,omitempty"`
	MemberCount int            `yaml:"member_count" json:"member_count"`
	Members     []MemberResult `yaml:"members" json:"members"`
}

// Results groups per-team breakdowns, preserving the membership
// document's team ordering.
type Results struct {
	RootTeams []TeamResult `yaml:"root_teams" json:"root_teams"`
	Subteams  []TeamResult `yaml:"subteams" json:"subteams"`
}

// Summary holds the aggregate validation statistics.
type Summary struct {
	TotalUniqueTeamMembers  int `yaml:"total_unique_team_members" json:"total_unique_team_members"`
	ValidMembers            int `yaml:"valid_members" json:"valid_members"`
	InvalidMembers          int `yaml:"invalid_members" json:"invalid_members"`
	TeamsWithInvalidMembers int `yaml:"teams_with_invalid_members" json:"teams_with_invalid_members"`
}

// Report is the persisted result of validating a membership document
// against the organization roster.
type Report struct {
	ValidationTimestamp     string   `yaml:"validation_timestamp" json:"validation_timestamp"`
	OrganizationMemberCount int      `yaml:"organization_member_count" json:"organization_member_count"`
	ValidationResults       Results  `yaml:"validation_results" json:"validation_results"`
	Summary                 Summary  `yaml:"summary" json:"summary"`
	InvalidMembersList      []string `yaml:"invalid_members_list" json:"invalid_members_list"`
}

// Passed reports whether every recorded team member is an organization
// member.
func (r *Report) Passed() bool {
	return len(r.InvalidMembersList) == 0
}

// Save persists the report to path, replacing any previous content
// atomically.
func (r *Report) Save(path string) error {
	data, err := yaml.MarshalWithOptions(r,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapWrite(path, err)
	}
	return save.File(path, data)
}
