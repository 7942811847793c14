package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/teams"
)

func structure(t *testing.T, data string) *teams.Structure {
	t.Helper()
	st, err := teams.ParseStructure([]byte(data))
	require.NoError(t, err)
	return st
}

func TestGenerateFreshTemplate(t *testing.T) {
	st := structure(t, `root_teams:
  - name: Platform
    subteams:
      - name: Infra
`)

	m := Generate(st, nil)

	require.Len(t, m.RootTeams, 1)
	assert.Equal(t, "Platform", m.RootTeams[0].Name)
	assert.Equal(t, []string{}, m.RootTeams[0].Members)

	require.Len(t, m.Subteams, 1)
	assert.Equal(t, "Infra", m.Subteams[0].Name)
	assert.Equal(t, "Platform", m.Subteams[0].ParentTeam)
	assert.Equal(t, []string{}, m.Subteams[0].Members)
}

func TestGeneratePreservesMembers(t *testing.T) {
	st := structure(t, `root_teams:
  - name: Platform
    subteams:
      - name: Infra
  - name: Product
`)
	prev := &teams.Membership{
		RootTeams: []teams.TeamMembers{
			{Name: "Platform", Members: []string{"alice", "bob"}},
		},
		Subteams: []teams.SubteamMembers{
			{Name: "Infra", ParentTeam: "Platform", Members: []string{"carol"}},
		},
	}

	m := Generate(st, prev)

	assert.Equal(t, []string{"alice", "bob"}, m.RootTeams[0].Members)
	assert.Equal(t, []string{"carol"}, m.Subteams[0].Members)
	// New team starts empty
	assert.Equal(t, []string{}, m.RootTeams[1].Members)
}

func TestGenerateDropsRemovedTeams(t *testing.T) {
	st := structure(t, "root_teams:\n  - name: Platform\n")
	prev := &teams.Membership{
		RootTeams: []teams.TeamMembers{
			{Name: "Platform", Members: []string{"alice"}},
			{Name: "Legacy", Members: []string{"mallory"}},
		},
		Subteams: []teams.SubteamMembers{
			{Name: "Infra", ParentTeam: "Platform", Members: []string{"carol"}},
		},
	}

	m := Generate(st, prev)

	require.Len(t, m.RootTeams, 1)
	assert.Equal(t, []string{"alice"}, m.RootTeams[0].Members)
	assert.Empty(t, m.Subteams)

	for _, team := range m.RootTeams {
		assert.NotContains(t, team.Members, "mallory")
		assert.NotContains(t, team.Members, "carol")
	}
}

func TestGenerateSubteamsKeyedByParent(t *testing.T) {
	// Two subteams share a name under different parents; each keeps its
	// own members.
	st := structure(t, `root_teams:
  - name: Platform
    subteams:
      - name: Oncall
  - name: Product
    subteams:
      - name: Oncall
`)
	prev := &teams.Membership{
		Subteams: []teams.SubteamMembers{
			{Name: "Oncall", ParentTeam: "Platform", Members: []string{"alice"}},
			{Name: "Oncall", ParentTeam: "Product", Members: []string{"bob"}},
		},
	}

	m := Generate(st, prev)

	require.Len(t, m.Subteams, 2)
	assert.Equal(t, []string{"alice"}, m.Subteams[0].Members)
	assert.Equal(t, []string{"bob"}, m.Subteams[1].Members)
}

func TestGeneratePreservesInputOrder(t *testing.T) {
	st := structure(t, `root_teams:
  - name: Zeta
    subteams:
      - name: Z2
      - name: Z1
  - name: Alpha
    subteams:
      - name: A1
`)

	m := Generate(st, nil)

	assert.Equal(t, "Zeta", m.RootTeams[0].Name)
	assert.Equal(t, "Alpha", m.RootTeams[1].Name)
	assert.Equal(t, "Z2", m.Subteams[0].Name)
	assert.Equal(t, "Z1", m.Subteams[1].Name)
	assert.Equal(t, "A1", m.Subteams[2].Name)
}

func TestRunFirstGeneration(t *testing.T) {
	dir := t.TempDir()
	teamsPath := filepath.Join(dir, "teams.yaml")
	membersPath := filepath.Join(dir, "team-members.yaml")
	require.NoError(t, os.WriteFile(teamsPath, []byte(`root_teams:
  - name: Platform
    subteams:
      - name: Infra
`), 0644))

	m, err := Run(teamsPath, membersPath)
	require.NoError(t, err)
	assert.Equal(t, []string{}, m.RootTeams[0].Members)

	loaded, err := teams.LoadMembership(membersPath)
	require.NoError(t, err)
	assert.Equal(t, "Infra", loaded.Subteams[0].Name)
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	teamsPath := filepath.Join(dir, "teams.yaml")
	membersPath := filepath.Join(dir, "team-members.yaml")
	require.NoError(t, os.WriteFile(teamsPath, []byte(`root_teams:
  - name: Platform
    subteams:
      - name: Infra
  - name: Product
`), 0644))

	_, err := Run(teamsPath, membersPath)
	require.NoError(t, err)
	first, err := os.ReadFile(membersPath)
	require.NoError(t, err)

	_, err = Run(teamsPath, membersPath)
	require.NoError(t, err)
	second, err := os.ReadFile(membersPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunReconcilesAfterManualEdit(t *testing.T) {
	dir := t.TempDir()
	teamsPath := filepath.Join(dir, "teams.yaml")
	membersPath := filepath.Join(dir, "team-members.yaml")

	require.NoError(t, os.WriteFile(teamsPath, []byte(`root_teams:
  - name: Platform
    subteams:
      - name: Infra
`), 0644))
	_, err := Run(teamsPath, membersPath)
	require.NoError(t, err)

	// Manually record a member, then remove the subteam from the structure
	edited := &teams.Membership{
		RootTeams: []teams.TeamMembers{{Name: "Platform", Members: []string{"alice"}}},
		Subteams:  []teams.SubteamMembers{{Name: "Infra", ParentTeam: "Platform", Members: []string{}}},
	}
	require.NoError(t, edited.Save(membersPath))
	require.NoError(t, os.WriteFile(teamsPath, []byte("root_teams:\n  - name: Platform\n"), 0644))

	m, err := Run(teamsPath, membersPath)
	require.NoError(t, err)
	require.Len(t, m.RootTeams, 1)
	assert.Equal(t, []string{"alice"}, m.RootTeams[0].Members)
	assert.Empty(t, m.Subteams)
}

func TestRunStructureMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "team-members.yaml"))
	assert.True(t, errors.IsNotFound(err))
	assert.NoFileExists(t, filepath.Join(dir, "team-members.yaml"))
}

func TestRunLeavesPreviousOutputOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	teamsPath := filepath.Join(dir, "teams.yaml")
	membersPath := filepath.Join(dir, "team-members.yaml")

	require.NoError(t, os.WriteFile(membersPath, []byte("root_teams: []\nsubteams: []\n"), 0644))
	require.NoError(t, os.WriteFile(teamsPath, []byte("root_teams: [broken"), 0644))

	_, err := Run(teamsPath, membersPath)
	assert.True(t, errors.IsMalformed(err))

	data, readErr := os.ReadFile(membersPath)
	require.NoError(t, readErr)
	assert.Equal(t, "root_teams: []\nsubteams: []\n", string(data))
}
