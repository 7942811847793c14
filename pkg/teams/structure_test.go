package teams

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/errors"
)

func TestParseStructure(t *testing.T) {
	data := []byte(`root_teams:
  - name: Platform
    description: Platform engineering
    privacy: closed
    subteams:
      - name: Infra
        privacy: secret
      - name: Observability
  - name: Product
`)

	st, err := ParseStructure(data)
	require.NoError(t, err)
	require.Len(t, st.RootTeams, 2)

	platform := st.RootTeams[0]
	assert.Equal(t, "Platform", platform.Name)
	assert.Equal(t, "Platform engineering", platform.Description)
	assert.Equal(t, "closed", platform.Privacy)
	require.Len(t, platform.Subteams, 2)
	assert.Equal(t, "Infra", platform.Subteams[0].Name)
	assert.Equal(t, "Observability", platform.Subteams[1].Name)

	// subteams is optional and defaults to empty
	assert.Empty(t, st.RootTeams[1].Subteams)
}

func TestParseStructureMalformed(t *testing.T) {
	_, err := ParseStructure([]byte("root_teams: [unclosed"))
	assert.True(t, errors.IsMalformed(err))
}

func TestParseStructureMissingRootTeams(t *testing.T) {
	_, err := ParseStructure([]byte("teams:\n  - name: Platform\n"))
	assert.True(t, errors.IsSchema(err))
}

func TestParseStructureRootTeamsNotASequence(t *testing.T) {
	_, err := ParseStructure([]byte("root_teams:\n  name: Platform\n"))
	assert.True(t, errors.IsSchema(err))
}

func TestParseStructureTeamWithoutName(t *testing.T) {
	_, err := ParseStructure([]byte("root_teams:\n  - description: nameless\n"))
	assert.True(t, errors.IsSchema(err))
}

func TestParseStructureIgnoresPrivacyValues(t *testing.T) {
	// Domain rules like privacy enumeration belong to the consumer
	st, err := ParseStructure([]byte("root_teams:\n  - name: Platform\n    privacy: whatever\n"))
	require.NoError(t, err)
	assert.Equal(t, "whatever", st.RootTeams[0].Privacy)
}

func TestLoadStructureNotFound(t *testing.T) {
	_, err := LoadStructure(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root_teams:\n  - name: Platform\n"), 0644))

	st, err := LoadStructure(path)
	require.NoError(t, err)
	assert.Equal(t, "Platform", st.RootTeams[0].Name)
}
