package teams

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/save"
)

// Membership is the reconciled record of which individuals belong to
// which team. Entries correspond 1:1 to the team structure the document
// was generated from; member lists are never inferred, only carried
// forward or left empty.
type Membership struct {
	RootTeams []TeamMembers    `yaml:"root_teams"`
	Subteams  []SubteamMembers `yaml:"subteams"`
}

// TeamMembers records the members of a root team.
type TeamMembers struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// SubteamMembers records the members of a subteam under its parent team.
type SubteamMembers struct {
	Name       string   `yaml:"name"`
	ParentTeam string   `yaml:"parent_team"`
	Members    []string `yaml:"members"`
}

// LoadMembership reads and parses the membership document at path.
func LoadMembership(path string) (*Membership, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("membership document", path)
		}
		return nil, errors.WrapParse("yaml", path, err)
	}

	var m Membership
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &m, nil
}

// Save persists the membership document to path, replacing any previous
// content atomically.
func (m *Membership) Save(path string) error {
	data, err := yaml.MarshalWithOptions(m,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapWrite(path, err)
	}
	return save.File(path, data)
}
