// Package teams defines the document model for the organization's team
// hierarchy, the reconciled membership record, and the member roster.
package teams

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/teammap/pkg/errors"
)

// Structure is the declarative team hierarchy read from configuration.
type Structure struct {
	RootTeams []TeamDef `yaml:"root_teams"`
}

// TeamDef is a top-level team definition. Names are unique within the
// document.
type TeamDef struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Privacy     string       `yaml:"privacy,omitempty"`
	Subteams    []SubteamDef `yaml:"subteams,omitempty"`
}

// SubteamDef is a team nested under exactly one root team. A subteam's
// effective identity is the (parent team name, subteam name) pair;
// subteam names need not be unique across parents.
type SubteamDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Privacy     string `yaml:"privacy,omitempty"`
}

// ParseStructure parses a team structure document. It checks structural
// shape only; privacy values and other domain rules are enforced by the
// infrastructure layer that consumes the structure.
func ParseStructure(data []byte) (*Structure, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// A parseable document that is not a mapping is a shape
		// problem, not a parse problem.
		var doc any
		if yaml.Unmarshal(data, &doc) == nil {
			return nil, errors.NewSchemaError("team structure", "root_teams", "is missing")
		}
		return nil, errors.WrapParse("yaml", "team structure", err)
	}

	rootTeams, ok := raw["root_teams"]
	if !ok {
		return nil, errors.NewSchemaError("team structure", "root_teams", "is missing")
	}
	if _, ok := rootTeams.([]any); !ok {
		return nil, errors.NewSchemaError("team structure", "root_teams", "must be a sequence")
	}

	var st Structure
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, errors.NewSchemaError("team structure", "root_teams", err.Error())
	}

	for i, team := range st.RootTeams {
		if team.Name == "" {
			return nil, errors.NewSchemaError("team structure",
				fmt.Sprintf("root_teams[%d].name", i), "is missing")
		}
	}
	return &st, nil
}

// LoadStructure reads and parses the team structure document at path.
func LoadStructure(path string) (*Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("team structure config", path)
		}
		return nil, errors.WrapParse("yaml", path, err)
	}

	st, err := ParseStructure(data)
	if err != nil {
		return nil, err
	}
	return st, nil
}
