package teams

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/teammap/pkg/errors"
)

// Roster is the authoritative list of all members of the organization,
// independent of team assignment. Read-only.
type Roster struct {
	Members []string `yaml:"members"`
}

// Set returns the roster members as a lookup set.
func (r *Roster) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Members))
	for _, username := range r.Members {
		set[username] = struct{}{}
	}
	return set
}

// LoadRoster reads and parses the organization roster document at path.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("organization roster", path)
		}
		return nil, errors.WrapParse("yaml", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if _, ok := raw["members"]; !ok {
		return nil, errors.NewSchemaError(path, "members", "is missing")
	}

	// The members key must be present; a pointer distinguishes a missing
	// or null key from an empty list.
	var doc struct {
		Members *[]string `yaml:"members"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewSchemaError(path, "members", err.Error())
	}
	if doc.Members == nil {
		return nil, errors.NewSchemaError(path, "members", "is missing")
	}

	return &Roster{Members: *doc.Members}, nil
}
