package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/teammap/internal/cmd/output"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/teams"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams defined in the team structure",
	Long: `Display the team hierarchy from the structure document. When a
membership document exists, recorded member counts are shown alongside
each team.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// teamRow is one rendered line of the team listing.
type teamRow struct {
	Name        string `json:"name"`
	ParentTeam  string `json:"parent_team,omitempty"`
	Privacy     string `json:"privacy,omitempty"`
	MemberCount int    `json:"member_count"`
	Description string `json:"description,omitempty"`
}

func runList(_ *cobra.Command, _ []string) error {
	st, err := teams.LoadStructure(viper.GetString("teams_file"))
	if err != nil {
		return err
	}

	// Member counts are best-effort; the membership document may not
	// have been generated yet.
	counts := membershipCounts(viper.GetString("members_file"))

	rows := make([]teamRow, 0, len(st.RootTeams))
	for _, team := range st.RootTeams {
		rows = append(rows, teamRow{
			Name:        team.Name,
			Privacy:     team.Privacy,
			MemberCount: counts[team.Name],
			Description: team.Description,
		})
		for _, sub := range team.Subteams {
			rows = append(rows, teamRow{
				Name:        sub.Name,
				ParentTeam:  team.Name,
				Privacy:     sub.Privacy,
				MemberCount: counts[team.Name+"/"+sub.Name],
				Description: sub.Description,
			})
		}
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	format = output.DetectFormat(string(format))

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, rows)
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			row.Name,
			row.ParentTeam,
			row.Privacy,
			strconv.Itoa(row.MemberCount),
			row.Description,
		})
	}

	return output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{
			output.TitleHeader("name"),
			output.TitleHeader("parent_team"),
			output.TitleHeader("privacy"),
			output.TitleHeader("members"),
			output.TitleHeader("description"),
		},
		Rows: tableRows,
	})
}

// membershipCounts returns recorded member counts keyed by team name
// (root teams) and parent/name (subteams). Missing or unreadable
// membership documents yield empty counts.
func membershipCounts(path string) map[string]int {
	counts := make(map[string]int)

	m, err := teams.LoadMembership(path)
	if err != nil {
		if !errors.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Warning: skipping member counts: %v\n", err)
		}
		return counts
	}

	for _, t := range m.RootTeams {
		counts[t.Name] = len(t.Members)
	}
	for _, s := range m.Subteams {
		counts[s.ParentTeam+"/"+s.Name] = len(s.Members)
	}
	return counts
}
