package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/teammap/pkg/generate"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the membership document from the team structure",
	Long: `Rebuild the membership document from the team structure definition.

Member lists recorded for teams that still exist in the structure are
preserved verbatim. Teams removed from the structure are dropped from
the membership document together with their member lists. New teams
start with an empty member list.

Examples:
  teammap generate                          # conventional filenames in CWD
  teammap generate --teams infra/teams.yaml # custom structure location`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("teams", "", "team structure file (default "+defaultTeamsFile+")")
	generateCmd.Flags().String("members", "", "membership file to write (default "+defaultMembersFile+")")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	membersPath := docPath(cmd, "members", "members_file")

	m, err := generate.Run(docPath(cmd, "teams", "teams_file"), membersPath)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("✅ Wrote %s: %d root teams, %d subteams\n",
			membersPath, len(m.RootTeams), len(m.Subteams))
	}
	return nil
}
