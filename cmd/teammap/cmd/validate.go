package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/teammap/internal/cmd/output"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/teams"
	"github.com/agentstation/teammap/pkg/validate"
)

var (
	showBreakdown   bool
	showMembersView bool
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate team members against the organization roster",
	Long: `Cross-check every member recorded in the membership document against
the organization roster and write a validation report.

The command exits non-zero when any recorded member is absent from the
roster, so CI can treat an out-of-date membership document as an error.

Examples:
  teammap validate                 # write the report, print the summary
  teammap validate --breakdown     # also print a team-by-team breakdown
  teammap validate --members-view  # also print a member-to-teams mapping`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("members", "", "membership file to validate (default "+defaultMembersFile+")")
	validateCmd.Flags().String("roster", "", "organization roster file (default "+defaultRosterFile+")")
	validateCmd.Flags().String("report", "", "validation report file to write (default "+defaultReportFile+")")
	validateCmd.Flags().BoolVar(&showBreakdown, "breakdown", false, "print a team-by-team membership breakdown")
	validateCmd.Flags().BoolVar(&showMembersView, "members-view", false, "print a member-to-teams mapping")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	m, err := teams.LoadMembership(docPath(cmd, "members", "members_file"))
	if err != nil {
		return err
	}
	roster, err := teams.LoadRoster(docPath(cmd, "roster", "roster_file"))
	if err != nil {
		return err
	}

	report := validate.Validate(m, roster)

	reportPath := docPath(cmd, "report", "report_file")
	if err := report.Save(reportPath); err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	format = output.DetectFormat(string(format))

	if showBreakdown {
		if err := printBreakdown(report, format); err != nil {
			return err
		}
	}
	if showMembersView {
		if err := printMemberTeams(report, roster, format); err != nil {
			return err
		}
	}

	printSummary(report, reportPath)

	if !report.Passed() {
		return fmt.Errorf("%w: %d member(s) not in the organization roster",
			errors.ErrInvalidMembers, report.Summary.InvalidMembers)
	}
	return nil
}

// printSummary prints the aggregate result of the validation run.
func printSummary(report *validate.Report, reportPath string) {
	if quiet {
		return
	}

	s := report.Summary
	fmt.Printf("Organization members: %d\n", report.OrganizationMemberCount)
	fmt.Printf("Unique team members:  %d (%d valid, %d invalid)\n",
		s.TotalUniqueTeamMembers, s.ValidMembers, s.InvalidMembers)

	if report.Passed() {
		fmt.Printf("✅ All team members are organization members (report: %s)\n", reportPath)
		return
	}

	fmt.Printf("❌ %d team(s) contain invalid members:\n", s.TeamsWithInvalidMembers)
	for _, username := range report.InvalidMembersList {
		fmt.Printf("  - %s\n", username)
	}
}

// printBreakdown renders the team-by-team view through the formatter.
func printBreakdown(report *validate.Report, format output.Format) error {
	rows := report.Breakdown()

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, rows)
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{row.Team, row.Member, row.Status})
	}

	fmt.Println("Team Membership Breakdown:")
	return output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{
			output.TitleHeader("team"),
			output.TitleHeader("member"),
			output.TitleHeader("status"),
		},
		Rows: tableRows,
	})
}

// printMemberTeams renders the member-to-teams view through the formatter.
func printMemberTeams(report *validate.Report, roster *teams.Roster, format output.Format) error {
	view := report.MemberTeams(roster)

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, view)
	}

	tableRows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		status := "valid"
		if !row.Valid {
			status = "invalid"
		}
		tableRows = append(tableRows, []string{row.Member, row.Teams, status})
	}

	fmt.Println("Member Team Assignments:")
	if err := output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{
			output.TitleHeader("member"),
			output.TitleHeader("teams"),
			output.TitleHeader("status"),
		},
		Rows: tableRows,
	}); err != nil {
		return err
	}

	if len(view.Unassigned) > 0 {
		fmt.Printf("Organization members in no team: %d\n", len(view.Unassigned))
		for _, username := range view.Unassigned {
			fmt.Printf("  - %s\n", username)
		}
	}
	return nil
}
