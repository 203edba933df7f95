package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewTeamsCommand creates the teams command group.
func NewTeamsCommand() *cobra.Command {
	return NewCollectionCommand(CollectionCommandSet[realty.Team]{
		Use:      "teams",
		Singular: "team",
		Aliases:  []string{"team"},
		Short:    "Manage office teams",
		Client: func(client realty.Client) realty.CollectionClient[realty.Team] {
			return client.Teams()
		},
		RenderTable: renderTeamTable,
	})
}

func renderTeamTable(teams []realty.Team) error {
	if len(teams) == 0 {
		_, _ = os.Stdout.WriteString("No teams found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Description", "Created")

	for _, team := range teams {
		_ = table.Append(strconv.Itoa(team.ID), team.Name, team.Description,
			team.CreatedAt.Format(dateFormat))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
