package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewAgentsCommand creates the agents command group.
func NewAgentsCommand() *cobra.Command {
	return NewCollectionCommand(CollectionCommandSet[realty.Agent]{
		Use:      "agents",
		Singular: "agent",
		Aliases:  []string{"agent"},
		Short:    "Manage sales agents",
		Client: func(client realty.Client) realty.CollectionClient[realty.Agent] {
			return client.Agents()
		},
		RenderTable: renderAgentTable,
	})
}

func renderAgentTable(agents []realty.Agent) error {
	if len(agents) == 0 {
		_, _ = os.Stdout.WriteString("No agents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Mobile", "Position", "Team")

	for _, agent := range agents {
		team := NotAvailable
		if agent.TeamID > 0 {
			team = strconv.Itoa(agent.TeamID)
		}

		_ = table.Append(strconv.Itoa(agent.ID),
			agent.FirstName+" "+agent.LastName,
			agent.Email, agent.Mobile, agent.Position, team)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
