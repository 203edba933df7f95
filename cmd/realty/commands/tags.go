package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	return NewCollectionCommand(CollectionCommandSet[realty.Tag]{
		Use:      "tags",
		Singular: "tag",
		Aliases:  []string{"tag"},
		Short:    "Manage tags",
		Client: func(client realty.Client) realty.CollectionClient[realty.Tag] {
			return client.Tags()
		},
		RenderTable: renderTagTable,
	})
}

func renderTagTable(tags []realty.Tag) error {
	if len(tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Created")

	for _, tag := range tags {
		_ = table.Append(strconv.Itoa(tag.ID), tag.Name,
			tag.CreatedAt.Format(dateFormat))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
