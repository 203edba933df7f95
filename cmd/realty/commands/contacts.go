package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	return NewCollectionCommand(CollectionCommandSet[realty.Contact]{
		Use:      "contacts",
		Singular: "contact",
		Aliases:  []string{"contact"},
		Short:    "Manage contacts",
		Client: func(client realty.Client) realty.CollectionClient[realty.Contact] {
			return client.Contacts()
		},
		RenderTable: renderContactTable,
	})
}

func renderContactTable(contacts []realty.Contact) error {
	if len(contacts) == 0 {
		_, _ = os.Stdout.WriteString("No contacts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Mobile", "Tags")

	for _, contact := range contacts {
		_ = table.Append(strconv.Itoa(contact.ID),
			contact.FirstName+" "+contact.LastName,
			contact.Email, contact.Mobile,
			strings.Join(contact.Tags, ", "))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
