package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	return NewCollectionCommand(CollectionCommandSet[realty.User]{
		Use:      "users",
		Singular: "user",
		Aliases:  []string{"user"},
		Short:    "Manage account users",
		Client: func(client realty.Client) realty.CollectionClient[realty.User] {
			return client.Users()
		},
		RenderTable: renderUserTable,
	})
}

func renderUserTable(users []realty.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Role", "Active")

	for _, user := range users {
		active := "no"
		if user.Active {
			active = "yes"
		}

		_ = table.Append(strconv.Itoa(user.ID),
			user.FirstName+" "+user.LastName,
			user.Email, user.Role, active)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
