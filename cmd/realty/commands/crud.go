package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// CollectionCommandSet describes one top-level resource command group. All
// six resource groups share the same five verbs, so the subcommands are
// built once here and parameterized per resource.
type CollectionCommandSet[T any] struct {
	Use         string
	Singular    string
	Aliases     []string
	Short       string
	Client      func(realty.Client) realty.CollectionClient[T]
	RenderTable func([]T) error
}

// NewCollectionCommand builds the command group for one resource.
func NewCollectionCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:     set.Use,
		Aliases: set.Aliases,
		Short:   set.Short,
		Long:    fmt.Sprintf("List, create, update, and delete %s", set.Use),
	}

	cmd.AddCommand(newListCommand(set))
	cmd.AddCommand(newGetCommand(set))
	cmd.AddCommand(newCreateCommand(set))
	cmd.AddCommand(newUpdateCommand(set))
	cmd.AddCommand(newDeleteCommand(set))

	return cmd
}

func newListCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	var (
		limit   int
		offset  int
		orderBy string
		search  string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + set.Use,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := BuildQueryParams(limit, offset, orderBy, search, filters)
			if err != nil {
				return err
			}

			records, err := set.Client(client).List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", set.Use, err)
			}

			return renderList(records, set.RenderTable)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of records to skip")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field (prefix with - for descending)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search term")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field filter as key=value (repeatable)")

	return cmd
}

func newGetCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a " + set.Singular + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", set.Singular, id, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}
}

func newCreateCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + set.Singular,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := ParseSetFlags(fields)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Create(context.Background(), payload)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", set.Singular, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "field to set as key=value (repeatable)")

	return cmd
}

func newUpdateCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + set.Singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			payload, err := ParseSetFlags(fields)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Update(context.Background(), id, payload)
			if err != nil {
				return fmt.Errorf("failed to update %s %d: %w", set.Singular, id, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "field to set as key=value (repeatable)")

	return cmd
}

func newDeleteCommand[T any](set CollectionCommandSet[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + set.Singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ack, err := set.Client(client).Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete %s %d: %w", set.Singular, id, err)
			}

			return renderAck(ack, set.Singular, id)
		},
	}
}

// SubresourceCommandSet describes one property sub-resource command group.
type SubresourceCommandSet[T any] struct {
	Use         string
	Singular    string
	Short       string
	Client      func(realty.Client) realty.SubresourceClient[T]
	RenderTable func([]T) error
}

// NewSubresourceCommand builds a command group nested under "properties".
// Every subcommand requires --property to scope the operation.
func NewSubresourceCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   set.Use,
		Short: set.Short,
	}

	cmd.PersistentFlags().Int("property", 0, "property id (required)")

	cmd.AddCommand(newSubListCommand(set))
	cmd.AddCommand(newSubGetCommand(set))
	cmd.AddCommand(newSubCreateCommand(set))
	cmd.AddCommand(newSubUpdateCommand(set))
	cmd.AddCommand(newSubDeleteCommand(set))

	return cmd
}

func propertyIDFromFlags(cmd *cobra.Command) (int, error) {
	propertyID, err := cmd.Flags().GetInt("property")
	if err != nil || propertyID <= 0 {
		return 0, ErrPropertyIDRequired
	}

	return propertyID, nil
}

func newSubListCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + set.Use + " on a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := propertyIDFromFlags(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := BuildQueryParams(limit, offset, "", "", nil)
			if err != nil {
				return err
			}

			records, err := set.Client(client).List(context.Background(), propertyID, params)
			if err != nil {
				return fmt.Errorf("failed to list %s for property %d: %w", set.Use, propertyID, err)
			}

			return renderList(records, set.RenderTable)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of records to skip")

	return cmd
}

func newSubGetCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a " + set.Singular + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := propertyIDFromFlags(cmd)
			if err != nil {
				return err
			}

			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Get(context.Background(), propertyID, id)
			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", set.Singular, id, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}
}

func newSubCreateCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + set.Singular + " on a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := propertyIDFromFlags(cmd)
			if err != nil {
				return err
			}

			payload, err := ParseSetFlags(fields)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Create(context.Background(), propertyID, payload)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", set.Singular, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "field to set as key=value (repeatable)")

	return cmd
}

func newSubUpdateCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + set.Singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := propertyIDFromFlags(cmd)
			if err != nil {
				return err
			}

			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			payload, err := ParseSetFlags(fields)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := set.Client(client).Update(context.Background(), propertyID, id, payload)
			if err != nil {
				return fmt.Errorf("failed to update %s %d: %w", set.Singular, id, err)
			}

			return renderRecord(record, set.RenderTable)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "field to set as key=value (repeatable)")

	return cmd
}

func newSubDeleteCommand[T any](set SubresourceCommandSet[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + set.Singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := propertyIDFromFlags(cmd)
			if err != nil {
				return err
			}

			id, err := ParseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ack, err := set.Client(client).Delete(context.Background(), propertyID, id)
			if err != nil {
				return fmt.Errorf("failed to delete %s %d: %w", set.Singular, id, err)
			}

			return renderAck(ack, set.Singular, id)
		},
	}
}
