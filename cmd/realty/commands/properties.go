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

// NewPropertiesCommand creates the properties command group, including the
// nested document, email, note, task and contact groups.
func NewPropertiesCommand() *cobra.Command {
	cmd := NewCollectionCommand(CollectionCommandSet[realty.Property]{
		Use:      "properties",
		Singular: "property",
		Aliases:  []string{"property", "props"},
		Short:    "Manage property listings",
		Client: func(client realty.Client) realty.CollectionClient[realty.Property] {
			return client.Properties()
		},
		RenderTable: renderPropertyTable,
	})

	cmd.AddCommand(newPropertyDocumentsCommand())
	cmd.AddCommand(newPropertyEmailsCommand())
	cmd.AddCommand(newPropertyNotesCommand())
	cmd.AddCommand(newPropertyTasksCommand())
	cmd.AddCommand(newPropertyContactsCommand())

	return cmd
}

func renderPropertyTable(properties []realty.Property) error {
	if len(properties) == 0 {
		_, _ = os.Stdout.WriteString("No properties found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Address", "Suburb", "Status", "Type", "Bed", "Bath", "Price")

	for _, property := range properties {
		price := NotAvailable
		if property.Price > 0 {
			price = strconv.FormatFloat(property.Price, 'f', 0, 64)
		}

		_ = table.Append(strconv.Itoa(property.ID), property.Address,
			property.Suburb, property.Status, property.PropertyType,
			strconv.Itoa(property.Bedrooms), strconv.Itoa(property.Bathrooms),
			price)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPropertyDocumentsCommand() *cobra.Command {
	return NewSubresourceCommand(SubresourceCommandSet[realty.Document]{
		Use:      "documents",
		Singular: "document",
		Short:    "Manage documents attached to a property",
		Client: func(client realty.Client) realty.SubresourceClient[realty.Document] {
			return client.PropertyDocuments()
		},
		RenderTable: renderDocumentTable,
	})
}

func renderDocumentTable(documents []realty.Document) error {
	if len(documents) == 0 {
		_, _ = os.Stdout.WriteString("No documents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Filename", "Type", "Size")

	for _, document := range documents {
		_ = table.Append(strconv.Itoa(document.ID), document.Title,
			document.Filename, document.MimeType,
			strconv.FormatInt(document.Size, 10))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPropertyEmailsCommand() *cobra.Command {
	return NewSubresourceCommand(SubresourceCommandSet[realty.Email]{
		Use:      "emails",
		Singular: "email",
		Short:    "Manage emails logged against a property",
		Client: func(client realty.Client) realty.SubresourceClient[realty.Email] {
			return client.PropertyEmails()
		},
		RenderTable: renderEmailTable,
	})
}

func renderEmailTable(emails []realty.Email) error {
	if len(emails) == 0 {
		_, _ = os.Stdout.WriteString("No emails found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "From", "To", "Sent")

	for _, email := range emails {
		sent := NotAvailable
		if email.SentAt != nil {
			sent = email.SentAt.Format(dateFormat)
		}

		_ = table.Append(strconv.Itoa(email.ID), email.Subject,
			email.From, email.To, sent)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPropertyNotesCommand() *cobra.Command {
	return NewSubresourceCommand(SubresourceCommandSet[realty.Note]{
		Use:      "notes",
		Singular: "note",
		Short:    "Manage notes on a property",
		Client: func(client realty.Client) realty.SubresourceClient[realty.Note] {
			return client.PropertyNotes()
		},
		RenderTable: renderNoteTable,
	})
}

const noteBodyPreviewLength = 60

func renderNoteTable(notes []realty.Note) error {
	if len(notes) == 0 {
		_, _ = os.Stdout.WriteString("No notes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "Body", "Created")

	for _, note := range notes {
		body := strings.ReplaceAll(note.Body, "\n", " ")
		if len(body) > noteBodyPreviewLength {
			body = body[:noteBodyPreviewLength] + "..."
		}

		_ = table.Append(strconv.Itoa(note.ID), note.Subject, body,
			note.CreatedAt.Format(dateFormat))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPropertyTasksCommand() *cobra.Command {
	return NewSubresourceCommand(SubresourceCommandSet[realty.Task]{
		Use:      "tasks",
		Singular: "task",
		Short:    "Manage follow-up tasks on a property",
		Client: func(client realty.Client) realty.SubresourceClient[realty.Task] {
			return client.PropertyTasks()
		},
		RenderTable: renderTaskTable,
	})
}

func renderTaskTable(tasks []realty.Task) error {
	if len(tasks) == 0 {
		_, _ = os.Stdout.WriteString("No tasks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Due", "Done")

	for _, task := range tasks {
		due := NotAvailable
		if task.DueDate != nil {
			due = task.DueDate.Format(dateFormat)
		}

		done := "no"
		if task.Completed {
			done = "yes"
		}

		_ = table.Append(strconv.Itoa(task.ID), task.Title, due, done)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPropertyContactsCommand() *cobra.Command {
	return NewSubresourceCommand(SubresourceCommandSet[realty.Contact]{
		Use:      "contacts",
		Singular: "contact",
		Short:    "Manage contacts linked to a property",
		Client: func(client realty.Client) realty.SubresourceClient[realty.Contact] {
			return client.PropertyContacts()
		},
		RenderTable: renderContactTable,
	})
}
