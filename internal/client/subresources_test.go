package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestPropertyDocumentsClient(t *testing.T) {
	t.Parallel()

	client.RunSubresourceTests(t, client.SubresourceSuite[realty.Document]{
		Segment: "documents",
		Client: func(c *client.Client) realty.SubresourceClient[realty.Document] {
			return c.PropertyDocuments()
		},
		Sample: map[string]interface{}{
			"id":        42,
			"title":     "Contract of Sale",
			"filename":  "contract.pdf",
			"mime_type": "application/pdf",
			"size":      524288,
		},
		SampleData: map[string]interface{}{
			"title": "Contract of Sale",
		},
		Validate: func(t *testing.T, document *realty.Document) {
			assert.Equal(t, 42, document.ID)
			assert.Equal(t, "Contract of Sale", document.Title)
			assert.Equal(t, int64(524288), document.Size)
		},
	})
}

func TestPropertyEmailsClient(t *testing.T) {
	t.Parallel()

	client.RunSubresourceTests(t, client.SubresourceSuite[realty.Email]{
		Segment: "emails",
		Client: func(c *client.Client) realty.SubresourceClient[realty.Email] {
			return c.PropertyEmails()
		},
		Sample: map[string]interface{}{
			"id":      42,
			"subject": "Open home this Saturday",
			"from":    "sarah@example.com",
			"to":      "marcus@example.com",
		},
		SampleData: map[string]interface{}{
			"subject": "Open home this Saturday",
			"to":      "marcus@example.com",
		},
		Validate: func(t *testing.T, email *realty.Email) {
			assert.Equal(t, 42, email.ID)
			assert.Equal(t, "Open home this Saturday", email.Subject)
		},
	})
}

func TestPropertyNotesClient(t *testing.T) {
	t.Parallel()

	client.RunSubresourceTests(t, client.SubresourceSuite[realty.Note]{
		Segment: "notes",
		Client: func(c *client.Client) realty.SubresourceClient[realty.Note] {
			return c.PropertyNotes()
		},
		Sample: map[string]interface{}{
			"id":        42,
			"subject":   "Vendor call",
			"body":      "Vendor wants to review the price after the first open home.",
			"author_id": 7,
		},
		SampleData: map[string]interface{}{
			"body": "Vendor wants to review the price after the first open home.",
		},
		Validate: func(t *testing.T, note *realty.Note) {
			assert.Equal(t, 42, note.ID)
			assert.Equal(t, 7, note.AuthorID)
		},
	})
}

func TestPropertyTasksClient(t *testing.T) {
	t.Parallel()

	client.RunSubresourceTests(t, client.SubresourceSuite[realty.Task]{
		Segment: "tasks",
		Client: func(c *client.Client) realty.SubresourceClient[realty.Task] {
			return c.PropertyTasks()
		},
		Sample: map[string]interface{}{
			"id":          42,
			"title":       "Book photographer",
			"completed":   false,
			"assignee_id": 7,
		},
		SampleData: map[string]interface{}{
			"title": "Book photographer",
		},
		Validate: func(t *testing.T, task *realty.Task) {
			assert.Equal(t, 42, task.ID)
			assert.Equal(t, "Book photographer", task.Title)
			assert.False(t, task.Completed)
		},
	})
}

func TestPropertyContactsClient(t *testing.T) {
	t.Parallel()

	client.RunSubresourceTests(t, client.SubresourceSuite[realty.Contact]{
		Segment: "contacts",
		Client: func(c *client.Client) realty.SubresourceClient[realty.Contact] {
			return c.PropertyContacts()
		},
		Sample: map[string]interface{}{
			"id":         42,
			"first_name": "Marcus",
			"last_name":  "Webb",
			"email":      "marcus@example.com",
		},
		SampleData: map[string]interface{}{
			"first_name": "Marcus",
			"last_name":  "Webb",
		},
		Validate: func(t *testing.T, contact *realty.Contact) {
			assert.Equal(t, 42, contact.ID)
			assert.Equal(t, "Webb", contact.LastName)
		},
	})
}
