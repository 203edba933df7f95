package realty

import (
	"time"
)

// Resource is the base structure shared by all API resources. Identifiers
// are server-assigned.
type Resource struct {
	ID        int       `json:"id"         yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Agent represents a sales agent.
type Agent struct {
	Resource

	FirstName string `json:"first_name"        yaml:"first_name"`
	LastName  string `json:"last_name"         yaml:"last_name"`
	Email     string `json:"email"             yaml:"email"`
	Phone     string `json:"phone,omitempty"   yaml:"phone,omitempty"`
	Mobile    string `json:"mobile,omitempty"  yaml:"mobile,omitempty"`
	Position  string `json:"position,omitempty" yaml:"position,omitempty"`
	TeamID    int    `json:"team_id,omitempty" yaml:"team_id,omitempty"`
}

// Contact represents a buyer, vendor or other contact record.
type Contact struct {
	Resource

	FirstName string   `json:"first_name"        yaml:"first_name"`
	LastName  string   `json:"last_name"         yaml:"last_name"`
	Email     string   `json:"email,omitempty"   yaml:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"   yaml:"phone,omitempty"`
	Mobile    string   `json:"mobile,omitempty"  yaml:"mobile,omitempty"`
	Address   string   `json:"address,omitempty" yaml:"address,omitempty"`
	Tags      []string `json:"tags,omitempty"    yaml:"tags,omitempty"`
}

// Property represents a property listing.
type Property struct {
	Resource

	Address      string  `json:"address"                 yaml:"address"`
	Suburb       string  `json:"suburb,omitempty"        yaml:"suburb,omitempty"`
	State        string  `json:"state,omitempty"         yaml:"state,omitempty"`
	Postcode     string  `json:"postcode,omitempty"      yaml:"postcode,omitempty"`
	Country      string  `json:"country,omitempty"       yaml:"country,omitempty"`
	Status       string  `json:"status,omitempty"        yaml:"status,omitempty"`
	PropertyType string  `json:"property_type,omitempty" yaml:"property_type,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"      yaml:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"     yaml:"bathrooms,omitempty"`
	Carspaces    int     `json:"carspaces,omitempty"     yaml:"carspaces,omitempty"`
	Price        float64 `json:"price,omitempty"         yaml:"price,omitempty"`
	Headline     string  `json:"headline,omitempty"      yaml:"headline,omitempty"`
	Description  string  `json:"description,omitempty"   yaml:"description,omitempty"`
	AgentID      int     `json:"agent_id,omitempty"      yaml:"agent_id,omitempty"`
}

// Team represents an office team grouping agents.
type Team struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag represents a label that can be attached to contacts and properties.
type Tag struct {
	Resource

	Name string `json:"name" yaml:"name"`
}

// User represents an account user.
type User struct {
	Resource

	FirstName string `json:"first_name"     yaml:"first_name"`
	LastName  string `json:"last_name"      yaml:"last_name"`
	Email     string `json:"email"          yaml:"email"`
	Role      string `json:"role,omitempty" yaml:"role,omitempty"`
	Active    bool   `json:"active"         yaml:"active"`
}

// Document represents a file attached to a property.
type Document struct {
	Resource

	Title    string `json:"title"               yaml:"title"`
	Filename string `json:"filename,omitempty"  yaml:"filename,omitempty"`
	URL      string `json:"url,omitempty"       yaml:"url,omitempty"`
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"      yaml:"size,omitempty"`
}

// Email represents an email logged against a property.
type Email struct {
	Resource

	Subject string     `json:"subject"           yaml:"subject"`
	Body    string     `json:"body,omitempty"    yaml:"body,omitempty"`
	From    string     `json:"from,omitempty"    yaml:"from,omitempty"`
	To      string     `json:"to,omitempty"      yaml:"to,omitempty"`
	SentAt  *time.Time `json:"sent_at,omitempty" yaml:"sent_at,omitempty"`
}

// Note represents a free-form note on a property.
type Note struct {
	Resource

	Subject  string `json:"subject,omitempty"   yaml:"subject,omitempty"`
	Body     string `json:"body"                yaml:"body"`
	AuthorID int    `json:"author_id,omitempty" yaml:"author_id,omitempty"`
}

// Task represents a follow-up task on a property.
type Task struct {
	Resource

	Title       string     `json:"title"                 yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"    yaml:"due_date,omitempty"`
	Completed   bool       `json:"completed"             yaml:"completed"`
	AssigneeID  int        `json:"assignee_id,omitempty" yaml:"assignee_id,omitempty"`
}
