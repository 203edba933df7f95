package realty

import (
	"context"
	"encoding/json"
	"time"
)

// CollectionClient is the uniform contract for a top-level resource
// collection. Every method performs exactly one HTTP call.
type CollectionClient[T any] interface {
	// List fetches the collection, possibly empty.
	List(ctx context.Context, params *QueryParams) ([]T, error)
	// Create posts data as the new record. Empty data is rejected before
	// any network call.
	Create(ctx context.Context, data map[string]interface{}) (*T, error)
	// Get fetches a single record by its positive integer id.
	Get(ctx context.Context, id int) (*T, error)
	// Update puts partial or full data over the record.
	Update(ctx context.Context, id int, data map[string]interface{}) (*T, error)
	// Delete removes the record and returns the server's acknowledgment
	// body verbatim. Its shape varies upstream; callers should treat a nil
	// error as the success signal.
	Delete(ctx context.Context, id int) (json.RawMessage, error)
}

// SubresourceClient is the contract for resources nested under a property.
// The property id scopes every path; its existence is enforced server-side.
type SubresourceClient[T any] interface {
	List(ctx context.Context, propertyID int, params *QueryParams) ([]T, error)
	Create(ctx context.Context, propertyID int, data map[string]interface{}) (*T, error)
	Get(ctx context.Context, propertyID, id int) (*T, error)
	Update(ctx context.Context, propertyID, id int, data map[string]interface{}) (*T, error)
	Delete(ctx context.Context, propertyID, id int) (json.RawMessage, error)
}

// Typed aliases for the top-level resource clients.
type (
	AgentsClient     = CollectionClient[Agent]
	ContactsClient   = CollectionClient[Contact]
	PropertiesClient = CollectionClient[Property]
	TeamsClient      = CollectionClient[Team]
	TagsClient       = CollectionClient[Tag]
	UsersClient      = CollectionClient[User]
)

// Typed aliases for the property sub-resource clients.
type (
	PropertyDocumentsClient = SubresourceClient[Document]
	PropertyEmailsClient    = SubresourceClient[Email]
	PropertyNotesClient     = SubresourceClient[Note]
	PropertyTasksClient     = SubresourceClient[Task]
	PropertyContactsClient  = SubresourceClient[Contact]
)

// Client provides access to all resource-specific clients.
type Client interface {
	Agents() AgentsClient
	Contacts() ContactsClient
	Properties() PropertiesClient
	Teams() TeamsClient
	Tags() TagsClient
	Users() UsersClient

	PropertyDocuments() PropertyDocumentsClient
	PropertyEmails() PropertyEmailsClient
	PropertyNotes() PropertyNotesClient
	PropertyTasks() PropertyTasksClient
	PropertyContacts() PropertyContactsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a realty.Client.
//
// # Credentials
//
// APIKey is the only credential. realtyclient.New resolves it once at
// construction: an explicit APIKey wins, otherwise the REALTY_API_KEY
// environment variable is consulted, otherwise construction fails with
// ErrAPIKeyRequired. The key is sent as the api_token query parameter on
// every request (an upstream requirement; it is not a header).
//
// # Timeouts and retries
//
// HTTPTimeout bounds each outbound call; on expiry the call fails with a
// network error. No retries are performed unless RetryMax is set: retry
// policy is deliberately the caller's decision.
type Config struct {
	// APIKey authenticates every request. Falls back to REALTY_API_KEY.
	APIKey string
	// Host is the API host, e.g. "api.realtyhub.io". realtyclient.New
	// normalizes it by trimming a trailing slash and adding "https://" when
	// no scheme is present. Defaults to the production host when empty.
	Host string

	// HTTPTimeout bounds each outbound request. Zero means the default.
	HTTPTimeout time.Duration
	// RetryMax enables opt-in retries for transient failures (5xx, 429,
	// connection errors). Zero disables retries entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
