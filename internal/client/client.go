package client

import (
	"github.com/realtyhub-io/realty-client/internal/constants"
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// Client implements the realty.Client interface.
type Client struct {
	httpClient *http.Client
	host       string

	// Resource clients
	agents     realty.AgentsClient
	contacts   realty.ContactsClient
	properties realty.PropertiesClient
	teams      realty.TeamsClient
	tags       realty.TagsClient
	users      realty.UsersClient

	propertyDocuments realty.PropertyDocumentsClient
	propertyEmails    realty.PropertyEmailsClient
	propertyNotes     realty.PropertyNotesClient
	propertyTasks     realty.PropertyTasksClient
	propertyContacts  realty.PropertyContactsClient
}

// buildHTTPOptions builds HTTP client options from config.
func buildHTTPOptions(config *realty.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client. The config must already carry a resolved
// API key; realtyclient.New performs the environment fallback.
func New(config *realty.Config) (*Client, error) {
	if config == nil {
		return nil, realty.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, realty.ErrAPIKeyRequired
	}

	host := config.Host
	if host == "" {
		host = constants.DefaultAPIHost
	}

	httpClient := http.NewClient(host, config.APIKey, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		host:       host,
	}

	client.initializeResourceClients()

	return client, nil
}

// Agents implements realty.Client.Agents.
func (c *Client) Agents() realty.AgentsClient {
	return c.agents
}

// Contacts implements realty.Client.Contacts.
func (c *Client) Contacts() realty.ContactsClient {
	return c.contacts
}

// Properties implements realty.Client.Properties.
func (c *Client) Properties() realty.PropertiesClient {
	return c.properties
}

// Teams implements realty.Client.Teams.
func (c *Client) Teams() realty.TeamsClient {
	return c.teams
}

// Tags implements realty.Client.Tags.
func (c *Client) Tags() realty.TagsClient {
	return c.tags
}

// Users implements realty.Client.Users.
func (c *Client) Users() realty.UsersClient {
	return c.users
}

// PropertyDocuments implements realty.Client.PropertyDocuments.
func (c *Client) PropertyDocuments() realty.PropertyDocumentsClient {
	return c.propertyDocuments
}

// PropertyEmails implements realty.Client.PropertyEmails.
func (c *Client) PropertyEmails() realty.PropertyEmailsClient {
	return c.propertyEmails
}

// PropertyNotes implements realty.Client.PropertyNotes.
func (c *Client) PropertyNotes() realty.PropertyNotesClient {
	return c.propertyNotes
}

// PropertyTasks implements realty.Client.PropertyTasks.
func (c *Client) PropertyTasks() realty.PropertyTasksClient {
	return c.propertyTasks
}

// PropertyContacts implements realty.Client.PropertyContacts.
func (c *Client) PropertyContacts() realty.PropertyContactsClient {
	return c.propertyContacts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.agents = NewAgentsClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
	c.properties = NewPropertiesClient(c.httpClient)
	c.teams = NewTeamsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)

	c.propertyDocuments = NewPropertyDocumentsClient(c.httpClient)
	c.propertyEmails = NewPropertyEmailsClient(c.httpClient)
	c.propertyNotes = NewPropertyNotesClient(c.httpClient)
	c.propertyTasks = NewPropertyTasksClient(c.httpClient)
	c.propertyContacts = NewPropertyContactsClient(c.httpClient)
}

// loggerAdapter adapts realty.Logger to http.Logger.
type loggerAdapter struct {
	logger realty.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
