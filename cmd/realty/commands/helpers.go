package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/realtyhub-io/realty-client/pkg/realty"
	"github.com/realtyhub-io/realty-client/pkg/realtyclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2

	dateFormat = "2006-01-02"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidFieldFormat = errors.New("invalid field format, expected key=value")
	ErrNoFieldsSpecified  = errors.New("at least one --set field is required")
	ErrInvalidResourceID  = errors.New("id must be a positive integer")
	ErrPropertyIDRequired = errors.New("property id is required (use --property)")
	ErrAPIKeyEmpty        = errors.New("API key must not be empty")
)

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (realty.Client, error) {
	config := &realty.Config{
		APIKey: viper.GetString("api-key"),
		Host:   viper.GetString("host"),
		Debug:  viper.GetBool("verbose"),
	}

	client, err := realtyclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// ParseResourceID parses a positional id argument.
func ParseResourceID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResourceID, arg)
	}

	return id, nil
}

// ParseSetFlags converts repeated --set key=value flags into a payload map.
// Values that parse as integers, floats or booleans are sent as such;
// everything else is sent as a string.
func ParseSetFlags(fields []string) (map[string]interface{}, error) {
	if len(fields) == 0 {
		return nil, ErrNoFieldsSpecified
	}

	payload := make(map[string]interface{}, len(fields))

	for _, field := range fields {
		key, rawValue, found := strings.Cut(field, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, field)
		}

		payload[key] = coerceValue(rawValue)
	}

	return payload, nil
}

func coerceValue(raw string) interface{} {
	if intValue, err := strconv.Atoi(raw); err == nil {
		return intValue
	}

	if floatValue, err := strconv.ParseFloat(raw, 64); err == nil {
		return floatValue
	}

	if boolValue, err := strconv.ParseBool(raw); err == nil {
		return boolValue
	}

	return raw
}

// BuildQueryParams assembles list parameters from the shared list flags.
func BuildQueryParams(limit, offset int, orderBy, search string, filters []string) (*realty.QueryParams, error) {
	params := realty.NewQueryParams()

	if limit > 0 {
		params.WithLimit(limit)
	}

	if offset > 0 {
		params.WithOffset(offset)
	}

	if orderBy != "" {
		params.WithOrderBy(orderBy)
	}

	if search != "" {
		params.WithSearch(search)
	}

	for _, filter := range filters {
		field, value, found := strings.Cut(filter, "=")
		if !found || field == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, filter)
		}

		params.WithFilter(field, value)
	}

	return params, nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderList dispatches a list result to the configured output format.
func renderList[T any](records []T, renderTable func([]T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(records)
	case OutputFormatYAML:
		return StandardYAMLRenderer(records)
	default:
		return renderTable(records)
	}
}

// renderRecord dispatches a single record to the configured output format.
// Table output reuses the list renderer with a single row.
func renderRecord[T any](record *T, renderTable func([]T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(record)
	case OutputFormatYAML:
		return StandardYAMLRenderer(record)
	default:
		return renderTable([]T{*record})
	}
}

// renderAck prints a delete acknowledgement. The raw body is echoed for
// json/yaml output; table output prints a short confirmation.
func renderAck(ack json.RawMessage, use string, id int) error {
	switch viper.GetString("output") {
	case OutputFormatJSON, OutputFormatYAML:
		if len(ack) > 0 {
			_, _ = os.Stdout.Write(append(ack, '\n'))
		}

		return nil
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Deleted %s %d\n", use, id)

		return nil
	}
}
