// Package realty provides types, interfaces, and helpers for working with
// the RealtyHub real-estate CRM REST API.
//
// # Overview
//
// The realty package defines the domain types (Agent, Contact, Property,
// Team, Tag, User, and the property sub-resources Document, Email, Note and
// Task) and the interfaces for resource-oriented clients. A concrete
// implementation of these clients is provided by the realtyclient package,
// which wires configuration, credentials, and transport. Most consumers
// should import realtyclient to construct a client and then interact with
// the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/realtyhub-io/realty-client/pkg/realty"
//	  "github.com/realtyhub-io/realty-client/pkg/realtyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := realtyclient.New(&realty.Config{APIKey: "key"})
//	  if err != nil { log.Fatal(err) }
//
//	  contacts, err := cli.Contacts().List(ctx, realty.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// # Errors
//
// API failures are represented by Error, which carries an ErrorKind, the
// HTTP status code, and the raw response body. Helpers such as IsNotFound,
// IsAuthentication, IsValidation, IsRateLimit and IsServerError make it
// easy to branch on common cases without inspecting messages.
//
// # Upstream quirks
//
// The upstream service versions its read and write endpoints inconsistently:
// creation (POST) requests go to the bare host while every other verb goes
// to the /v1 prefix, and property creation additionally requires a trailing
// slash on its path. The HTTP layer papers over both; the rules live in a
// single URL resolver so they stay testable in isolation.
package realty
