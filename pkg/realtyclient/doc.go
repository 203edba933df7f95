// Package realtyclient is the public entry point for the RealtyHub API
// client. It resolves credentials, normalizes the target host and returns a
// ready-to-use realty.Client.
//
// Basic usage:
//
//	client, err := realtyclient.New(&realty.Config{
//		APIKey: "your-api-key",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	agents, err := client.Agents().List(ctx, nil)
//
// When Config.APIKey is empty the REALTY_API_KEY environment variable is
// consulted; construction fails if neither is set.
package realtyclient
