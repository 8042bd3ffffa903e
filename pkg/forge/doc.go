// Package forge provides the types, interfaces, authorization strategies,
// and request builders for working with a self-hosted Git forge's HTTP API
// (version 1).
//
// # Overview
//
// The forge package defines the domain types (User, Repository, Version),
// the Authorizer strategies (none, basic, token), the fluent builders, and
// the interfaces for the client and its endpoints. A concrete implementation
// is provided by the forgeclient package, which wires configuration,
// transport, and authentication. Most consumers should import forgeclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/forgekit-io/forgekit/pkg/forgeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := forgeclient.NewWithToken("git.example.com", 3000, true, "2eff…")
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := cli.Users().GetCurrent(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// # Builders
//
// Create and update operations go through fluent builders. Setters accumulate
// fields in any order; required fields are validated only when the terminal
// method runs, which issues exactly one request:
//
//	repo, err := cli.Repositories().New().
//	  Name("infra").
//	  Description("deployment manifests").
//	  MakePrivate().
//	  AutoInit(true).
//	  Create(ctx)
//
// # Chaining
//
// Every domain object returned by the API carries a back-reference to the
// Client that produced it, so follow-up operations chain without re-supplying
// credentials:
//
//	user, _ := cli.Users().Get(ctx, "ada")
//	repo, _ := user.NewRepository().Name("notes").Create(ctx)
//	_ = repo.Delete(ctx)
//
// # Errors
//
// Non-2xx responses surface as *APIError carrying the status code and the
// server's message. Helpers such as IsNotFound, IsUnauthorized, and
// IsForbidden make it easy to branch on common cases. Builder misuse is
// reported before any network traffic: *ValidationError names the required
// fields that were never set, and ErrBuilderAlreadySent guards against
// reusing a spent builder.
package forge
