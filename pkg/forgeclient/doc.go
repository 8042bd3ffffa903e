// Package forgeclient provides the main entry point for creating forge API
// clients.
//
// All constructors converge on the same canonical path, so the port-range
// validation and base-URL invariant ("scheme://host:port/api/v1/") hold
// regardless of which one is used:
//
//	cli, err := forgeclient.NewWithBasicAuth("git.example.com", 3000, false, "ada", "s3cret")
//	cli, err := forgeclient.NewWithToken("git.example.com", 443, true, "2eff…")
//	cli, err := forgeclient.NewFromURL("https://git.example.com:3000", "ada", "s3cret")
//	cli, err := forgeclient.NewAnonymous("localhost", 3000, false)
//
// For full control (explicit Authorizer, transport factory, logging, retry
// tuning), build a forge.Config and call New.
package forgeclient
