package forge

import "net/http"

// Authorizer injects credentials into an outgoing request. PrepareRequest is
// called exactly once per request, before any default header is applied, and
// headers it sets are never overwritten by the transport's defaults.
type Authorizer interface {
	PrepareRequest(req *http.Request)
}

// NoneAuthorizer sends requests without authentication.
type NoneAuthorizer struct{}

// PrepareRequest implements Authorizer as a no-op.
func (NoneAuthorizer) PrepareRequest(*http.Request) {}

// BasicAuthorizer authenticates with a standard HTTP Basic header computed
// from the base64 encoding of "username:password".
type BasicAuthorizer struct {
	Username string
	Password string
}

// PrepareRequest implements Authorizer.
func (a *BasicAuthorizer) PrepareRequest(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// TokenAuthorizer authenticates with an API token. The forge expects the
// "token" scheme rather than "Bearer".
type TokenAuthorizer struct {
	Token string
}

// PrepareRequest implements Authorizer.
func (a *TokenAuthorizer) PrepareRequest(req *http.Request) {
	req.Header.Set("Authorization", "token "+a.Token)
}
