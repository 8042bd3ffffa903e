package forge

import (
	"context"
	"net/http"
	"time"
)

// Client is the entry point to the forge API. Implementations resolve the
// base URL once at construction and create a fresh transport handle per
// request, so concurrent calls on one Client need no locking.
type Client interface {
	// Users returns the user endpoint bound to this client.
	Users() UsersClient
	// Repositories returns the repository endpoint bound to this client.
	Repositories() RepositoriesClient
	// GetVersion fetches the server version.
	GetVersion(ctx context.Context) (*Version, error)
	// BaseURL returns the resolved API root, always of the form
	// "scheme://host:port/api/v1/".
	BaseURL() string
	// Tag returns the opaque caller-attached value, if any.
	Tag() interface{}
	// SetTag attaches an opaque value to the client. The library never
	// reads it.
	SetTag(tag interface{})
}

// UsersClient groups the user operations of one Client.
type UsersClient interface {
	// Get fetches a user by username.
	Get(ctx context.Context, username string) (*User, error)
	// GetCurrent fetches the authenticated user.
	GetCurrent(ctx context.Context) (*User, error)
	// Create registers a new user account. Requires admin rights.
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	// Update modifies an existing user account. Requires admin rights.
	Update(ctx context.Context, username string, request *UserUpdateRequest) (*User, error)
	// Delete removes a user account. Requires admin rights.
	Delete(ctx context.Context, username string) error
	// New returns a builder for creating a user.
	New() *UserBuilder
	// Edit returns a builder for updating the named user.
	Edit(username string) *UserUpdateBuilder
}

// RepositoriesClient groups the repository operations of one Client.
type RepositoriesClient interface {
	// Get fetches a repository by owner and name.
	Get(ctx context.Context, owner, name string) (*Repository, error)
	// List fetches the repositories accessible to the authenticated user.
	List(ctx context.Context) ([]Repository, error)
	// ListForUser fetches the named user's repositories.
	ListForUser(ctx context.Context, username string) ([]Repository, error)
	// Create creates a repository owned by the authenticated user.
	Create(ctx context.Context, request *RepositoryCreateRequest) (*Repository, error)
	// CreateForUser creates a repository owned by the named user. Requires
	// admin rights.
	CreateForUser(ctx context.Context, username string, request *RepositoryCreateRequest) (*Repository, error)
	// Delete removes a repository.
	Delete(ctx context.Context, owner, name string) error
	// New returns a builder for creating a repository owned by the
	// authenticated user.
	New() *RepositoryBuilder
	// NewForUser returns a builder for creating a repository owned by the
	// named user.
	NewForUser(username string) *RepositoryBuilder
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a forge.Client.
//
// # Authentication precedence
//
// An explicit Authorizer always wins. Otherwise a Token yields a token
// authorizer, Username/Password yield a basic authorizer, and with no
// credentials requests are sent unauthenticated.
//
// # Transport
//
// Every request acquires its own HTTP client, by default a plain one with a
// request timeout. HTTPClientFactory replaces that acquisition for proxying,
// TLS customization, or mocking. The client performs no retries unless
// RetryMax is set.
type Config struct {
	// Host is the forge host. Defaults to "localhost" when blank.
	Host string
	// Port is the forge port. Defaults to 3000 when zero; values outside
	// [1, 65535] fail construction.
	Port int
	// Secure selects https over http.
	Secure bool

	// Authorizer is the credential strategy applied to every request.
	Authorizer Authorizer
	// Username and Password build an implicit BasicAuthorizer when no
	// explicit Authorizer is given.
	Username string
	Password string
	// Token builds an implicit TokenAuthorizer when no explicit Authorizer
	// is given. Takes precedence over Username/Password.
	Token string

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger
	// HTTPClientFactory produces the low-level HTTP client used for one
	// exchange. Nil selects the default.
	HTTPClientFactory func() *http.Client

	// RetryMax enables retries on transient failures when > 0. Zero keeps
	// the default single-attempt behavior.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration
}
