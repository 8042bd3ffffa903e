package forge

import "context"

// Builders accumulate optional and required fields through chained setters
// and issue exactly one request from their terminal method. Setters never
// fail: they may be called in any order, and calling the same setter twice
// overwrites the prior value. Required fields are checked only at the
// terminal call; missing ones yield a *ValidationError naming them, with no
// request sent. After the terminal call runs the builder is spent, and any
// further terminal call fails with ErrBuilderAlreadySent. Builders are meant
// for single-goroutine, single-operation use.

// UserBuilder accumulates fields for creating a user account.
// Required: username, email, password.
type UserBuilder struct {
	client Client
	req    UserCreateRequest
	set    map[string]bool
	sent   bool
}

// NewUserBuilder returns a user create builder bound to client.
func NewUserBuilder(client Client) *UserBuilder {
	return &UserBuilder{client: client, set: make(map[string]bool)}
}

// Username sets the account name.
func (b *UserBuilder) Username(username string) *UserBuilder {
	if !b.sent {
		b.req.Username = username
		b.set["username"] = true
	}

	return b
}

// Email sets the account email address.
func (b *UserBuilder) Email(email string) *UserBuilder {
	if !b.sent {
		b.req.Email = email
		b.set["email"] = true
	}

	return b
}

// Password sets the initial password.
func (b *UserBuilder) Password(password string) *UserBuilder {
	if !b.sent {
		b.req.Password = password
		b.set["password"] = true
	}

	return b
}

// FullName sets the display name.
func (b *UserBuilder) FullName(fullName string) *UserBuilder {
	if !b.sent {
		b.req.FullName = fullName
	}

	return b
}

// LoginName sets the authentication-source login name.
func (b *UserBuilder) LoginName(loginName string) *UserBuilder {
	if !b.sent {
		b.req.LoginName = loginName
	}

	return b
}

// SendNotify asks the server to mail the new user about the account.
func (b *UserBuilder) SendNotify() *UserBuilder {
	if !b.sent {
		b.req.SendNotify = true
	}

	return b
}

// Create validates the required fields and issues the create request.
func (b *UserBuilder) Create(ctx context.Context) (*User, error) {
	if b.sent {
		return nil, ErrBuilderAlreadySent
	}

	if b.client == nil {
		return nil, ErrNoClient
	}

	if missing := missingFields(b.set, "username", "email", "password"); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	b.sent = true

	return b.client.Users().Create(ctx, &b.req)
}

// UserUpdateBuilder accumulates fields for updating a user account.
// Required: email.
type UserUpdateBuilder struct {
	client   Client
	username string
	req      UserUpdateRequest
	set      map[string]bool
	sent     bool
}

// NewUserUpdateBuilder returns an update builder bound to client for the
// named user.
func NewUserUpdateBuilder(client Client, username string) *UserUpdateBuilder {
	return &UserUpdateBuilder{client: client, username: username, set: make(map[string]bool)}
}

// Email sets the account email address.
func (b *UserUpdateBuilder) Email(email string) *UserUpdateBuilder {
	if !b.sent {
		b.req.Email = email
		b.set["email"] = true
	}

	return b
}

// FullName sets the display name.
func (b *UserUpdateBuilder) FullName(fullName string) *UserUpdateBuilder {
	if !b.sent {
		b.req.FullName = &fullName
	}

	return b
}

// Password replaces the account password.
func (b *UserUpdateBuilder) Password(password string) *UserUpdateBuilder {
	if !b.sent {
		b.req.Password = &password
	}

	return b
}

// Website sets the profile website.
func (b *UserUpdateBuilder) Website(website string) *UserUpdateBuilder {
	if !b.sent {
		b.req.Website = &website
	}

	return b
}

// Location sets the profile location.
func (b *UserUpdateBuilder) Location(location string) *UserUpdateBuilder {
	if !b.sent {
		b.req.Location = &location
	}

	return b
}

// Active toggles whether the account is active.
func (b *UserUpdateBuilder) Active(active bool) *UserUpdateBuilder {
	if !b.sent {
		b.req.Active = &active
	}

	return b
}

// MakeAdmin grants the user site administrator rights.
func (b *UserUpdateBuilder) MakeAdmin() *UserUpdateBuilder {
	if !b.sent {
		admin := true
		b.req.Admin = &admin
	}

	return b
}

// MaxRepoCreation caps how many repositories the user may create.
func (b *UserUpdateBuilder) MaxRepoCreation(limit int) *UserUpdateBuilder {
	if !b.sent {
		b.req.MaxRepoCreation = &limit
	}

	return b
}

// Save validates the required fields and issues the update request.
func (b *UserUpdateBuilder) Save(ctx context.Context) (*User, error) {
	if b.sent {
		return nil, ErrBuilderAlreadySent
	}

	if b.client == nil {
		return nil, ErrNoClient
	}

	if missing := missingFields(b.set, "email"); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	b.sent = true

	return b.client.Users().Update(ctx, b.username, &b.req)
}

// RepositoryBuilder accumulates fields for creating a repository, either
// under the authenticated user or under an explicit owner.
// Required: name.
type RepositoryBuilder struct {
	client Client
	owner  string
	req    RepositoryCreateRequest
	set    map[string]bool
	sent   bool
}

// NewRepositoryBuilder returns a repository create builder bound to client,
// owned by the authenticated user.
func NewRepositoryBuilder(client Client) *RepositoryBuilder {
	return &RepositoryBuilder{client: client, set: make(map[string]bool)}
}

// NewRepositoryBuilderForUser returns a repository create builder bound to
// client, owned by the named user.
func NewRepositoryBuilderForUser(client Client, owner string) *RepositoryBuilder {
	return &RepositoryBuilder{client: client, owner: owner, set: make(map[string]bool)}
}

// Name sets the repository name.
func (b *RepositoryBuilder) Name(name string) *RepositoryBuilder {
	if !b.sent {
		b.req.Name = name
		b.set["name"] = true
	}

	return b
}

// Description sets the repository description.
func (b *RepositoryBuilder) Description(description string) *RepositoryBuilder {
	if !b.sent {
		b.req.Description = description
	}

	return b
}

// Private sets the repository visibility.
func (b *RepositoryBuilder) Private(private bool) *RepositoryBuilder {
	if !b.sent {
		b.req.Private = private
	}

	return b
}

// MakePrivate marks the repository private. Shorthand for Private(true).
func (b *RepositoryBuilder) MakePrivate() *RepositoryBuilder {
	return b.Private(true)
}

// AutoInit toggles creation of an initial commit.
func (b *RepositoryBuilder) AutoInit(autoInit bool) *RepositoryBuilder {
	if !b.sent {
		b.req.AutoInit = autoInit
	}

	return b
}

// Gitignores selects gitignore templates for the initial commit.
func (b *RepositoryBuilder) Gitignores(gitignores string) *RepositoryBuilder {
	if !b.sent {
		b.req.Gitignores = gitignores
	}

	return b
}

// License selects a license template for the initial commit.
func (b *RepositoryBuilder) License(license string) *RepositoryBuilder {
	if !b.sent {
		b.req.License = license
	}

	return b
}

// Readme selects a readme template for the initial commit.
func (b *RepositoryBuilder) Readme(readme string) *RepositoryBuilder {
	if !b.sent {
		b.req.Readme = readme
	}

	return b
}

// Create validates the required fields and issues the create request.
func (b *RepositoryBuilder) Create(ctx context.Context) (*Repository, error) {
	if b.sent {
		return nil, ErrBuilderAlreadySent
	}

	if b.client == nil {
		return nil, ErrNoClient
	}

	if missing := missingFields(b.set, "name"); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	b.sent = true

	if b.owner != "" {
		return b.client.Repositories().CreateForUser(ctx, b.owner, &b.req)
	}

	return b.client.Repositories().Create(ctx, &b.req)
}

// missingFields returns the required names absent from set, in declaration
// order.
func missingFields(set map[string]bool, required ...string) []string {
	var missing []string

	for _, name := range required {
		if !set[name] {
			missing = append(missing, name)
		}
	}

	return missing
}
