package forge

import "context"

// Resource is the base embedded in every domain object returned by the API.
// It carries a back-reference to the Client that produced the object so
// follow-up operations can be chained without re-supplying credentials. The
// reference is non-owning: the object's lifetime does not control the
// Client's.
type Resource struct {
	client Client
}

// Client returns the Client that produced this object, or nil if the object
// was not obtained through one.
func (r *Resource) Client() Client {
	return r.client
}

// SetClient stamps the producing Client. Endpoint implementations call this
// immediately after deserialization.
func (r *Resource) SetClient(client Client) {
	r.client = client
}

// Version represents the server version response.
type Version struct {
	Resource

	Version string `json:"version" yaml:"version"`
}

// Permission describes the caller's access level on a repository.
type Permission struct {
	Admin bool `json:"admin" yaml:"admin"`
	Push  bool `json:"push"  yaml:"push"`
	Pull  bool `json:"pull"  yaml:"pull"`
}

// User represents a user account on the forge.
type User struct {
	Resource

	ID        int64  `json:"id"         yaml:"id"`
	Username  string `json:"username"   yaml:"username"`
	FullName  string `json:"full_name"  yaml:"full_name"`
	Email     string `json:"email"      yaml:"email"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// NewRepository returns a repository builder that creates the repository
// under this user's account, through the Client that produced the user.
func (u *User) NewRepository() *RepositoryBuilder {
	return NewRepositoryBuilderForUser(u.client, u.Username)
}

// Update returns an update builder pre-bound to this user.
func (u *User) Update() *UserUpdateBuilder {
	return NewUserUpdateBuilder(u.client, u.Username)
}

// Delete removes this user's account.
func (u *User) Delete(ctx context.Context) error {
	if u.client == nil {
		return ErrNoClient
	}

	return u.client.Users().Delete(ctx, u.Username)
}

// Repository represents a repository on the forge.
type Repository struct {
	Resource

	ID            int64       `json:"id"             yaml:"id"`
	Owner         *User       `json:"owner"          yaml:"owner"`
	Name          string      `json:"name"           yaml:"name"`
	FullName      string      `json:"full_name"      yaml:"full_name"`
	Description   string      `json:"description"    yaml:"description"`
	Private       bool        `json:"private"        yaml:"private"`
	Fork          bool        `json:"fork"           yaml:"fork"`
	HTMLURL       string      `json:"html_url"       yaml:"html_url"`
	CloneURL      string      `json:"clone_url"      yaml:"clone_url"`
	SSHURL        string      `json:"ssh_url"        yaml:"ssh_url"`
	DefaultBranch string      `json:"default_branch" yaml:"default_branch"`
	Permissions   *Permission `json:"permissions"    yaml:"permissions"`
}

// OwnerName returns the owner's username, or "" when the owner is unknown.
func (r *Repository) OwnerName() string {
	if r.Owner == nil {
		return ""
	}

	return r.Owner.Username
}

// Delete removes this repository.
func (r *Repository) Delete(ctx context.Context) error {
	if r.client == nil {
		return ErrNoClient
	}

	return r.client.Repositories().Delete(ctx, r.OwnerName(), r.Name)
}

// UserCreateRequest is the payload for creating a user account.
type UserCreateRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	LoginName  string `json:"login_name,omitempty"`
	SendNotify bool   `json:"send_notify,omitempty"`
}

// UserUpdateRequest is the payload for updating a user account. Optional
// fields are pointers so unset fields are omitted from the wire format.
type UserUpdateRequest struct {
	Email           string  `json:"email"`
	FullName        *string `json:"full_name,omitempty"`
	Password        *string `json:"password,omitempty"`
	Website         *string `json:"website,omitempty"`
	Location        *string `json:"location,omitempty"`
	Active          *bool   `json:"active,omitempty"`
	Admin           *bool   `json:"admin,omitempty"`
	MaxRepoCreation *int    `json:"max_repo_creation,omitempty"`
}

// RepositoryCreateRequest is the payload for creating a repository.
type RepositoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
	AutoInit    bool   `json:"auto_init,omitempty"`
	Gitignores  string `json:"gitignores,omitempty"`
	License     string `json:"license,omitempty"`
	Readme      string `json:"readme,omitempty"`
}
