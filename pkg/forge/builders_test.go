package forge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/forgekit-io/forgekit/pkg/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingClient is a forge.Client that records endpoint calls instead of
// touching the network.
type recordingClient struct {
	users forge.UsersClient
	repos forge.RepositoriesClient
	tag   interface{}
}

func (c *recordingClient) Users() forge.UsersClient               { return c.users }
func (c *recordingClient) Repositories() forge.RepositoriesClient { return c.repos }
func (c *recordingClient) BaseURL() string                        { return "http://localhost:3000/api/v1/" }
func (c *recordingClient) Tag() interface{}                       { return c.tag }
func (c *recordingClient) SetTag(tag interface{})                 { c.tag = tag }

func (c *recordingClient) GetVersion(ctx context.Context) (*forge.Version, error) {
	return &forge.Version{Version: "0.13.0"}, nil
}

type recordingUsers struct {
	created []*forge.UserCreateRequest
	updated []*forge.UserUpdateRequest
	edited  []string
}

func (u *recordingUsers) Get(ctx context.Context, username string) (*forge.User, error) {
	return &forge.User{Username: username}, nil
}

func (u *recordingUsers) GetCurrent(ctx context.Context) (*forge.User, error) {
	return &forge.User{Username: "current"}, nil
}

func (u *recordingUsers) Create(ctx context.Context, request *forge.UserCreateRequest) (*forge.User, error) {
	u.created = append(u.created, request)

	return &forge.User{Username: request.Username, Email: request.Email}, nil
}

func (u *recordingUsers) Update(ctx context.Context, username string, request *forge.UserUpdateRequest) (*forge.User, error) {
	u.updated = append(u.updated, request)
	u.edited = append(u.edited, username)

	return &forge.User{Username: username, Email: request.Email}, nil
}

func (u *recordingUsers) Delete(ctx context.Context, username string) error {
	return nil
}

func (u *recordingUsers) New() *forge.UserBuilder { return nil }

func (u *recordingUsers) Edit(username string) *forge.UserUpdateBuilder { return nil }

type repoCreateCall struct {
	owner   string
	request *forge.RepositoryCreateRequest
}

type recordingRepos struct {
	created []repoCreateCall
}

func (r *recordingRepos) Get(ctx context.Context, owner, name string) (*forge.Repository, error) {
	return &forge.Repository{Name: name}, nil
}

func (r *recordingRepos) List(ctx context.Context) ([]forge.Repository, error) {
	return nil, nil
}

func (r *recordingRepos) ListForUser(ctx context.Context, username string) ([]forge.Repository, error) {
	return nil, nil
}

func (r *recordingRepos) Create(ctx context.Context, request *forge.RepositoryCreateRequest) (*forge.Repository, error) {
	r.created = append(r.created, repoCreateCall{request: request})

	return &forge.Repository{Name: request.Name}, nil
}

func (r *recordingRepos) CreateForUser(ctx context.Context, username string, request *forge.RepositoryCreateRequest) (*forge.Repository, error) {
	r.created = append(r.created, repoCreateCall{owner: username, request: request})

	return &forge.Repository{Name: request.Name}, nil
}

func (r *recordingRepos) Delete(ctx context.Context, owner, name string) error {
	return nil
}

func (r *recordingRepos) New() *forge.RepositoryBuilder { return nil }

func (r *recordingRepos) NewForUser(username string) *forge.RepositoryBuilder { return nil }

func newRecordingClient() (*recordingClient, *recordingUsers, *recordingRepos) {
	users := &recordingUsers{}
	repos := &recordingRepos{}

	return &recordingClient{users: users, repos: repos}, users, repos
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestUserBuilder(t *testing.T) {
	t.Parallel()

	t.Run("sends the accumulated fields", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		user, err := forge.NewUserBuilder(client).
			Username("newbie").
			Email("newbie@example.com").
			Password("hunter2").
			FullName("New B.").
			LoginName("newbie-ldap").
			SendNotify().
			Create(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "newbie", user.Username)

		require.Len(t, users.created, 1)
		request := users.created[0]
		assert.Equal(t, "newbie", request.Username)
		assert.Equal(t, "newbie@example.com", request.Email)
		assert.Equal(t, "hunter2", request.Password)
		assert.Equal(t, "New B.", request.FullName)
		assert.Equal(t, "newbie-ldap", request.LoginName)
		assert.True(t, request.SendNotify)
	})

	t.Run("later setter calls overwrite earlier ones", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		_, err := forge.NewUserBuilder(client).
			Username("first").
			Username("second").
			Email("x@example.com").
			Password("pw").
			Create(context.Background())
		require.NoError(t, err)

		require.Len(t, users.created, 1)
		assert.Equal(t, "second", users.created[0].Username)
	})

	t.Run("missing required fields are named in order", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		user, err := forge.NewUserBuilder(client).
			Email("x@example.com").
			Create(context.Background())
		require.Error(t, err)
		assert.Nil(t, user)

		validationErr := &forge.ValidationError{}
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{"username", "password"}, validationErr.Fields)

		// Validation failures never reach the endpoint.
		assert.Empty(t, users.created)
	})

	t.Run("a spent builder refuses further use", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		builder := forge.NewUserBuilder(client).
			Username("newbie").
			Email("x@example.com").
			Password("pw")

		_, err := builder.Create(context.Background())
		require.NoError(t, err)

		// Setters after the terminal call are inert, and the terminal call
		// itself fails without sending again.
		builder.Username("changed")

		user, err := builder.Create(context.Background())
		require.ErrorIs(t, err, forge.ErrBuilderAlreadySent)
		assert.Nil(t, user)

		require.Len(t, users.created, 1)
		assert.Equal(t, "newbie", users.created[0].Username)
	})

	t.Run("validation failure does not spend the builder", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		builder := forge.NewUserBuilder(client).Username("newbie")

		_, err := builder.Create(context.Background())
		require.Error(t, err)

		_, err = builder.
			Email("x@example.com").
			Password("pw").
			Create(context.Background())
		require.NoError(t, err)
		assert.Len(t, users.created, 1)
	})

	t.Run("nil client", func(t *testing.T) {
		t.Parallel()

		user, err := forge.NewUserBuilder(nil).
			Username("newbie").
			Email("x@example.com").
			Password("pw").
			Create(context.Background())
		require.ErrorIs(t, err, forge.ErrNoClient)
		assert.Nil(t, user)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestUserUpdateBuilder(t *testing.T) {
	t.Parallel()

	t.Run("sends the accumulated fields", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		user, err := forge.NewUserUpdateBuilder(client, "octocat").
			Email("new@example.com").
			FullName("New Name").
			Website("https://example.com").
			Location("Berlin").
			Active(false).
			MakeAdmin().
			MaxRepoCreation(10).
			Save(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "octocat", user.Username)

		require.Len(t, users.updated, 1)
		assert.Equal(t, []string{"octocat"}, users.edited)

		request := users.updated[0]
		assert.Equal(t, "new@example.com", request.Email)
		require.NotNil(t, request.FullName)
		assert.Equal(t, "New Name", *request.FullName)
		require.NotNil(t, request.Active)
		assert.False(t, *request.Active)
		require.NotNil(t, request.Admin)
		assert.True(t, *request.Admin)
		require.NotNil(t, request.MaxRepoCreation)
		assert.Equal(t, 10, *request.MaxRepoCreation)
	})

	t.Run("unset optional fields stay nil", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		_, err := forge.NewUserUpdateBuilder(client, "octocat").
			Email("new@example.com").
			Save(context.Background())
		require.NoError(t, err)

		require.Len(t, users.updated, 1)
		request := users.updated[0]
		assert.Nil(t, request.FullName)
		assert.Nil(t, request.Password)
		assert.Nil(t, request.Active)
		assert.Nil(t, request.Admin)
	})

	t.Run("email is required", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		user, err := forge.NewUserUpdateBuilder(client, "octocat").
			FullName("New Name").
			Save(context.Background())
		require.Error(t, err)
		assert.Nil(t, user)

		validationErr := &forge.ValidationError{}
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{"email"}, validationErr.Fields)
		assert.Empty(t, users.updated)
	})

	t.Run("a spent builder refuses further use", func(t *testing.T) {
		t.Parallel()

		client, users, _ := newRecordingClient()

		builder := forge.NewUserUpdateBuilder(client, "octocat").Email("new@example.com")

		_, err := builder.Save(context.Background())
		require.NoError(t, err)

		user, err := builder.Save(context.Background())
		require.ErrorIs(t, err, forge.ErrBuilderAlreadySent)
		assert.Nil(t, user)
		assert.Len(t, users.updated, 1)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRepositoryBuilder(t *testing.T) {
	t.Parallel()

	t.Run("creates under the authenticated user", func(t *testing.T) {
		t.Parallel()

		client, _, repos := newRecordingClient()

		repo, err := forge.NewRepositoryBuilder(client).
			Name("widgets").
			Description("assorted widgets").
			MakePrivate().
			AutoInit(true).
			Gitignores("Go").
			License("MIT").
			Readme("Default").
			Create(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "widgets", repo.Name)

		require.Len(t, repos.created, 1)
		call := repos.created[0]
		assert.Empty(t, call.owner)
		assert.Equal(t, "widgets", call.request.Name)
		assert.Equal(t, "assorted widgets", call.request.Description)
		assert.True(t, call.request.Private)
		assert.True(t, call.request.AutoInit)
		assert.Equal(t, "Go", call.request.Gitignores)
		assert.Equal(t, "MIT", call.request.License)
		assert.Equal(t, "Default", call.request.Readme)
	})

	t.Run("creates under a named owner", func(t *testing.T) {
		t.Parallel()

		client, _, repos := newRecordingClient()

		_, err := forge.NewRepositoryBuilderForUser(client, "alice").
			Name("widgets").
			Create(context.Background())
		require.NoError(t, err)

		require.Len(t, repos.created, 1)
		assert.Equal(t, "alice", repos.created[0].owner)
	})

	t.Run("name is required", func(t *testing.T) {
		t.Parallel()

		client, _, repos := newRecordingClient()

		repo, err := forge.NewRepositoryBuilder(client).
			Description("nameless").
			Create(context.Background())
		require.Error(t, err)
		assert.Nil(t, repo)

		validationErr := &forge.ValidationError{}
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{"name"}, validationErr.Fields)
		assert.Empty(t, repos.created)
	})

	t.Run("a spent builder refuses further use", func(t *testing.T) {
		t.Parallel()

		client, _, repos := newRecordingClient()

		builder := forge.NewRepositoryBuilder(client).Name("widgets")

		_, err := builder.Create(context.Background())
		require.NoError(t, err)

		repo, err := builder.Create(context.Background())
		require.ErrorIs(t, err, forge.ErrBuilderAlreadySent)
		assert.Nil(t, repo)
		assert.Len(t, repos.created, 1)
	})
}
