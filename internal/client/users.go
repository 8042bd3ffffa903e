package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/forgekit-io/forgekit/pkg/forge"
)

// UsersClient implements forge.UsersClient.
type UsersClient struct {
	client *Client
}

// NewUsersClient creates a new users client bound to its parent.
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// Get implements forge.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, username string) (*forge.User, error) {
	path := fmt.Sprintf("users/%s", url.PathEscape(username))

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return c.parseUser(resp.Body)
}

// GetCurrent implements forge.UsersClient.GetCurrent.
func (c *UsersClient) GetCurrent(ctx context.Context) (*forge.User, error) {
	resp, err := c.client.httpClient.Get(ctx, "user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return c.parseUser(resp.Body)
}

// Create implements forge.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *forge.UserCreateRequest) (*forge.User, error) {
	resp, err := c.client.httpClient.Post(ctx, "admin/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return c.parseUser(resp.Body)
}

// Update implements forge.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, username string, request *forge.UserUpdateRequest) (*forge.User, error) {
	path := fmt.Sprintf("admin/users/%s", url.PathEscape(username))

	resp, err := c.client.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return c.parseUser(resp.Body)
}

// Delete implements forge.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, username string) error {
	path := fmt.Sprintf("admin/users/%s", url.PathEscape(username))

	_, err := c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// New implements forge.UsersClient.New.
func (c *UsersClient) New() *forge.UserBuilder {
	return forge.NewUserBuilder(c.client)
}

// Edit implements forge.UsersClient.Edit.
func (c *UsersClient) Edit(username string) *forge.UserUpdateBuilder {
	return forge.NewUserUpdateBuilder(c.client, username)
}

func (c *UsersClient) parseUser(body []byte) (*forge.User, error) {
	var user forge.User

	err := json.Unmarshal(body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	user.SetClient(c.client)

	return &user, nil
}
