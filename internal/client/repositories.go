package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/forgekit-io/forgekit/pkg/forge"
)

// RepositoriesClient implements forge.RepositoriesClient.
type RepositoriesClient struct {
	client *Client
}

// NewRepositoriesClient creates a new repositories client bound to its parent.
func NewRepositoriesClient(client *Client) *RepositoriesClient {
	return &RepositoriesClient{client: client}
}

// Get implements forge.RepositoriesClient.Get.
func (c *RepositoriesClient) Get(ctx context.Context, owner, name string) (*forge.Repository, error) {
	path := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting repository: %w", err)
	}

	return c.parseRepository(resp.Body)
}

// List implements forge.RepositoriesClient.List.
func (c *RepositoriesClient) List(ctx context.Context) ([]forge.Repository, error) {
	resp, err := c.client.httpClient.Get(ctx, "user/repos", nil)
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	return c.parseRepositoryList(resp.Body)
}

// ListForUser implements forge.RepositoriesClient.ListForUser.
func (c *RepositoriesClient) ListForUser(ctx context.Context, username string) ([]forge.Repository, error) {
	path := fmt.Sprintf("users/%s/repos", url.PathEscape(username))

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for user: %w", err)
	}

	return c.parseRepositoryList(resp.Body)
}

// Create implements forge.RepositoriesClient.Create.
func (c *RepositoriesClient) Create(ctx context.Context, request *forge.RepositoryCreateRequest) (*forge.Repository, error) {
	resp, err := c.client.httpClient.Post(ctx, "user/repos", request)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	return c.parseRepository(resp.Body)
}

// CreateForUser implements forge.RepositoriesClient.CreateForUser.
func (c *RepositoriesClient) CreateForUser(ctx context.Context, username string, request *forge.RepositoryCreateRequest) (*forge.Repository, error) {
	path := fmt.Sprintf("admin/users/%s/repos", url.PathEscape(username))

	resp, err := c.client.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating repository for user: %w", err)
	}

	return c.parseRepository(resp.Body)
}

// Delete implements forge.RepositoriesClient.Delete.
func (c *RepositoriesClient) Delete(ctx context.Context, owner, name string) error {
	path := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))

	_, err := c.client.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}

	return nil
}

// New implements forge.RepositoriesClient.New.
func (c *RepositoriesClient) New() *forge.RepositoryBuilder {
	return forge.NewRepositoryBuilder(c.client)
}

// NewForUser implements forge.RepositoriesClient.NewForUser.
func (c *RepositoriesClient) NewForUser(username string) *forge.RepositoryBuilder {
	return forge.NewRepositoryBuilderForUser(c.client, username)
}

func (c *RepositoriesClient) parseRepository(body []byte) (*forge.Repository, error) {
	var repo forge.Repository

	err := json.Unmarshal(body, &repo)
	if err != nil {
		return nil, fmt.Errorf("parsing repository response: %w", err)
	}

	c.stamp(&repo)

	return &repo, nil
}

func (c *RepositoriesClient) parseRepositoryList(body []byte) ([]forge.Repository, error) {
	var repos []forge.Repository

	err := json.Unmarshal(body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repository list response: %w", err)
	}

	for i := range repos {
		c.stamp(&repos[i])
	}

	return repos, nil
}

// stamp sets the Client back-reference on a repository and its owner.
func (c *RepositoriesClient) stamp(repo *forge.Repository) {
	repo.SetClient(c.client)

	if repo.Owner != nil {
		repo.Owner.SetClient(c.client)
	}
}
