package publisher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/ringstone-ai/tms-translator/internal/config"
)

// GitHub adapts the GitHub REST API to the RepoHost interface.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	author *github.CommitAuthor
}

// NewGitHub creates a RepoHost for the configured repository, authenticating
// every request with the personal access token.
func NewGitHub(ctx context.Context, cfg config.GitHubConfig) *GitHub {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := oauth2.NewClient(ctx, ts)

	return &GitHub{
		client: github.NewClient(httpClient),
		owner:  cfg.Owner(),
		repo:   cfg.Name(),
		author: &github.CommitAuthor{
			Name:  github.String(cfg.CommitName),
			Email: github.String(cfg.CommitEmail),
		},
	}
}

func (g *GitHub) BranchHead(ctx context.Context, branch string) (string, error) {
	ref, _, err := g.client.Git.GetRef(ctx, g.owner, g.repo, "refs/heads/"+branch)
	if err != nil {
		return "", fmt.Errorf("failed to get ref for branch %s: %w", branch, err)
	}
	return ref.GetObject().GetSHA(), nil
}

func (g *GitHub) CreateBranch(ctx context.Context, branch string, sha string) error {
	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.String(sha)},
	}

	_, resp, err := g.client.Git.CreateRef(ctx, g.owner, g.repo, ref)
	if err != nil {
		// The ref API answers 422 when the branch is already there.
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return ErrBranchExists
		}
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

func (g *GitHub) GetFile(ctx context.Context, path string, ref string) ([]byte, string, error) {
	file, _, resp, err := g.client.Repositories.GetContents(ctx, g.owner, g.repo, path,
		&github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("failed to get contents of %s at %s: %w", path, ref, err)
	}
	if file == nil {
		return nil, "", fmt.Errorf("%s at %s is a directory, not a file", path, ref)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode contents of %s: %w", path, err)
	}
	return []byte(content), file.GetSHA(), nil
}

func (g *GitHub) CreateFile(ctx context.Context, path string, branch string, message string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(branch),
		Author:  g.author,
	}

	if _, _, err := g.client.Repositories.CreateFile(ctx, g.owner, g.repo, path, opts); err != nil {
		return fmt.Errorf("failed to create %s on %s: %w", path, branch, err)
	}
	return nil
}

func (g *GitHub) UpdateFile(ctx context.Context, path string, branch string, message string, content []byte, sha string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(branch),
		SHA:     github.String(sha),
		Author:  g.author,
	}

	if _, _, err := g.client.Repositories.UpdateFile(ctx, g.owner, g.repo, path, opts); err != nil {
		return fmt.Errorf("failed to update %s on %s: %w", path, branch, err)
	}
	return nil
}

func (g *GitHub) HasOpenPull(ctx context.Context, head string, base string) (bool, error) {
	pulls, _, err := g.client.PullRequests.List(ctx, g.owner, g.repo, &github.PullRequestListOptions{
		State: "open",
		Head:  head,
		Base:  base,
	})
	if err != nil {
		return false, fmt.Errorf("failed to list pull requests: %w", err)
	}
	return len(pulls) > 0, nil
}

func (g *GitHub) CreatePull(ctx context.Context, title string, body string, head string, base string) error {
	pull := &github.NewPullRequest{
		Title: github.String(title),
		Body:  github.String(body),
		Head:  github.String(head),
		Base:  github.String(base),
	}

	if _, _, err := g.client.PullRequests.Create(ctx, g.owner, g.repo, pull); err != nil {
		return fmt.Errorf("failed to create pull request: %w", err)
	}
	return nil
}
