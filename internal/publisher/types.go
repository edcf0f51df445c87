package publisher

import (
	"context"
	"errors"

	"github.com/ringstone-ai/tms-translator/internal/catalog"
	"github.com/ringstone-ai/tms-translator/internal/report"
)

const (
	// WorkingBranch is the fixed branch translated files are staged on.
	WorkingBranch = "translations-auto"

	// BaseBranch is where the source catalog lives and what pull requests target.
	BaseBranch = "main"

	// CatalogPath is the source catalog location in the repository.
	CatalogPath = "locales/en.json"
)

// ErrFileNotFound reports that a path does not exist on the requested ref.
var ErrFileNotFound = errors.New("file not found")

// ErrBranchExists reports that a branch ref already exists.
var ErrBranchExists = errors.New("branch already exists")

// RepoHost is the repository-hosting surface the publisher needs.
type RepoHost interface {
	// BranchHead returns the tip commit SHA of a branch.
	BranchHead(ctx context.Context, branch string) (string, error)

	// CreateBranch creates a branch ref pointing at the given commit.
	// Returns ErrBranchExists when the ref is already present.
	CreateBranch(ctx context.Context, branch string, sha string) error

	// GetFile returns a file's content and revision SHA on a ref.
	// Returns ErrFileNotFound when the path does not exist there.
	GetFile(ctx context.Context, path string, ref string) (content []byte, sha string, err error)

	// CreateFile creates a new file on a branch.
	CreateFile(ctx context.Context, path string, branch string, message string, content []byte) error

	// UpdateFile replaces a file on a branch; sha must be the file's
	// current revision on that branch.
	UpdateFile(ctx context.Context, path string, branch string, message string, content []byte, sha string) error

	// HasOpenPull reports whether an open pull request from head into base
	// exists. head uses the "owner:branch" filter form.
	HasOpenPull(ctx context.Context, head string, base string) (bool, error)

	// CreatePull opens a pull request from a branch into base.
	CreatePull(ctx context.Context, title string, body string, head string, base string) error
}

// CatalogTranslator produces the translated mapping for one target language.
type CatalogTranslator interface {
	Translate(ctx context.Context, cat *catalog.Catalog, targetLang string) (map[string]string, error)
}

// ReportMailer delivers the end-of-run report.
type ReportMailer interface {
	Send(runLog *report.Log, model string) error
}
