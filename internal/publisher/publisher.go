// Package publisher drives one translation run end to end: ensure the
// working branch, load the source catalog, translate and publish one locale
// file per target language, ensure the pull request, and mail the report.
package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/ringstone-ai/tms-translator/internal/catalog"
	"github.com/ringstone-ai/tms-translator/internal/report"
	"github.com/ringstone-ai/tms-translator/pkg/log"
)

const (
	pullTitle = "Automated translations via RingStone TMS"
	pullBody  = "This PR was auto-generated using LLM-based translation."
)

// Publisher orchestrates a single run. State (the run log) lives for one
// Run call chain only; nothing is persisted between runs.
type Publisher struct {
	host       RepoHost
	translator CatalogTranslator
	mailer     ReportMailer
	runLog     *report.Log
	model      string
	languages  []string
	owner      string
}

// New creates a Publisher. owner is the repository owner used to filter
// pull requests by head ("owner:branch"). languages is the ordered target
// language set for the run.
func New(
	host RepoHost,
	translator CatalogTranslator,
	mailer ReportMailer,
	runLog *report.Log,
	model string,
	languages []string,
	owner string,
) *Publisher {
	return &Publisher{
		host:       host,
		translator: translator,
		mailer:     mailer,
		runLog:     runLog,
		model:      model,
		languages:  languages,
		owner:      owner,
	}
}

// Run executes one publish cycle. Branch, catalog and pull-request failures
// abort the run; a file publish failure for one language is logged and does
// not block the remaining languages; report delivery is best-effort.
func (p *Publisher) Run(ctx context.Context) error {
	head, err := p.host.BranchHead(ctx, BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", BaseBranch, err)
	}

	if err := p.host.CreateBranch(ctx, WorkingBranch, head); err != nil {
		if !errors.Is(err, ErrBranchExists) {
			return err
		}
		log.Info("Branch %s already exists", WorkingBranch)
	}

	data, _, err := p.host.GetFile(ctx, CatalogPath, BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to load catalog %s: %w", CatalogPath, err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", CatalogPath, err)
	}

	for _, lang := range p.languages {
		log.Info("Translating to %s...", lang)

		translations, err := p.translator.Translate(ctx, cat, lang)
		if err != nil {
			return err
		}

		blob, err := cat.Render(translations)
		if err != nil {
			return fmt.Errorf("failed to serialize %s translations: %w", lang, err)
		}

		if err := p.publishFile(ctx, lang, blob); err != nil {
			log.Error("Failed to publish %s translation: %v", lang, err)
		}
	}

	if err := p.ensurePull(ctx); err != nil {
		return err
	}

	// Best-effort notification; the run is complete with or without it.
	if err := p.mailer.Send(p.runLog, p.model); err != nil {
		log.Error("❌ Email failed: %v", err)
	}

	return nil
}

// publishFile creates or updates the locale file for one language on the
// working branch: an explicit existence check decides between create and
// update, so unrelated write errors surface instead of being swallowed.
func (p *Publisher) publishFile(ctx context.Context, lang string, content []byte) error {
	path := localePath(lang)

	_, sha, err := p.host.GetFile(ctx, path, WorkingBranch)
	switch {
	case errors.Is(err, ErrFileNotFound):
		return p.host.CreateFile(ctx, path, WorkingBranch, fmt.Sprintf("Add %s translation", lang), content)
	case err != nil:
		return fmt.Errorf("failed to check %s on %s: %w", path, WorkingBranch, err)
	default:
		return p.host.UpdateFile(ctx, path, WorkingBranch, fmt.Sprintf("Update %s translation", lang), content, sha)
	}
}

// ensurePull opens the pull request from the working branch into base
// unless one is already open.
func (p *Publisher) ensurePull(ctx context.Context) error {
	exists, err := p.host.HasOpenPull(ctx, p.owner+":"+WorkingBranch, BaseBranch)
	if err != nil {
		return err
	}
	if exists {
		log.Warn("⚠️ PR already exists. Skipping PR creation.")
		return nil
	}
	return p.host.CreatePull(ctx, pullTitle, pullBody, WorkingBranch, BaseBranch)
}

// localePath is the repository path of a language's locale file.
func localePath(lang string) string {
	return fmt.Sprintf("locales/%s.json", lang)
}
