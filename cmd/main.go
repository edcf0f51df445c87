package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/ringstone-ai/tms-translator/internal/config"
	"github.com/ringstone-ai/tms-translator/internal/llm"
	"github.com/ringstone-ai/tms-translator/internal/mailer"
	"github.com/ringstone-ai/tms-translator/internal/publisher"
	"github.com/ringstone-ai/tms-translator/internal/report"
	"github.com/ringstone-ai/tms-translator/internal/translator"
	"github.com/ringstone-ai/tms-translator/pkg/log"
)

var singleflightGroup singleflight.Group

func main() {
	// Load secrets from .env when present
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// One-shot is the default; a cron expression switches to scheduled runs.
	if cfg.Translate.CronExpr == "" {
		if err := run(ctx, cfg); err != nil {
			log.Fatal("Translation run failed: %v", err)
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Translate.CronExpr, func() {
		_, _, _ = singleflightGroup.Do("run", func() (any, error) {
			if err := run(ctx, cfg); err != nil {
				log.Error("Translation run failed: %v", err)
			}
			return nil, nil
		})
	})
	if err != nil {
		log.Fatal("Invalid TRANSLATE_CRON expression %q: %v", cfg.Translate.CronExpr, err)
	}

	log.Info("Scheduled translation runs: %s", cfg.Translate.CronExpr)
	c.Run()
}

// run wires a fresh pipeline and executes one publish cycle. The run log
// and usage counter are created here, so every run starts from zero.
func run(ctx context.Context, cfg *config.Config) error {
	client, err := llm.NewClient(&llm.Config{
		APIKey:      cfg.LLM.APIKey,
		APIURL:      cfg.LLM.APIURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return err
	}

	runLog := report.NewLog()
	locale := translator.NewLocaleTranslator(translator.NewLLMTranslator(client, runLog), runLog)
	host := publisher.NewGitHub(ctx, cfg.GitHub)
	reportMailer := mailer.New(cfg.Mail)

	pub := publisher.New(host, locale, reportMailer, runLog,
		cfg.LLM.Model, cfg.Translate.Languages, cfg.GitHub.Owner())
	return pub.Run(ctx)
}
