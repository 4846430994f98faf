package analysis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwray/audex/internal/cache"
	"github.com/cwray/audex/internal/config"
	"github.com/cwray/audex/internal/providers"
	"github.com/cwray/audex/internal/redact"
)

const (
	toolName    = "audex"
	toolVersion = "0.1"
)

// Run executes a single audit: build prompts, consult the cache, call the
// provider, normalize the reply. A provider failure still yields a
// structurally valid Report carrying the degraded error result; the
// underlying error is returned alongside so the caller can map auth failures
// to exit codes.
func Run(ctx context.Context, req Request, cfg config.Config, log zerolog.Logger) (*Report, error) {
	start := time.Now()

	if cfg.Privacy.RedactSecrets {
		req.Code = redact.Secrets(req.Code)
	}

	systemPrompt, userPrompt := BuildPrompts(req)

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		log.Warn().Err(err).Msg("cache unavailable, continuing without it")
		c, _ = cache.New(false, "", 0)
	}
	cacheKey := cache.BuildKey(cfg.Provider, cfg.Model, aspectSignature(req), req.Code)

	if reply, ok := c.Get(cacheKey); ok {
		log.Debug().Str("file", req.Filename).Msg("cache hit")
		report := buildReport(req, cfg, Normalize(reply, cfg.Weights), 0, time.Since(start).Milliseconds(), 0)
		report.Cached = true
		return report, nil
	}

	provider, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		report := failedReport(req, cfg, err.Error(), time.Since(start).Milliseconds())
		return report, fmt.Errorf("creating provider: %w", err)
	}

	log.Debug().
		Str("provider", provider.Name()).
		Str("model", cfg.Model).
		Str("file", req.Filename).
		Str("language", req.Language).
		Msg("sending analysis request")

	llmStart := time.Now()
	resp, err := provider.Assess(ctx, providers.AssessRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
		ForceJSON:    true,
	})
	llmMs := time.Since(llmStart).Milliseconds()

	if err != nil {
		log.Debug().Err(err).Str("file", req.Filename).Msg("provider call failed")
		report := failedReport(req, cfg, err.Error(), time.Since(start).Milliseconds())
		report.Timing.LLMMs = llmMs
		return report, fmt.Errorf("provider assess: %w", err)
	}

	if err := c.Put(cacheKey, resp.Content); err != nil {
		log.Warn().Err(err).Msg("caching reply failed")
	}

	report := buildReport(req, cfg, Normalize(resp.Content, cfg.Weights),
		llmMs, time.Since(start).Milliseconds(), resp.TokensUsed)
	return report, nil
}

func buildReport(req Request, cfg config.Config, res Result, llmMs, totalMs int64, tokens int) *Report {
	return &Report{
		Tool:       toolName,
		Version:    toolVersion,
		RunID:      generateRunID(),
		Filename:   req.Filename,
		Language:   req.Language,
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		Timestamp:  time.Now(),
		Result:     res,
		Timing:     Timing{LLMMs: llmMs, TotalMs: totalMs},
		TokensUsed: tokens,
	}
}

func failedReport(req Request, cfg config.Config, message string, totalMs int64) *Report {
	report := buildReport(req, cfg, ErrorResult(message), 0, totalMs, 0)
	report.Failed = true
	return report
}

// aspectSignature encodes the enabled aspects so that toggling a checkbox
// never reuses a cached reply for a different aspect set.
func aspectSignature(req Request) string {
	var parts []string
	if req.IncludeStyle {
		parts = append(parts, "style")
	}
	if req.IncludeSecurity {
		parts = append(parts, "security")
	}
	if req.IncludePerformance {
		parts = append(parts, "performance")
	}
	return strings.Join(parts, ",")
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:16])
}
