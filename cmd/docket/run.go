package main

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	docket "github.com/alnah/go-docket"
	"github.com/alnah/go-docket/internal/config"
	"github.com/alnah/go-docket/internal/watch"
)

// run builds the site once, then keeps rebuilding on changes when watch is
// set. A failed build in watch mode is logged and the previous output kept.
func run(ctx context.Context, cfg *config.Config, watchMode bool, log *zap.Logger) error {
	builder, err := newBuilder(cfg, log)
	if err != nil {
		return err
	}

	source := cfg.Input.DefaultDir
	target := cfg.Output.DefaultDir
	log.Debug("starting build",
		zap.String("source", source),
		zap.String("target", target),
		zap.Int("workers", builder.Workers()),
		zap.String("highlight", cfg.Highlight.Mode))

	build := func(ctx context.Context) error {
		_, err := builder.Build(ctx, source, target)
		return err
	}

	if !watchMode {
		return build(ctx)
	}

	if err := build(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("initial build failed, watching for fixes", zap.Error(err))
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	w := watch.New(source, build,
		watch.WithLogger(log),
		watch.WithIgnore(absTarget))
	return w.Run(ctx)
}

// newBuilder translates cfg into builder options.
func newBuilder(cfg *config.Config, log *zap.Logger) (*docket.Builder, error) {
	return docket.NewBuilder(
		docket.WithLogger(log),
		docket.WithWorkers(cfg.Build.Workers),
		docket.WithTitle(cfg.Site.Title),
		docket.WithHighlightMode(cfg.Highlight.Mode, cfg.Highlight.Style),
		docket.WithAssetPath(cfg.Assets.BasePath),
		docket.WithOutlineLevel(cfg.TOC.MaxDepth),
	)
}
