package cli

import (
	"context"
	"errors"
	"fmt"

	"noticecheck/pkg/bazel"
	"noticecheck/pkg/descriptor"
	"noticecheck/pkg/github"
	"noticecheck/pkg/license"
	"noticecheck/pkg/notice"
	"noticecheck/pkg/reconcile"
)

// runCheck drives the verification pipeline: load declarations, reconcile
// artifact identities, resolve license texts, render the document, then
// compare against (or overwrite) the notices file. Any failure aborts the
// run before later phases; check mode never writes.
func runCheck(ctx context.Context, update bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printInfo("Manifest: %s", StyleHighlight.Render(cfg.Manifest))

	m, err := bazel.Load(cfg.Manifest)
	if err != nil {
		return err
	}
	logger.Debug("Loaded declarations",
		"artifacts", len(m.Artifacts),
		"descriptors", len(m.Descriptors),
		"pinned", len(m.Pins))

	client := github.NewClient(cfg.Timeout.Duration, func(format string, args ...any) {
		logger.Debugf(format, args...)
	})

	prog := newProgress(logger)
	spinner := newSpinner("Reconciling declared artifacts with upstream descriptors...")
	spinner.Start()
	result, err := reconcile.Run(ctx, m, &descriptor.Extractor{Fetcher: client})
	if err != nil {
		spinner.StopWithError("Reconciliation failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Reconciled %d artifacts", len(m.Artifacts)))

	resolver := &license.Resolver{Fetcher: client, Candidates: cfg.LicenseFiles}
	agg := notice.NewAggregator()

	prog = newProgress(logger)
	spinner = newSpinner("Fetching license texts...")
	spinner.Start()
	for _, entry := range result.Entries {
		text, err := resolver.FromDescriptor(ctx, entry.Descriptor)
		if err != nil {
			spinner.StopWithError("License fetch failed")
			return err
		}
		agg.Add(text, entry.Coordinate)
	}
	for _, pin := range m.Pins {
		text, err := resolver.FromURL(ctx, pin.URL)
		if err != nil {
			spinner.StopWithError("License fetch failed")
			return err
		}
		agg.Add(text, pin.Coordinate)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Fetched licenses for %d packages", len(result.Entries)+len(m.Pins)))

	content := agg.Render()

	if update {
		if err := notice.Write(cfg.Notices, content); err != nil {
			return err
		}
		printSuccess("Updated notices file")
		printFile(cfg.Notices)
		return nil
	}

	if err := notice.Check(cfg.Notices, content); err != nil {
		if errors.Is(err, notice.ErrOutOfDate) {
			printError("Changes detected in %s", cfg.Notices)
			printDetail("Run noticecheck --update to regenerate it")
		}
		return err
	}
	printSuccess("%s is up-to-date", cfg.Notices)
	return nil
}
