package commands

import (
	"context"

	"github.com/walteh/specfix/cmd/specfix/opts"
	"github.com/walteh/specfix/pkg/log"
	"github.com/walteh/specfix/pkg/operation"
	"github.com/walteh/specfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// runPass runs one pass of transformers over the configured directory
func runPass(ctx context.Context, o *opts.RootOpts, header string, dryRun bool, transformers ...text.Transformer) (*operation.Summary, error) {
	reporter := log.FromContext(ctx)
	reporter.Header(header)

	runner, err := operation.NewRunner(operation.Options{
		Directory:    o.Config.Directory,
		Suffix:       o.Config.Suffix,
		Transformers: transformers,
		DryRun:       dryRun,
		Logger:       reporter,
	})
	if err != nil {
		reporter.Errorf("%s failed: %v", header, err)
		return nil, errors.Errorf("creating runner: %w", err)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		reporter.Errorf("%s failed: %v", header, err)
		return nil, errors.Errorf("running %s: %w", header, err)
	}

	if summary.Scanned == 0 {
		reporter.Warningf("no files matching %s", o.Config.String())
	}

	return summary, nil
}
