// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"path/filepath"

	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/astralengine/astraldev/pkg/log"
	"github.com/astralengine/astraldev/pkg/rewrite"
	"github.com/astralengine/astraldev/pkg/status"
	"github.com/astralengine/astraldev/pkg/text"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// runRewrite applies rule under root with the configured scope and prints
// the progress lines and the summary table
func runRewrite(ctx context.Context, o *opts.RootOpts, rule text.Rule, root string, dryRun bool) (*rewrite.Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", root, err)
	}

	logger := log.FromContext(ctx)

	replacer, err := rewrite.New(rewrite.Options{
		Fs:         o.Fs,
		Rule:       rule,
		Sentinel:   o.Config.Scope.Sentinel,
		Extensions: o.Config.Scope.Extensions,
		DryRun:     dryRun,
		Reporter:   logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating replacer: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", absRoot).
		Stringer("rule", rule).
		Bool("dry_run", dryRun).
		Msg("starting rewrite")

	logger.Header(rule.String())

	report, err := replacer.Run(ctx, absRoot)
	if err != nil {
		return nil, errors.Errorf("rewriting %s: %w", absRoot, err)
	}

	summary := report.Summary()
	logger.LogNewline()
	logger.Raw(summary.RenderTable())
	logger.LogNewline()

	switch {
	case summary.Failed > 0:
		logger.Warningf("%d file(s) could not be processed", summary.Failed)
	case dryRun:
		logger.Infof("dry run: %d file(s) would be rewritten", summary.Rewritten)
	default:
		logger.Successf("rewrote %d file(s)", summary.Rewritten)
	}

	for _, path := range report.Paths(status.StatusUnknown) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("ignored unknown entry")
	}

	return report, nil
}
