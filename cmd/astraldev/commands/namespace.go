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
	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/astralengine/astraldev/pkg/text"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewNamespaceCmd creates the namespace rename command
func NewNamespaceCmd(o *opts.RootOpts) *cobra.Command {
	var (
		from   string
		to     string
		root   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Rename a namespace across the tracked source tree",
		Long: `Namespace replaces every occurrence of one string with another in the
header and source files below each "source" directory.
It will:
1. Ask for the old and new namespace unless --from and --to are given
2. Walk the tree, descending only into tracked directories
3. Rewrite the files that contain the old namespace
4. Print a summary of what changed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			search, err := resolveString(o, from, cmd.Flags().Changed("from"), "from", "Enter the old namespace")
			if err != nil {
				return err
			}
			replace, err := resolveString(o, to, cmd.Flags().Changed("to"), "to", "Enter the new namespace")
			if err != nil {
				return err
			}

			rule := text.Rule{Search: search, Replace: replace}
			if err := rule.Validate(); err != nil {
				return errors.Errorf("invalid namespace: %w", err)
			}

			_, err = runRewrite(ctx, o, rule, root, dryRun)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "namespace to replace")
	cmd.Flags().StringVar(&to, "to", "", "replacement namespace")
	cmd.Flags().StringVar(&root, "root", ".", "directory to start from")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")

	return cmd
}
