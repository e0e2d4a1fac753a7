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
	"github.com/spf13/cobra"
)

// NewIncludeRootsCmd creates the include-root rename command
func NewIncludeRootsCmd(o *opts.RootOpts) *cobra.Command {
	var (
		root   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "include-roots",
		Short: "Rewrite include roots to the current engine name",
		Long: `Include-roots rewrites the include prefix configured in include_roots
(by default "#include Ayla" becomes "#include Solas") in the header and
source files below each "source" directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runRewrite(cmd.Context(), o, o.Config.IncludeRule(), root, dryRun)
			return err
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory to start from")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")

	return cmd
}
