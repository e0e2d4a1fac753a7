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
	"strings"

	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/astralengine/astraldev/pkg/log"
	"github.com/astralengine/astraldev/pkg/vulkansdk"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewVulkanCmd creates the vulkan sdk check command
func NewVulkanCmd(o *opts.RootOpts) *cobra.Command {
	var (
		version   string
		checkOnly bool
	)

	cmd := &cobra.Command{
		Use:   "vulkan",
		Short: "Check for the Vulkan SDK and download it if missing",
		Long: `Vulkan checks that the targeted Vulkan SDK version and the libraries the
engine links against are installed. When they are not, the SDK installer
is downloaded into the SDK directory so it can be run by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			sdkVersion := version
			if sdkVersion == "" {
				sdkVersion = o.Config.Vulkan.Version
			}

			var home string
			if o.GOOS == "darwin" {
				h, err := o.HomeDir()
				if err != nil {
					return errors.Errorf("finding home directory: %w", err)
				}
				home = h
			}

			layout, err := vulkansdk.Resolve(vulkansdk.Options{
				GOOS:    o.GOOS,
				Home:    home,
				Version: sdkVersion,
				BaseURL: o.Config.Vulkan.BaseURL,
			})
			if err != nil {
				return errors.Errorf("resolving vulkan sdk layout: %w", err)
			}

			logger.Header("vulkan sdk " + layout.Version)

			result := vulkansdk.Check(ctx, o.Fs, layout)
			if result.Installed() {
				logger.Successf("Vulkan SDK %s is installed at %s", layout.Version, layout.Root)
				return nil
			}

			if !result.RootExists {
				logger.Warningf("Vulkan SDK %s not found at %s", layout.Version, layout.Root)
			} else {
				logger.Warningf("Vulkan SDK %s is missing libraries: %s", layout.Version, strings.Join(result.Missing, ", "))
			}

			if checkOnly {
				return errors.Errorf("vulkan sdk %s is not installed", layout.Version)
			}

			dopts := vulkansdk.DownloadOptions{Client: o.HTTPClient}
			if o.NewProgress != nil {
				dopts.Progress = o.NewProgress()
			}

			logger.Infof("downloading %s", layout.DownloadURL)
			err = vulkansdk.Download(ctx, o.Fs, layout, dopts)
			if errors.Is(err, vulkansdk.ErrInstallerExists) {
				zerolog.Ctx(ctx).Debug().Str("path", layout.InstallerPath).Msg("installer already present")
				logger.Infof("installer already downloaded, run %s to install the SDK", layout.InstallerPath)
				return nil
			}
			if err != nil {
				return errors.Errorf("downloading vulkan sdk: %w", err)
			}

			logger.Successf("downloaded installer to %s, run it to install the SDK", layout.InstallerPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Vulkan SDK version (defaults to the configured version)")
	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "only check, never download")

	return cmd
}
