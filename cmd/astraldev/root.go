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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/astralengine/astraldev/cmd/astraldev/commands"
	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/astralengine/astraldev/pkg/config"
	"github.com/astralengine/astraldev/pkg/log"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envPrefix = "ASTRALDEV"

	configFlagName  = "config"
	debugFlagName   = "debug"
	traceFlagName   = "trace"
	logFileFlagName = "log-file"

	defaultConfigFile = ".astraldev.hcl"

	logMaxSize    = 10 // megabytes
	logMaxBackups = 3
	logMaxAge     = 28 // days
)

// newRootCmd builds the command tree. The shared options are completed in
// PersistentPreRunE once flags and environment have been read.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var logFile io.WriteCloser

	cmd := &cobra.Command{
		Use:   "astraldev",
		Short: "Developer tooling for the Astral engine",
		Long: `astraldev bundles the chores of working on the Astral engine: renaming
namespaces and include roots across the tracked source tree and making sure
the Vulkan SDK is installed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			switch {
			case v.GetBool(traceFlagName):
				level = zerolog.TraceLevel
			case v.GetBool(debugFlagName):
				level = zerolog.DebugLevel
			}

			zlog, closer := setupLogging(o.Stderr, v.GetString(logFileFlagName), level)
			logFile = closer
			ctx := zlog.WithContext(cmd.Context())

			cfg, err := config.LoadOrDefault(ctx, o.Fs, v.GetString(configFlagName))
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			zlog.Debug().Str("config", cfg.String()).Msg("configuration loaded")

			o.Config = cfg
			verbose := level <= zerolog.DebugLevel
			cmd.SetContext(log.NewContext(ctx, log.New(o.Stdout, zlog, verbose)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				if err := logFile.Close(); err != nil {
					return errors.Errorf("closing log file: %w", err)
				}
			}
			return nil
		},
	}

	addRootFlags(cmd, v)
	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)

	cmd.AddCommand(
		commands.NewNamespaceCmd(o),
		commands.NewIncludeRootsCmd(o),
		commands.NewVulkanCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command and binds them so
// ASTRALDEV_* environment variables feed them
func addRootFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().StringP(configFlagName, "c", defaultConfigFile, "config file path")
	bindFlag(v, cmd.PersistentFlags().Lookup(configFlagName))

	cmd.PersistentFlags().BoolP(debugFlagName, "d", false, "enable debug logging")
	bindFlag(v, cmd.PersistentFlags().Lookup(debugFlagName))

	cmd.PersistentFlags().Bool(traceFlagName, false, "enable trace logging, including the content of every examined file")
	bindFlag(v, cmd.PersistentFlags().Lookup(traceFlagName))

	cmd.PersistentFlags().String(logFileFlagName, "", "also write JSON logs to this file")
	bindFlag(v, cmd.PersistentFlags().Lookup(logFileFlagName))
}

func bindFlag(v *viper.Viper, flag *pflag.Flag) {
	if flag == nil {
		cobra.CheckErr(errors.New("binding unknown flag"))
		return
	}
	cobra.CheckErr(v.BindPFlag(flag.Name, flag))
}

// setupLogging configures zerolog for level. The returned closer is nil
// unless a log file was requested.
func setupLogging(stderr io.Writer, logPath string, level zerolog.Level) (zerolog.Logger, io.WriteCloser) {
	// the logger's own level does the filtering
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	console := zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05", NoColor: !isTerminal(stderr)}
	if strings.TrimSpace(logPath) == "" {
		return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil
	}

	file := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAge,
		Compress:   true,
	}

	out := zerolog.MultiLevelWriter(console, file)
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), file
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
