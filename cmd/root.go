/*
 *   Copyright 2024 Martin Proffitt <mproffitt@choclab.net>
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notapipeline/tidlock/pkg/types"
)

var toggleCmd types.ToggleCmd = types.ToggleCmd{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tidlock",
	Short: "Password-protect a single tiddler of a TiddlyWiki document",
	Long: `
tidlock toggles one tagged section ("tiddler") of a TiddlyWiki style
document between plaintext and password-encrypted form, leaving every
other byte of the document untouched.

Tag the tiddler Encrypt(<name>) and run "tidlock encrypt <name>" to
protect it; the tag is swapped to Decrypt(<name>) and the content is
replaced with a checksummed hex blob. Run "tidlock decrypt <name>" with
the same password to restore it.

The password is requested through GPG pinentry where available, falling
back to the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(toggleCmd.Debug, toggleCmd.Quiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fatal("Error: %s", err)
	}
}

// configureLogging is applied twice per run: once from the persistent
// pre-run hook with the bare flag values, and again once the config file
// and environment have been merged, so TIDLOCK_DEBUG / TIDLOCK_QUIET and
// the yaml debug/quiet settings take effect as well as the flags.
func configureLogging(debug, quiet bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if quiet {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

func init() {
	// These are consistent across all commands
	rootCmd.PersistentFlags().StringVarP(&toggleCmd.File, "file", "f", "", "path to the wiki document (default from config or TIDLOCK_FILE)")
	rootCmd.PersistentFlags().BoolVar(&toggleCmd.Backup, "backup", false, "keep a .bak copy of the document before overwriting")
	rootCmd.PersistentFlags().BoolVar(&toggleCmd.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&toggleCmd.Quiet, "quiet", false, "disable all logging")
}
