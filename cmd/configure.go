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
	"github.com/spf13/cobra"

	zlog "github.com/rs/zerolog/log"

	"github.com/notapipeline/tidlock/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Persist the current settings as defaults",
	Long: `Write the merged settings to ~/.config/tidlock/config.yaml so
	later invocations can omit them. Flags win over the environment,
	the environment wins over any existing config file.

	Record wiki.html as the default document, keeping backups:

		tidlock config -f wiki.html --backup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if err = c.Save(); err != nil {
			return err
		}
		zlog.Info().Str("path", config.ConfigPath()).Msg("defaults saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
