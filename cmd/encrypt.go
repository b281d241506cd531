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

	"github.com/notapipeline/tidlock/pkg/types"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt <name>",
	Short: "Encrypt the tiddler tagged Encrypt(<name>)",
	Long: `Encrypt the content of the tiddler tagged Encrypt(<name>).

	The content is replaced with a checksummed, hex-encoded blob and the
	tag is swapped to Decrypt(<name>) so a later run knows which way to
	toggle. You will be prompted for the password; it is never stored.

	Encrypt a tiddler named journal inside wiki.html:

		tidlock encrypt journal -f wiki.html

	The document is only written once the whole transform has succeeded;
	any error leaves the file exactly as it was.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(types.OpEncrypt, args[0])
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
}
