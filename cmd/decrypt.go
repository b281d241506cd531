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

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt <name>",
	Short: "Decrypt the tiddler tagged Decrypt(<name>)",
	Long: `Decrypt the content of the tiddler tagged Decrypt(<name>).

	The embedded checksum is verified against the recovered plaintext
	before anything is written: a wrong password fails with a checksum
	mismatch and the document on disk is left untouched.

	Decrypt the journal tiddler inside wiki.html:

		tidlock decrypt journal -f wiki.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(types.OpDecrypt, args[0])
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
