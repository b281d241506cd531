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
	"fmt"
	"regexp"
	"strings"

	"github.com/hokaccha/go-prettyjson"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/notapipeline/tidlock/pkg/tiddler"
)

var toggleTag = regexp.MustCompile(`^(Encrypt|Decrypt)\((.+)\)$`)

type tiddlerInfo struct {
	File      string   `json:"file"`
	Name      string   `json:"name"`
	State     string   `json:"state"`
	Tags      []string `json:"tags"`
	Encrypted bool     `json:"encrypted"`
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the protected tiddler's name, tags and state",
	Long: `Show the protected tiddler of a document: its name as used in the
	Encrypt/Decrypt tag, its full tag list, and whether the content is
	currently encrypted. No password is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		raw, err := tiddler.Load(c.File)
		if err != nil {
			return err
		}

		doc, err := tiddler.Parse(raw)
		if err != nil {
			return err
		}

		info := describe(c.File, doc.Tiddler())
		if toggleCmd.Output == "json" {
			b, err := prettyjson.Marshal(info)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Field", "Value"})
		tw.AppendRows([]table.Row{
			{"File", info.File},
			{"Tiddler", info.Name},
			{"State", info.State},
			{"Tags", strings.Join(info.Tags, " ")},
		})
		tw.Render()
		return nil
	},
}

func describe(file string, tid tiddler.Tiddler) tiddlerInfo {
	info := tiddlerInfo{
		File:  file,
		Name:  "(untracked)",
		State: "plaintext",
		Tags:  tid.Tags,
	}

	for _, tag := range tid.Tags {
		if m := toggleTag.FindStringSubmatch(tag); m != nil {
			info.Name = m[2]
			if m[1] == "Decrypt" {
				info.State = "encrypted"
				info.Encrypted = true
			}
			break
		}
	}
	return info
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&toggleCmd.Output, "output", "o", "", "output format (table|json)")
}
