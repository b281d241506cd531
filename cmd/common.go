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
	"log"
	"strings"

	"github.com/twpayne/go-pinentry"

	zlog "github.com/rs/zerolog/log"

	"github.com/notapipeline/tidlock/pkg/cache"
	"github.com/notapipeline/tidlock/pkg/config"
	"github.com/notapipeline/tidlock/pkg/tiddler"
	"github.com/notapipeline/tidlock/pkg/tools"
	"github.com/notapipeline/tidlock/pkg/transform"
	"github.com/notapipeline/tidlock/pkg/types"
)

// These functions are referenced as variables to enable them to
// be mocked in tests
var fatal func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

var getPassword func() (string, error) = func() (string, error) {
	return func() (string, error) {
		var (
			err         error
			client      *pinentry.Client
			password    string
			usePinentry bool = true
		)

		if client, err = getPinentry(
			pinentry.WithBinaryNameFromGnuPGAgentConf(),
			pinentry.WithDesc("Please enter the wiki password."),
			pinentry.WithGPGTTY(),
			pinentry.WithPrompt("Password:"),
			pinentry.WithTitle("Wiki password"),
		); err != nil {
			if password, err = readPassword("Please enter the wiki password: "); err != nil {
				return "", err
			}
			usePinentry = false
		}

		if usePinentry {
			defer client.Close()
			password, _, err = client.GetPIN()
			if pinentry.IsCancelled(err) {
				return "", fmt.Errorf("Cancelled")
			}
		}
		if password == "" {
			return "", fmt.Errorf("No password provided")
		}
		password = strings.TrimSpace(password)
		return password, err
	}()
}

var getPinentry func(options ...pinentry.ClientOption) (c *pinentry.Client, err error) = func(options ...pinentry.ClientOption) (c *pinentry.Client, err error) {
	return pinentry.NewClient(options...)
}

var readPassword func(prompt string) (string, error) = func(prompt string) (string, error) {
	return tools.ReadPassword(prompt)
}

func loadConfig() (*config.Config, error) {
	c := config.New()
	if err := c.Load(); err != nil {
		return nil, err
	}
	c.MergeToggleCmd(toggleCmd)
	configureLogging(c.Debug, c.Quiet)

	if c.File == "" {
		return nil, fmt.Errorf("no document specified: use --file, TIDLOCK_FILE or the config file")
	}
	return c, nil
}

// runToggle drives one encrypt or decrypt operation end to end. The
// document is loaded, parsed and tag-checked before the password prompt so
// a structurally broken document never asks for a password, and the file
// is only rewritten once the whole transform has succeeded.
func runToggle(op, name string) error {
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

	var (
		tid tiddler.Tiddler = doc.Tiddler()
		tag string
	)
	if tag, err = transform.TagFor(op, name); err != nil {
		return err
	}
	if !tid.HasTag(tag) {
		return types.MissingTagError{Tag: tag}
	}

	password, err := getPassword()
	if err != nil {
		return err
	}
	cache.Instance().SetPassword([]byte(password))

	key, err := cache.Instance().KeyWords()
	if err != nil {
		return err
	}

	out, err := transform.Apply(op, tid, name, key)
	if err != nil {
		return err
	}

	if err = tiddler.Save(c.File, doc.Splice(out), c.Backup); err != nil {
		return err
	}

	zlog.Info().
		Str("file", c.File).
		Str("operation", op).
		Str("tiddler", name).
		Msg("document updated")
	return nil
}
