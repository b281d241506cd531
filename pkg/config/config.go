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
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"github.com/notapipeline/tidlock/pkg/types"
)

// ConfigPath is referenced as a variable to enable it to be mocked in tests
var ConfigPath func() string = getConfigPath

type Config struct {
	File   string `yaml:"file" env:"TIDLOCK_FILE"`
	Backup bool   `yaml:"backup" env:"TIDLOCK_BACKUP"`
	Debug  bool   `yaml:"debug" env:"TIDLOCK_DEBUG"`
	Quiet  bool   `yaml:"quiet" env:"TIDLOCK_QUIET"`
}

func New() *Config {
	return &Config{}
}

// Load the config file from the user local config directory
//
// The config file will be loaded from ~/.config/tidlock/config.yaml if it
// exists and then the environment will be checked for overrides.
//
// Callers are expected to call `MergeToggleCmd` afterwards to override the
// config with command line options.
func (c *Config) Load() (err error) {
	if err = c.loadYaml(); err != nil {
		return
	}
	return c.loadEnv()
}

func (c *Config) loadYaml() (err error) {
	var (
		cp       string = ConfigPath()
		yamlFile []byte
	)

	if _, err = os.Stat(cp); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if yamlFile, err = os.ReadFile(cp); err != nil {
		return err
	}

	log.Debug().Str("path", cp).Msg("loading config file")
	return yaml.Unmarshal(yamlFile, c)
}

func (c *Config) loadEnv() (err error) {
	return env.Parse(c)
}

// MergeToggleCmd overrides the config with any command line options that
// were explicitly given. Flags always win over file and environment.
func (c *Config) MergeToggleCmd(cmd types.ToggleCmd) {
	if cmd.File != "" {
		c.File = cmd.File
	}
	if cmd.Backup {
		c.Backup = cmd.Backup
	}
	if cmd.Debug {
		c.Debug = cmd.Debug
	}
	if cmd.Quiet {
		c.Quiet = cmd.Quiet
	}
}

// Save writes the current config back to the user config directory.
func (c *Config) Save() (err error) {
	var data []byte
	if data, err = yaml.Marshal(c); err != nil {
		return err
	}

	var cp string = ConfigPath()
	if err = os.MkdirAll(filepath.Dir(cp), 0700); err != nil {
		return err
	}
	return os.WriteFile(cp, data, 0600)
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return fmt.Sprintf("%s/.config/tidlock/config.yaml", home)
}
