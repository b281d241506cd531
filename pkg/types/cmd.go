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
package types

type ToggleCmd struct {
	File   string `yaml:"file" env:"TIDLOCK_FILE"`
	Backup bool   `yaml:"backup" env:"TIDLOCK_BACKUP"`
	Debug  bool   `yaml:"debug" env:"TIDLOCK_DEBUG"`
	Quiet  bool   `yaml:"quiet" env:"TIDLOCK_QUIET"`
	Output string `yaml:"output" env:"TIDLOCK_OUTPUT"`
}
