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
package tiddler

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Load reads the whole document into memory. Documents are expected to be
// small enough that streaming is not worth the complexity.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Int("bytes", len(b)).Msg("document loaded")
	return string(b), nil
}

// Save writes the transformed document back to path. Save is only called
// once a transform has fully succeeded; failures earlier in the pipeline
// never reach it, so a document on disk is either the old or the new text,
// never a partial write. With backup enabled the previous contents are
// kept next to the document as `<path>.bak` before the overwrite.
func Save(path, doc string, backup bool) error {
	if backup {
		if prev, err := os.ReadFile(path); err == nil {
			if err = os.WriteFile(path+".bak", prev, 0600); err != nil {
				return err
			}
			log.Debug().Str("path", path+".bak").Msg("backup written")
		}
	}

	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(doc)).Msg("document saved")
	return nil
}
