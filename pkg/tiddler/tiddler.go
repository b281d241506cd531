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

// Tiddler is the read-only view the transform works against: the ordered
// tag list and the raw content of the single protected section of a
// document.
type Tiddler struct {
	Tags    []string
	Content string
}

// HasTag reports whether tag appears in the tag list.
func (t Tiddler) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// SwapTag returns a copy of the tiddler with every occurrence of from
// replaced by to, preserving the order of all other tags. The receiver is
// never modified so a failed operation leaves the caller's view untouched.
func (t Tiddler) SwapTag(from, to string) Tiddler {
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		if tag == from {
			tags[i] = to
		} else {
			tags[i] = tag
		}
	}
	return Tiddler{Tags: tags, Content: t.Content}
}

// WithContent returns a copy of the tiddler carrying the given content.
func (t Tiddler) WithContent(content string) Tiddler {
	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)
	return Tiddler{Tags: tags, Content: content}
}
