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
	"regexp"
	"strings"

	"github.com/notapipeline/tidlock/pkg/types"
)

// tiddlerRegion matches the single protected region of a document: a div
// carrying a tags attribute whose body contains a pre block. Submatch 1 is
// the tag list, submatch 2 the content.
var tiddlerRegion = regexp.MustCompile(`(?s)<div[^>]*\stags="([^"]*)"[^>]*>.*?<pre>(.*?)</pre>.*?</div>`)

// Document wraps a parsed document. It retains the raw text and the match
// offsets of the tag list and content so that splicing reproduces every
// other byte of the document unchanged.
type Document struct {
	raw                string
	tagStart, tagEnd   int
	bodyStart, bodyEnd int
}

// Parse locates the protected region inside raw. Documents without a
// tagged div or without a pre block inside it fail with a
// StructuralFormatError before any password handling takes place.
func Parse(raw string) (*Document, error) {
	m := tiddlerRegion.FindStringSubmatchIndex(raw)
	if m == nil {
		return nil, types.StructuralFormatError{
			Reason: `no <div tags="..."> region with a <pre> block found`,
		}
	}

	return &Document{
		raw:       raw,
		tagStart:  m[2],
		tagEnd:    m[3],
		bodyStart: m[4],
		bodyEnd:   m[5],
	}, nil
}

// Tiddler extracts the tag list and content of the protected region.
func (d *Document) Tiddler() Tiddler {
	return Tiddler{
		Tags:    strings.Fields(d.raw[d.tagStart:d.tagEnd]),
		Content: d.raw[d.bodyStart:d.bodyEnd],
	}
}

// Splice reassembles the document around the given tiddler. Only the tag
// list and the pre content change; the surrounding bytes are taken from
// the original text verbatim.
func (d *Document) Splice(t Tiddler) string {
	var b strings.Builder
	b.Grow(len(d.raw) + len(t.Content))
	b.WriteString(d.raw[:d.tagStart])
	b.WriteString(strings.Join(t.Tags, " "))
	b.WriteString(d.raw[d.tagEnd:d.bodyStart])
	b.WriteString(t.Content)
	b.WriteString(d.raw[d.bodyEnd:])
	return b.String()
}
