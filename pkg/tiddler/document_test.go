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
	"errors"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/notapipeline/tidlock/pkg/types"
)

const testDocument = `<html>
<head><title>wiki</title></head>
<body>
<div title="secrets" tags="systemConfig Encrypt(test) excludeSearch" modified="202401010000">
<pre>Hello, World!</pre>
</div>
<!-- trailing comment -->
</body>
</html>`

func TestParseExtractsTagsAndContent(t *testing.T) {
	d, err := Parse(testDocument)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tid := d.Tiddler()
	expectedTags := []string{"systemConfig", "Encrypt(test)", "excludeSearch"}
	if len(tid.Tags) != len(expectedTags) {
		t.Fatalf("Expected %d tags but got %d", len(expectedTags), len(tid.Tags))
	}
	for i, tag := range expectedTags {
		if tid.Tags[i] != tag {
			t.Errorf("Expected tag %q at %d but got %q", tag, i, tid.Tags[i])
		}
	}

	if tid.Content != "Hello, World!" {
		t.Errorf("Expected content %q but got %q", "Hello, World!", tid.Content)
	}
}

func TestSpliceIsByteExactOutsideTheRegion(t *testing.T) {
	d, err := Parse(testDocument)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Splicing the extracted tiddler straight back must reproduce the
	// document byte for byte.
	out := d.Splice(d.Tiddler())
	if d := diff.Diff(testDocument, out); d != "" {
		t.Errorf("Expected identity splice, diff:\n%s", d)
	}
}

func TestSpliceReplacesTagsAndContent(t *testing.T) {
	d, err := Parse(testDocument)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tid := d.Tiddler().
		SwapTag("Encrypt(test)", "Decrypt(test)").
		WithContent("CIPHERTEXT")

	out := d.Splice(tid)

	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Unexpected error reparsing: %v", err)
	}
	round := reparsed.Tiddler()
	if !round.HasTag("Decrypt(test)") {
		t.Error("Expected swapped tag in spliced document")
	}
	if round.Content != "CIPHERTEXT" {
		t.Errorf("Expected replaced content but got %q", round.Content)
	}
}

func TestParseFailsWithoutPreBlock(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing pre",
			doc:  `<div tags="Encrypt(test)">no pre here</div>`,
		},
		{
			name: "missing tags attribute",
			doc:  `<div title="x"><pre>content</pre></div>`,
		},
		{
			name: "empty document",
			doc:  "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.doc)
			if err == nil {
				t.Fatal("Expected error but got nil")
			}

			var structural types.StructuralFormatError
			if !errors.As(err, &structural) {
				t.Errorf("Expected StructuralFormatError but got %T", err)
			}
		})
	}
}

func TestParseMultilineContent(t *testing.T) {
	doc := "<div tags=\"Decrypt(x)\">\n<pre>Encrypted(ABC)\nline1\nline2</pre>\n</div>"
	d, err := Parse(doc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.Tiddler().Content != "Encrypted(ABC)\nline1\nline2" {
		t.Errorf("Expected multiline content but got %q", d.Tiddler().Content)
	}
}
