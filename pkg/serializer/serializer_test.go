// Copyright (c) 2025, The crumb Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string            `json:"name" yaml:"name"`
	Count int               `json:"count" yaml:"count"`
	Tags  []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

type tabled struct{}

func (tabled) WriteTable(w io.Writer) error {
	_, err := fmt.Fprintln(w, "custom table")
	return err
}

type mass struct{ v int }

func (m mass) String() string { return fmt.Sprintf("%d g", m.v) }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: " YAML ", want: FormatYAML},
		{in: "Table", want: FormatTable},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("toml").IsUnknown())
}

func TestWriter_Serialize(t *testing.T) {
	v := sample{Name: "crumb", Count: 2, Tags: []string{"a", "b"}}

	tests := []struct {
		name   string
		format Format
		value  any
		want   []string
	}{
		{name: "json", format: FormatJSON, value: v, want: []string{`"name": "crumb"`, `"count": 2`}},
		{name: "yaml", format: FormatYAML, value: v, want: []string{"name: crumb", "count: 2", "- a"}},
		{name: "flat table", format: FormatTable, value: v, want: []string{"FIELD", "Name", "crumb", "Tags.[1]"}},
		{name: "table writer", format: FormatTable, value: tabled{}, want: []string{"custom table"}},
		{name: "stringer field", format: FormatTable, value: struct{ Mass mass }{mass{5}}, want: []string{"Mass", "5 g"}},
		{name: "unknown falls back to json", format: Format("xml"), value: v, want: []string{`"name": "crumb"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(tt.format, &buf)
			require.NoError(t, w.Serialize(context.Background(), tt.value))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriter_SerializeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewWriter(FormatJSON, &buf).Serialize(ctx, sample{})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWriter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(context.Background(), sample{Name: "file"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: file")

	stdout := NewFileWriterOrStdout(FormatJSON, "  ")
	assert.Equal(t, FormatJSON, stdout.Format())
	assert.NoError(t, stdout.Close())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"recipe.yaml":                      FormatYAML,
		"recipe.YML":                       FormatYAML,
		"recipe.json":                      FormatJSON,
		"recipe":                           FormatJSON,
		"https://example.com/r.yaml?ref=1": FormatYAML,
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatFromPath(in), in)
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    sample
		wantErr bool
	}{
		{name: "json", format: FormatJSON, input: `{"name":"a","count":1}`, want: sample{Name: "a", Count: 1}},
		{name: "yaml", format: FormatYAML, input: "name: b\ncount: 3\n", want: sample{Name: "b", Count: 3}},
		{name: "json unknown field", format: FormatJSON, input: `{"nme":"a"}`, wantErr: true},
		{name: "yaml unknown field", format: FormatYAML, input: "nme: a\n", wantErr: true},
		{name: "malformed", format: FormatJSON, input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)
			defer r.Close()

			var got sample
			err = r.Deserialize(&got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewReader_Errors(t *testing.T) {
	_, err := NewReader(FormatJSON, nil)
	assert.Error(t, err)

	_, err = NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: loaded\ncount: 7\n"), 0o600))

	got, err := FromFile[sample](path)
	require.NoError(t, err)
	assert.Equal(t, "loaded", got.Name)
	assert.Equal(t, 7, got.Count)

	_, err = FromFile[sample](filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = FromFile[sample]("")
	assert.Error(t, err)
}
