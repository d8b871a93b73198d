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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "mixed case",
			format:     "YAML",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
		})
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			return writeOutput(ctx, c, map[string]string{"flour": "White:100"})
		},
	}

	if err := cmd.Run(context.Background(), []string{"test", "-o", path, "-t", "yaml"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := string(data); got != "flour: White:100\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestWriteOutput_CommandWriter(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:   "test",
		Writer: &buf,
		Flags:  []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			return writeOutput(ctx, c, newPrefermentList(ingredient.DefaultRegistry()))
		},
	}

	if err := cmd.Run(context.Background(), []string{"test", "--format", "json"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got prefermentList
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got.Preferments) != 3 {
		t.Errorf("got %d preferments, want 3", len(got.Preferments))
	}
}

func TestPrefermentList_WriteTable(t *testing.T) {
	l := prefermentList{Preferments: []prefermentInfo{
		{ID: "poolish", Descriptor: "poolish:<portion>:<hydration>"},
	}}

	var buf bytes.Buffer
	if err := l.WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.HasPrefix(lines[1], "poolish") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}
