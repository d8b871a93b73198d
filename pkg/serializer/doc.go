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

// Package serializer reads and writes crumb documents as JSON, YAML or text tables.
//
// # Writing
//
// Writer serializes any value. Values implementing TableWriter, such as a
// calculated recipe, render their own table; anything else is flattened into
// FIELD/VALUE rows:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, recipe); err != nil {
//	    return err
//	}
//
// # Reading
//
// FromFile loads a typed document from a local file or an http(s) URL. The
// format is inferred from the extension and unknown fields are rejected:
//
//	req, err := serializer.FromFile[recipe.Request]("sourdough.yaml")
//
// # HTTP
//
// RespondJSON writes API responses. HttpReader fetches remote documents with
// bounded timeouts and body size.
package serializer
