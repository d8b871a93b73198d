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

// Package header provides the common header of crumb documents.
//
// Recipes, recipe requests and preferment listings embed Header inline:
//
//	kind: Recipe
//	apiVersion: crumb.dev/v1
//	metadata:
//	  timestamp: "2026-01-30T10:30:00Z"
//	  version: v1.0.0
//
// Producers call Init; consumers of hand-written documents call Check, which
// accepts documents that carry no header at all.
package header
