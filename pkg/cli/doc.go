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

// Package cli implements the crumb command-line interface.
//
// # Commands
//
// recipe - Calculate a recipe:
//
//	crumb recipe --mass 1000 --flour White:60 --flour Rye:40 --preferment starter:10:100
//
// Every quantity is derived from the total flour mass, preferment flour
// included. A YAML or JSON request can be loaded with --request; flags set on
// the command line take precedence over it.
//
// preferments - List the registered preferments:
//
//	crumb preferments --format json
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env CRUMB_LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: table)
//
// # Environment
//
// Recipe flags also read CRUMB_MASS, CRUMB_HYDRATION, CRUMB_FLOUR, CRUMB_SALT,
// CRUMB_PREFERMENT and CRUMB_ENRICHMENT.
package cli
