// Copyright 2025 Poiesic Systems
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

// Package termfinder maps free-text clinical terms onto codes in standard
// terminologies through the UMLS Terminology Services (UTS) REST API.
//
// A lookup runs in two stages. The resolve.Resolver searches UTS for
// candidate concept identifiers (CUIs), first across every source vocabulary
// and then restricted to a fallback set. The resolve.Fetcher then asks for
// the preferred-term atoms of each candidate in order and stops at the first
// one that has atoms in the requested source vocabularies.
//
// Finder wires both stages to a UTS client:
//
//	cfg := umls.NewConfig(umls.WithAPIKey(key))
//	finder, err := termfinder.NewFinder(cfg)
//	if err != nil {
//		return err
//	}
//	defer finder.Close()
//
//	res, err := finder.Lookup(ctx, core.NewResolutionRequest("Marfan syndrome"))
//
// A lookup that finds nothing is reported through Resolution.Found, not as
// an error.
package termfinder
