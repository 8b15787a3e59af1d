// Package contentbrowser provides a reusable library for classifying opaque
// content blobs and rendering them into browsable HTML pages, plus a small
// append-only registry of named links rendered into an index page.
//
// It exposes a single Service interface that orchestrates classification,
// page rendering, site building, and link registry maintenance. Pluggable
// blob stores for generated output (memory, filesystem, S3) and registries
// (memory, JSON file) are provided under subpackages.
//
// Classification Strategy
//
// Detection is a two-stage cascade: fixed leading-byte signatures identify
// binary image formats, and an ordered list of substring heuristics labels
// everything else. Rules are evaluated top-to-bottom with first-match-wins;
// the ordering is part of the contract, and the heuristics intentionally
// over-approximate (a JavaScript file mentioning "React" is labeled react).
// Every input yields exactly one (type, subtype) pair.
package contentbrowser
