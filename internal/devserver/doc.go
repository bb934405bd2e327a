// Package devserver implements a local development stand-in for the
// TypePolish correction backend.
//
// The real backend runs LanguageTool and a paraphrase model; this server
// implements the same wire contract (POST /correct, /polish-ai,
// /rewrite-tone, GET /) with deterministic lightweight transforms:
// whitespace normalization, pronoun and sentence capitalization, terminal
// punctuation, and small per-mode and per-tone substitution tables. That is
// enough for offline client development and for end-to-end tests that need
// stable output.
//
// Responses always use the {correctedText, changesSummary} shape the client
// expects. Empty input returns an empty correctedText with a "No text
// provided." summary, mirroring the production backend.
//
// When announcing is enabled the server registers itself over mDNS as a
// "_typepolish._tcp" service so 'typepolish scan' can find it.
package devserver
