// Package gateway provides the HTTP client for the TypePolish correction
// server.
//
// The server exposes three stateless operations, each a single JSON POST:
//   - /correct: grammar correction with a mode profile (grammar, professional, casual)
//   - /polish-ai: AI fluency rewrite, optionally refined by tone and style
//   - /rewrite-tone: emotional register rewrite of already-polished text
//
// # Failure Normalization
//
// Every operation returns a usable Result even when the request fails. On
// transport failure, server rejection, or a malformed body, the Result
// carries the caller's original text unchanged plus a summary naming the
// failure class, and the returned error classifies it (network, timeout,
// DNS, HTTP, parse). Callers that only care about having something to
// display can use the Result as-is; callers that surface notifications
// inspect the error.
//
// # Usage Example
//
//	client := gateway.NewClient("http://127.0.0.1:8000")
//	result, err := client.Correct(ctx, "i has went to market", gateway.ModeGrammar)
//	if err != nil {
//	    // result still holds the original text and a failure summary
//	}
//	fmt.Println(result.CorrectedText)
//
// # No Retries
//
// Each call performs exactly one HTTP attempt. Retry policy belongs to the
// caller so the backend never sees duplicated work it did not ask for.
//
// # Thread Safety
//
// Client instances are safe for concurrent use; they hold no mutable state
// beyond the shared http.Client.
package gateway
