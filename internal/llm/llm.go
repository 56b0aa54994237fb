package llm

import (
	"context"
)

// Extractor pulls a candidate place name out of unstructured text and
// phrases fallback replies. It is best-effort by nature: callers must treat
// its output as a hint, not a verified place.
type Extractor interface {
	// ExtractPlace returns the place name mentioned in the text, or an empty
	// string when no place is mentioned
	ExtractPlace(ctx context.Context, text string) (string, error)

	// UnknownPlaceReply phrases a short, polite reply for a place that could
	// not be verified
	UnknownPlaceReply(ctx context.Context, placeName string) (string, error)
}
