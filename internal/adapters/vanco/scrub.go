package vanco

import (
	"regexp"
)

const filteredPlaceholder = "[FILTERED]"

// Sensitive elements whose text must never reach logs: login password,
// card verification value and card number. Tags are matched
// case-insensitively and preserved as written.
var scrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(<Password>)[^<]*(</Password>)`),
	regexp.MustCompile(`(?i)(<CardCVV2>)[^<]*(</CardCVV2>)`),
	regexp.MustCompile(`(?i)(<AccountNumber>)[^<]*(</AccountNumber>)`),
}

// Scrub redacts sensitive element text in a request/response transcript.
// Applying it to an already-scrubbed transcript is a no-op.
func Scrub(transcript string) string {
	for _, pattern := range scrubPatterns {
		transcript = pattern.ReplaceAllString(transcript, "${1}"+filteredPlaceholder+"${2}")
	}
	return transcript
}
