package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/lexilens-ai/lexilens-engine/pkg/jsonutil"
)

// DefaultUserID is the sentinel learner used when a request does not name one.
const DefaultUserID = "default"

// WordRecord is one learner's spaced-repetition entry for an identified item.
// Exactly one record exists per (user_id, lexical_key) pair; the lexical key
// is the item's english name folded to lowercase.
type WordRecord struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	LexicalKey    string    `json:"lexical_key"`
	Translation   string    `json:"translation"`
	Pronunciation string    `json:"pronunciation"`
	CulturalNote  string    `json:"cultural_note"`
	TimesSeen     int       `json:"times_seen"`
	LastSeenAt    time.Time `json:"last_seen_at"`
	NextReviewAt  time.Time `json:"next_review_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// WordAttributes carries the recognizer-provided free-text attributes of a
// word. They are overwritten wholesale on every re-observation.
type WordAttributes struct {
	Translation   string
	Pronunciation string
	CulturalNote  string
}

// Recognition is the structured tuple extracted from the vision model's reply.
type Recognition struct {
	Matched         bool   `json:"matched"`
	English         string `json:"english"`
	Translation     string `json:"translation"`
	Pronunciation   string `json:"pronunciation"`
	CulturalContext string `json:"cultural_context"`
}

// UnmarshalJSON decodes a recognition leniently: models occasionally quote
// the matched flag or return numbers where strings belong, and that should
// not fail the whole scan.
func (r *Recognition) UnmarshalJSON(data []byte) error {
	var raw struct {
		Matched         json.RawMessage `json:"matched"`
		English         json.RawMessage `json:"english"`
		Translation     json.RawMessage `json:"translation"`
		Pronunciation   json.RawMessage `json:"pronunciation"`
		CulturalContext json.RawMessage `json:"cultural_context"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Matched = jsonutil.FlexibleBool(raw.Matched)
	r.English = jsonutil.FlexibleString(raw.English)
	r.Translation = jsonutil.FlexibleString(raw.Translation)
	r.Pronunciation = jsonutil.FlexibleString(raw.Pronunciation)
	r.CulturalContext = jsonutil.FlexibleString(raw.CulturalContext)
	return nil
}

// ScanResult is the enriched identification returned to the caller after the
// observation has been recorded.
type ScanResult struct {
	English         string `json:"english"`
	Translation     string `json:"translation"`
	Pronunciation   string `json:"pronunciation"`
	CulturalContext string `json:"cultural_context"`
	TimesSeen       int    `json:"times_seen"`
	IsReview        bool   `json:"is_review"`
}
