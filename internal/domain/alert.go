package domain

import "unicode/utf8"

// MaxAlertBytes is the alert text capacity, terminator included.
const MaxAlertBytes = 64

// AlertMessage carries a formatted anomaly description.
type AlertMessage struct {
	Text string `json:"text"`
}

// NewAlertMessage builds an alert, truncating text to MaxAlertBytes-1 bytes
// without splitting a UTF-8 sequence.
func NewAlertMessage(text string) AlertMessage {
	limit := MaxAlertBytes - 1
	if len(text) <= limit {
		return AlertMessage{Text: text}
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return AlertMessage{Text: text[:cut]}
}
