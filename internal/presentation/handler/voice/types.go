package voice

// textToSpeechRequest represents a synthesis request
type textToSpeechRequest struct {
	Text     string `json:"text" example:"Your application has been submitted."`
	Language string `json:"language,omitempty" example:"hi"` // Two-letter code; defaults to en
}

// voiceToTextResponse represents the transcript of an uploaded clip
type voiceToTextResponse struct {
	OK       bool   `json:"ok"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

// textToSpeechResponse points at the generated audio clip
type textToSpeechResponse struct {
	OK       bool   `json:"ok"`
	AudioURL string `json:"audio_url"`
	Filename string `json:"filename"`
}
