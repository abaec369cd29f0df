package translation

// translateRequest represents a translation request
type translateRequest struct {
	Text           string `json:"text" example:"Where is the municipal office?"`
	SourceLanguage string `json:"source_language,omitempty" example:"en"` // ISO 639-1 code; defaults to en
	TargetLanguage string `json:"target_language,omitempty" example:"hi"` // ISO 639-1 code; defaults to en
}

// translateResponse represents the translated text
type translateResponse struct {
	OK             bool   `json:"ok"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}
