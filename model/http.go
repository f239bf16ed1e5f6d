package model

type VoicingRequestBody struct {
	Root      string `json:"root"`
	Quality   string `json:"quality"`
	Shape     string `json:"shape"`
	Set       string `json:"set"`
	AllowOpen bool   `json:"allow_open"`
	Stretch   bool   `json:"stretch"`
}

type VoicingResponse struct {
	Key     string  `json:"key"`
	Span    int     `json:"span"`
	Voicing Voicing `json:"voicing"`
	// MIDI keys of the sounding notes, same order as Voicing.Positions
	Keys []uint8 `json:"keys"`
}

type CatalogResponse struct {
	Total      int       `json:"total"`
	Unsolvable []string  `json:"unsolvable"`
	Voicings   []Voicing `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
