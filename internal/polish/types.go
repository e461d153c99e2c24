package polish

// PolishInput carries the text to rewrite and the tone to aim for.
type PolishInput struct {
	Text string
	Tone string
}

// PolishOutput is the rewritten text. Cached answers do not count
// against the caller's quota.
type PolishOutput struct {
	PolishedText string `json:"polished_text"`
	FromCache    bool   `json:"from_cache"`
}
