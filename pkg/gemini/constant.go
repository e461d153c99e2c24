package gemini

const (
	// BaseURL is the Gemini generateContent API base.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"
	// DefaultMaxOutputTokens bounds generation so a runaway completion
	// cannot hold the request open.
	DefaultMaxOutputTokens = 1024
)
