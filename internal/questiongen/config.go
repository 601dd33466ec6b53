package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MinTextLength is the fewest characters, after trimming, accepted as
	// source text.
	MinTextLength int

	// MaxTextLength is where source text is cut before prompting.
	MaxTextLength int

	// MaxTokens is the token budget for the response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MinTextLength: 100,
		MaxTextLength: 3000,
		MaxTokens:     2000,
		Temperature:   0.3,
	}
}
