package roadmapgen

// MaxTopics bounds how many topics a generated roadmap may contain.
const MaxTopics = 14

// Config controls generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults. Roadmaps are long JSON
// documents, so the token budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
