package config

import "os"

type GeminiConfig struct {
	APIKey string
	Model  string
}

func GetGeminiConfig() *GeminiConfig {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}
}
