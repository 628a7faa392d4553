package config

// DefaultConfig returns a Config with sensible defaults: a local Ollama
// instance hosting the chat and embedding models, chunking tuned for
// short product/policy documents.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOllama,
		Model:             "llama3.1",
		EmbeddingProvider: ProviderOllama,
		EmbeddingModel:    "nomic-embed-text",
		OllamaHost:        "http://localhost:11434",
		Port:              8000,
		DataDir:           "data",
		Retrieval: RetrievalConfig{
			ChunkSize:    512,
			ChunkOverlap: 50,
			TopK:         5,
			MinRelevance: 0.5,
		},
	}
}
