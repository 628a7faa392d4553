package config

// ProviderType identifies an LLM or embedding provider.
type ProviderType string

const (
	ProviderOllama ProviderType = "ollama"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level aiverse configuration, corresponding to .aiverse.yml.
type Config struct {
	Provider          ProviderType    `yaml:"provider" koanf:"provider"`
	Model             string          `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType    `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string          `yaml:"embedding_model" koanf:"embedding_model"`
	OllamaHost        string          `yaml:"ollama_host" koanf:"ollama_host"`
	Port              int             `yaml:"port" koanf:"port"`
	DataDir           string          `yaml:"data_dir" koanf:"data_dir"`
	Retrieval         RetrievalConfig `yaml:"retrieval" koanf:"retrieval"`
}

// RetrievalConfig holds chunking and search settings for the vector index.
type RetrievalConfig struct {
	ChunkSize    int     `yaml:"chunk_size" koanf:"chunk_size"`
	ChunkOverlap int     `yaml:"chunk_overlap" koanf:"chunk_overlap"`
	TopK         int     `yaml:"top_k" koanf:"top_k"`
	MinRelevance float32 `yaml:"min_relevance" koanf:"min_relevance"`
}
