package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to aiverse! Let's configure your store assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. LLM provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"ollama", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Model name.
	defaultModel := "llama3.1"
	if cfg.Provider == ProviderOpenAI {
		defaultModel = "gpt-4o-mini"
	}
	modelPrompt := promptui.Prompt{
		Label:   "Chat model",
		Default: defaultModel,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	// 3. Embedding provider follows the chat provider unless overridden.
	embPrompt := promptui.Select{
		Label: "Select embedding provider",
		Items: []string{"ollama", "openai"},
	}
	_, embStr, err := embPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("embedding provider selection: %w", err)
	}
	cfg.EmbeddingProvider = ProviderType(embStr)
	if cfg.EmbeddingProvider == ProviderOpenAI {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}

	// 4. Ollama host, only relevant when either side uses Ollama.
	if cfg.Provider == ProviderOllama || cfg.EmbeddingProvider == ProviderOllama {
		hostPrompt := promptui.Prompt{
			Label:   "Ollama host",
			Default: cfg.OllamaHost,
		}
		host, err := hostPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("ollama host: %w", err)
		}
		cfg.OllamaHost = host
	}

	// 5. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "API port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
