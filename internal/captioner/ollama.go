package captioner

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/agent-api/core/pkg/agent"
	"github.com/agent-api/core/types"
	"github.com/agent-api/ollama"
)

const captionPrompt = "Describe this image as a single line of short comma-separated phrases: " +
	"the main subject first, then setting, lighting and art style qualifiers last."

// AgentCaptioner captions frames through an Ollama-hosted vision model.
type AgentCaptioner struct {
	agent *agent.DefaultAgent
}

// NewAgentCaptioner initializes the vision agent against a local Ollama
// instance. It fails fast when Ollama is not reachable.
func NewAgentCaptioner(ctx context.Context, logger *slog.Logger, baseURL string, port int, model string) (*AgentCaptioner, error) {
	// Check if Ollama is running
	if _, err := exec.Command("curl", "-s", fmt.Sprintf("%s:%d/api/tags", baseURL, port)).Output(); err != nil {
		return nil, fmt.Errorf("ollama is not reachable at %s:%d: %w", baseURL, port, err)
	}

	opts := &ollama.ProviderOpts{
		Logger:  logger,
		BaseURL: baseURL,
		Port:    port,
	}
	provider := ollama.NewProvider(opts)

	provider.UseModel(ctx, &types.Model{ID: model})

	agentConf := &agent.NewAgentConfig{
		Provider:     provider,
		Logger:       logger,
		SystemPrompt: "You are a visual analysis assistant that describes images the way an image-generation prompt would read.",
	}

	return &AgentCaptioner{agent: agent.NewAgent(agentConf)}, nil
}

// Caption runs the vision model on one frame image.
func (c *AgentCaptioner) Caption(ctx context.Context, framePath string) (string, error) {
	response := c.agent.Run(
		ctx,
		agent.WithInput(captionPrompt),
		agent.WithImagePath(framePath),
	)
	if response.Err != nil {
		return "", &CaptionError{FramePath: framePath, Err: response.Err}
	}

	if len(response.Messages) == 0 {
		return "", &CaptionError{FramePath: framePath, Err: fmt.Errorf("no response messages received from model")}
	}

	// The last message is the model's reply, not the prompt.
	return response.Messages[len(response.Messages)-1].Content, nil
}
