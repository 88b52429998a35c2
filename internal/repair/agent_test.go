package repair

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coursegen/internal/llm"
)

// scriptedClient captures the prompt and replays a scripted response.
type scriptedClient struct {
	prompt   string
	response string
	err      error
}

func (c *scriptedClient) Invoke(_ context.Context, prompt string, _ llm.Options) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func TestRepairIncludesMalformedText(t *testing.T) {
	client := &scriptedClient{response: `{"fixed": true}`}
	agent := New(client)

	out, err := agent.Repair(context.Background(), `{"broken": `)
	require.NoError(t, err)
	assert.Equal(t, `{"fixed": true}`, out)
	assert.Contains(t, client.prompt, `{"broken": `)
	assert.Contains(t, client.prompt, "Return only the corrected JSON")
}

func TestRepairPropagatesModelError(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("overloaded")}
	agent := New(client)

	_, err := agent.Repair(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestRepairReturnsResponseVerbatim(t *testing.T) {
	// Fence stripping belongs to the extractor, not the agent.
	client := &scriptedClient{response: "```json\n{}\n```"}
	agent := New(client)

	out, err := agent.Repair(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{}\n```", out)
}
