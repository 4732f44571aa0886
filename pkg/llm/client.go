// Package llm provides the client for the LLM sidecar service. The
// orchestrator talks to providers through one narrow contract: a list of
// role-tagged messages in, a streamed response out.
package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/TheSmartAz/instant-coffee-sub001/proto"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// StreamChunk is one streamed piece of a model response.
type StreamChunk struct {
	Content string
	IsFinal bool
	Error   string

	// Retryable marks provider errors worth retrying (rate limits,
	// transient upstream failures).
	Retryable bool
}

// Client is the provider contract used by graph nodes and task
// executors.
type Client interface {
	// ChatStream streams the response to one request.
	ChatStream(ctx context.Context, sessionID string, messages []Message) (<-chan StreamChunk, <-chan error)

	// Chat collects the full response text.
	Chat(ctx context.Context, sessionID string, messages []Message) (string, error)

	Close() error
}

// GRPCClient talks to the LLM sidecar over gRPC.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewGRPCClient dials the sidecar. Model parameters come from the
// environment: LLM_MODEL, LLM_TEMPERATURE, LLM_MAX_TOKENS.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "claude-sonnet-4-5"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	slog.Info("LLM client configured", "addr", addr, "model", model)

	return &GRPCClient{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ChatStream streams the response to one request.
func (c *GRPCClient) ChatStream(ctx context.Context, sessionID string, messages []Message) (<-chan StreamChunk, <-chan error) {
	chunks := make(chan StreamChunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		pbMessages := make([]*pb.Message, len(messages))
		for i, msg := range messages {
			var role pb.Message_Role
			switch msg.Role {
			case RoleSystem:
				role = pb.Message_ROLE_SYSTEM
			case RoleAssistant:
				role = pb.Message_ROLE_ASSISTANT
			default:
				role = pb.Message_ROLE_USER
			}
			pbMessages[i] = &pb.Message{
				Role:    role,
				Content: msg.Content,
			}
		}

		req := &pb.ChatRequest{
			SessionId:   sessionID,
			Messages:    pbMessages,
			Model:       c.model,
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		}

		stream, err := c.client.Chat(ctx, req)
		if err != nil {
			errs <- fmt.Errorf("failed to call Chat: %w", err)
			return
		}

		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				errs <- fmt.Errorf("stream error: %w", err)
				return
			}

			switch x := chunk.ChunkType.(type) {
			case *pb.ChatChunk_Content_:
				select {
				case chunks <- StreamChunk{
					Content: x.Content.Text,
					IsFinal: x.Content.IsFinal,
				}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			case *pb.ChatChunk_Error_:
				select {
				case chunks <- StreamChunk{
					Error:     x.Error.Message,
					Retryable: x.Error.Retryable,
				}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
		}
	}()

	return chunks, errs
}

// Chat collects the full response text for one request.
func (c *GRPCClient) Chat(ctx context.Context, sessionID string, messages []Message) (string, error) {
	chunks, errs := c.ChatStream(ctx, sessionID, messages)

	var sb strings.Builder
	for chunk := range chunks {
		if chunk.Error != "" {
			if chunk.Retryable {
				return "", fmt.Errorf("llm provider error (rate limit): %s", chunk.Error)
			}
			return "", fmt.Errorf("llm provider error: %s", chunk.Error)
		}
		sb.WriteString(chunk.Content)
	}
	if err := <-errs; err != nil {
		return "", err
	}
	return sb.String(), nil
}
