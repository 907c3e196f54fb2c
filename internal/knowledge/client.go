package knowledge

import (
	"context"
	"fmt"

	pb "github.com/kursovod/curator-bot/gen/knowledgepb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// Chunk is one retrieved span of course material with its vector distance.
type Chunk struct {
	Text     string
	Distance float64
	SourceID string
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the knowledge index sidecar.
// The sidecar owns document ingestion, chunking and embeddings; the bot only
// queries it.
type Client struct {
	conn   *grpc.ClientConn
	client pb.KnowledgeIndexClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to the knowledge index gRPC service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewKnowledgeIndexClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.KnowledgeIndexClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region query
// Query returns up to k chunks nearest to the query text, ordered by
// ascending vector distance as the index computed it.
func (c *Client) Query(ctx context.Context, text string, k int) ([]Chunk, error) {
	resp, err := c.client.Query(ctx, &pb.QueryRequest{
		QueryText: text,
		TopK:      int32(k),
	})
	if err != nil {
		return nil, fmt.Errorf("index query rpc: %w", err)
	}

	chunks := make([]Chunk, len(resp.Chunks))
	for i, ch := range resp.Chunks {
		chunks[i] = Chunk{
			Text:     ch.Text,
			Distance: ch.Distance,
			SourceID: ch.SourceId,
		}
	}
	return chunks, nil
}
// #endregion query

// #region ready
// Ready reports whether the index is built and queryable.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	resp, err := c.client.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return false, fmt.Errorf("index status rpc: %w", err)
	}
	return resp.Ready, nil
}
// #endregion ready
