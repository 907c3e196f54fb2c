package knowledge

import (
	"context"
	"errors"
	"testing"

	pb "github.com/kursovod/curator-bot/gen/knowledgepb"
	"google.golang.org/grpc"
)

// #region mock
type mockIndexService struct {
	pb.KnowledgeIndexClient

	queryResp *pb.QueryResponse
	queryErr  error

	statusResp *pb.StatusResponse
	statusErr  error
}

func (m *mockIndexService) Query(_ context.Context, _ *pb.QueryRequest, _ ...grpc.CallOption) (*pb.QueryResponse, error) {
	return m.queryResp, m.queryErr
}

func (m *mockIndexService) Status(_ context.Context, _ *pb.StatusRequest, _ ...grpc.CallOption) (*pb.StatusResponse, error) {
	return m.statusResp, m.statusErr
}

// #endregion mock

func TestQuery_Success(t *testing.T) {
	mock := &mockIndexService{
		queryResp: &pb.QueryResponse{
			Chunks: []*pb.Chunk{
				{Text: "RAG объединяет поиск и генерацию", Distance: 0.12, SourceId: "module1.md"},
				{Text: "Эмбеддинги кодируют смысл текста", Distance: 0.31, SourceId: "module2.md"},
			},
		},
	}
	c := NewClientWithService(mock)

	chunks, err := c.Query(context.Background(), "как работает RAG", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].SourceID != "module1.md" || chunks[0].Distance != 0.12 {
		t.Errorf("unexpected first chunk: %+v", chunks[0])
	}
}

func TestQuery_Error(t *testing.T) {
	c := NewClientWithService(&mockIndexService{queryErr: errors.New("unavailable")})

	if _, err := c.Query(context.Background(), "вопрос", 4); err == nil {
		t.Fatal("expected error")
	}
}

func TestReady(t *testing.T) {
	c := NewClientWithService(&mockIndexService{statusResp: &pb.StatusResponse{Ready: true, ChunkCount: 42}})

	ready, err := c.Ready(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ready {
		t.Error("expected ready index")
	}
}

func TestReady_Error(t *testing.T) {
	c := NewClientWithService(&mockIndexService{statusErr: errors.New("dial refused")})

	if _, err := c.Ready(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
