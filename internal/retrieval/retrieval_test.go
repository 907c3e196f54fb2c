package retrieval

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kursovod/curator-bot/internal/knowledge"
)

// #region fake-index
type fakeIndex struct {
	ready    bool
	readyErr error
	chunks   []knowledge.Chunk
	queryErr error
	gotK     int
}

func (f *fakeIndex) Query(_ context.Context, _ string, k int) ([]knowledge.Chunk, error) {
	f.gotK = k
	return f.chunks, f.queryErr
}

func (f *fakeIndex) Ready(_ context.Context) (bool, error) {
	return f.ready, f.readyErr
}

// #endregion fake-index

// Keyword hits dominate; vector distance only breaks ties.
func TestRetrieveHitsDominateDistance(t *testing.T) {
	idx := &fakeIndex{
		ready: true,
		chunks: []knowledge.Chunk{
			{Text: "ничего общего с запросом", Distance: 0.1, SourceID: "a.md"},
			{Text: "устойчивое развитие и отчетность компании", Distance: 0.5, SourceID: "b.md"},
			{Text: "про развитие без второго термина", Distance: 0.2, SourceID: "c.md"},
		},
	}
	r := NewRetriever(idx, Config{TopK: 3, CandidateK: 12})

	got := r.Retrieve(context.Background(), "устойчивое развитие")

	var order []string
	for _, c := range got {
		order = append(order, c.SourceID)
	}
	want := []string{"b.md", "c.md", "a.md"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order: got %v, want %v", order, want)
	}
	if got[0].KeywordHits != 2 || got[1].KeywordHits != 1 || got[2].KeywordHits != 0 {
		t.Errorf("hit counts: got %d/%d/%d, want 2/1/0",
			got[0].KeywordHits, got[1].KeywordHits, got[2].KeywordHits)
	}
}

func TestRetrieveEqualHitsOrderedByDistance(t *testing.T) {
	idx := &fakeIndex{
		ready: true,
		chunks: []knowledge.Chunk{
			{Text: "модуль про ESG", Distance: 0.4, SourceID: "far.md"},
			{Text: "введение в ESG", Distance: 0.1, SourceID: "near.md"},
		},
	}
	r := NewRetriever(idx, Config{TopK: 2, CandidateK: 8})

	got := r.Retrieve(context.Background(), "ESG")
	if got[0].SourceID != "near.md" {
		t.Errorf("tie broken wrong: got %s first", got[0].SourceID)
	}
}

func TestRetrieveTruncatesToTopK(t *testing.T) {
	idx := &fakeIndex{ready: true}
	for i := 0; i < 10; i++ {
		idx.chunks = append(idx.chunks, knowledge.Chunk{Text: "текст", Distance: float64(i)})
	}
	r := NewRetriever(idx, Config{TopK: 4, CandidateK: 12})

	got := r.Retrieve(context.Background(), "запрос")
	if len(got) != 4 {
		t.Errorf("got %d chunks, want 4", len(got))
	}
	if idx.gotK != 12 {
		t.Errorf("candidate fetch used k=%d, want 12", idx.gotK)
	}
}

func TestRetrieveEmptyOrBrokenIndex(t *testing.T) {
	tests := []struct {
		name string
		idx  *fakeIndex
	}{
		{"not-ready", &fakeIndex{ready: false}},
		{"status-error", &fakeIndex{readyErr: errors.New("unavailable")}},
		{"query-error", &fakeIndex{ready: true, queryErr: errors.New("rpc failed")}},
		{"no-candidates", &fakeIndex{ready: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetriever(tt.idx, DefaultConfig())
			if got := r.Retrieve(context.Background(), "вопрос"); len(got) != 0 {
				t.Errorf("got %d chunks, want empty", len(got))
			}
		})
	}
}

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"cyrillic", "Как работает RAG?", []string{"как", "работает", "rag"}},
		{"drops-single-letter", "а что такое ESG", []string{"что", "такое", "esg"}},
		{"dedupes", "развитие развитие развитие", []string{"развитие"}},
		{"digits", "задание 5 модуля", []string{"задание", "модуля"}},
		{"empty", "  ?!  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryTerms(tt.query); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildContext(t *testing.T) {
	got := BuildContext([]RankedChunk{
		{Text: "первый фрагмент", SourceID: "m1.md"},
		{Text: "второй фрагмент"},
	})
	want := "[Фрагмент 1 из m1.md]\nпервый фрагмент\n\n[Фрагмент 2 из неизвестный источник]\nвторой фрагмент\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if BuildContext(nil) != "" {
		t.Error("empty chunks should render empty context")
	}
}
