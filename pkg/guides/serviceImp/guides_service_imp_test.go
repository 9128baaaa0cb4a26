package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

// stubRepo is an in-memory GuideRepository for service-level tests.
type stubRepo struct {
	docs   []entities.GuideDoc
	chunks []entities.GuideChunk
}

func (r *stubRepo) CreateDoc(d *entities.GuideDoc) error {
	d.DocID = uint(len(r.docs) + 1)
	r.docs = append(r.docs, *d)
	return nil
}

func (r *stubRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	for i := range cs {
		cs[i].ChunkID = uint(len(r.chunks) + 1)
		r.chunks = append(r.chunks, cs[i])
	}
	return nil
}

func (r *stubRepo) AllChunks() ([]entities.GuideChunk, error) { return r.chunks, nil }

func (r *stubRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	out := map[uint]entities.GuideDoc{}
	for _, d := range r.docs {
		for _, id := range ids {
			if d.DocID == id {
				out[d.DocID] = d
			}
		}
	}
	return out, nil
}

func TestChunkTextParagraphAligned(t *testing.T) {
	para := strings.Repeat("x", 400) + "\n"
	text := para + para + para

	chunks := chunkText(text, 500)

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasSuffix(chunks[0], "\n"), "split lands on a newline")
	assert.Equal(t, text, strings.Join(chunks, ""), "chunking loses no text")
}

func TestChunkTextShortInput(t *testing.T) {
	chunks := chunkText("just one paragraph", 1000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "just one paragraph", chunks[0])

	assert.Empty(t, chunkText("", 1000))
}

func TestUpsertDocument(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	text := strings.Repeat("tomato pruning advice\n", 100)
	doc, n, err := svc.UpsertDocument("Pruning Tomatoes", "tomato,pruning", text, "https://example.org/guide")
	require.NoError(t, err)
	assert.NotZero(t, doc.DocID)
	assert.Greater(t, n, 1)
	require.Len(t, repo.chunks, n)
	for i, ch := range repo.chunks {
		assert.Equal(t, doc.DocID, ch.DocID)
		assert.Equal(t, i, ch.Ord)
	}
}

func TestSearchRanksByTermCount(t *testing.T) {
	repo := &stubRepo{chunks: []entities.GuideChunk{
		{ChunkID: 1, Text: "water deeply once a week"},
		{ChunkID: 2, Text: "tomato blight: remove tomato leaves, avoid wetting tomato foliage"},
		{ChunkID: 3, Text: "tomato cages versus stakes"},
	}}
	svc := New(repo)

	got, err := svc.Search("Tomato", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ChunkID, "three mentions outrank one")
	assert.Equal(t, uint(3), got[1].ChunkID)
}

func TestSearchLimitsAndEdgeCases(t *testing.T) {
	repo := &stubRepo{chunks: []entities.GuideChunk{
		{ChunkID: 1, Text: "mulch everything"},
		{ChunkID: 2, Text: "mulch the beds, mulch the paths"},
	}}
	svc := New(repo)

	got, err := svc.Search("mulch", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ChunkID)

	got, err = svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Search("mulch", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Search("nothing matches this", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
