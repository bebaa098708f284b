package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// embeddingField is the document field holding similarity-search vectors.
// It is stripped from previews unless the caller asks for it.
const embeddingField = "embedding"

// DocumentPreview is a single document as rendered by a sample call.
type DocumentPreview struct {
	ID     string
	Fields map[string]any
}

// Sample is the result of previewing an index: the real total hit count plus
// at most the requested number of documents.
type Sample struct {
	Index     string
	Total     int
	Documents []DocumentPreview
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string         `json:"_id"`
			Source map[string]any `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SampleDocuments fetches up to limit documents from index with a match_all
// query. Embedding vectors are removed from every document, at any nesting
// depth, unless includeEmbedding is true. A missing index is reported as
// ErrIndexNotFound rather than an empty result.
func (c *Client) SampleDocuments(ctx context.Context, index string, limit int, includeEmbedding bool) (*Sample, error) {
	c.log.DebugContext(ctx, "sampling documents", "index", index, "limit", limit)

	exists, err := c.os.Indices.Exists(
		[]string{index},
		c.os.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	exists.Body.Close()
	if exists.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrIndexNotFound, index)
	}
	if exists.IsError() {
		return nil, classifyStatus(exists.StatusCode, exists.Status())
	}

	res, err := c.os.Search(
		c.os.Search.WithContext(ctx),
		c.os.Search.WithIndex(index),
		c.os.Search.WithSize(limit),
		c.os.Search.WithBody(strings.NewReader(`{"query":{"match_all":{}}}`)),
	)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, classifyStatus(res.StatusCode, res.Status())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, errors.Join(ErrUnexpectedResponse, err)
	}

	hits := sr.Hits.Hits
	if len(hits) > limit {
		hits = hits[:limit]
	}

	sample := &Sample{
		Index:     index,
		Total:     sr.Hits.Total.Value,
		Documents: make([]DocumentPreview, 0, len(hits)),
	}
	for _, hit := range hits {
		fields := hit.Source
		if !includeEmbedding {
			fields, _ = pruneFields(fields, embeddingField).(map[string]any)
		}
		sample.Documents = append(sample.Documents, DocumentPreview{
			ID:     hit.ID,
			Fields: fields,
		})
	}

	return sample, nil
}
