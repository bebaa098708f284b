package search

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
)

// IndexSummary describes a single index as reported by the cat API.
type IndexSummary struct {
	Name      string
	DocsCount int
	SizeBytes int64
	Health    string
	Status    string
}

// catIndexRow mirrors one entry of the cat-indices JSON output, where every
// column arrives as a string.
type catIndexRow struct {
	Index     string `json:"index"`
	DocsCount string `json:"docs.count"`
	StoreSize string `json:"store.size"`
	Health    string `json:"health"`
	Status    string `json:"status"`
}

// ListIndices enumerates all indices on the cluster, sorted by name. Sizes
// are requested in bytes so callers can format them however they like.
func (c *Client) ListIndices(ctx context.Context) ([]IndexSummary, error) {
	c.log.DebugContext(ctx, "listing indices")

	res, err := c.os.Cat.Indices(
		c.os.Cat.Indices.WithContext(ctx),
		c.os.Cat.Indices.WithFormat("json"),
		c.os.Cat.Indices.WithBytes("b"),
	)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, classifyStatus(res.StatusCode, res.Status())
	}

	var rows []catIndexRow
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, errors.Join(ErrUnexpectedResponse, err)
	}

	summaries := make([]IndexSummary, 0, len(rows))
	for _, row := range rows {
		// Closed indices report no counts; zero is the sane rendering.
		docs, _ := strconv.Atoi(row.DocsCount)
		size, _ := strconv.ParseInt(row.StoreSize, 10, 64)
		summaries = append(summaries, IndexSummary{
			Name:      row.Index,
			DocsCount: docs,
			SizeBytes: size,
			Health:    row.Health,
			Status:    row.Status,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

	return summaries, nil
}
