// Package search provides a lightweight wrapper around the official OpenSearch
// Go client exposing the two read-only operations the CLI needs: enumerating
// indices and previewing documents.
//
// The package builds on github.com/opensearch-project/opensearch-go/v2 and
// keeps its surface deliberately small:
//
//   - Config – connection settings, typically derived from the resolved
//     environment via internal/config.
//
//   - New – constructs a ready-to-use *Client. Construction performs no
//     network calls; a one-shot invocation pays for exactly one round trip.
//
//   - Client.ListIndices / Client.SampleDocuments – the two cluster
//     operations, both context-aware and single-shot (no retries, no
//     pagination, no caching).
//
//   - Client.Ping – cluster reachability probe, useful for diagnostics.
//
// Connectivity problems are exposed as ErrConnectionFailed, a missing index
// as ErrIndexNotFound, and anything else the cluster rejects as
// ErrUnexpectedResponse, so callers can distinguish the failure classes with
// the standard errors.Is helper.
package search
