// Package config resolves OpenSearch connection settings from the process
// environment, with an optional .env file as fallback for variables the
// environment does not set.
//
// Three input shapes are accepted, tried in order:
//
//  1. OPENSEARCH_URL holding a JSON object such as
//     {"endpoint": "https://search.example.com:9200", "username": "admin", "password": "secret"}.
//     TLS is always enabled for this shape.
//
//  2. OPENSEARCH_URL holding a bare URL, used as-is without credentials.
//     An https scheme enables TLS.
//
//  3. OPENSEARCH_HOST plus optional OPENSEARCH_PORT (default 9200),
//     OPENSEARCH_USERNAME and OPENSEARCH_PASSWORD, composed into a plain
//     http endpoint.
//
// All shapes normalize into the same Connection value, so any two shapes
// describing the same cluster resolve identically. When no shape yields an
// endpoint, Resolve fails with ErrNoEndpoint before any network activity.
package config
