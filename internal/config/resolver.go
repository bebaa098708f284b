package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Connection is the normalized connection descriptor produced by Resolve.
// It is constructed once per invocation and never mutated afterwards.
type Connection struct {
	Endpoint        string // scheme://host:port
	Username        string
	Password        string
	InsecureSkipTLS bool
}

// rawEnv mirrors the supported environment variables before normalization.
// Port stays a string so a malformed value surfaces as ErrInvalidEndpoint
// rather than a generic parse failure, and InsecureTLS stays a string so
// any non-empty value enables the switch.
type rawEnv struct {
	URL         string `env:"OPENSEARCH_URL"`
	Host        string `env:"OPENSEARCH_HOST"`
	Port        string `env:"OPENSEARCH_PORT"`
	Username    string `env:"OPENSEARCH_USERNAME"`
	Password    string `env:"OPENSEARCH_PASSWORD"`
	InsecureTLS string `env:"OPENSEARCH_INSECURE_TLS"`
}

func (r rawEnv) insecureTLS() bool { return r.InsecureTLS != "" }

// urlSpec is the JSON object shape accepted in OPENSEARCH_URL.
type urlSpec struct {
	Endpoint string `json:"endpoint"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Resolve reads the environment (falling back to a local .env file for
// variables the environment omits) and normalizes it into a Connection.
// Shapes are tried in order: JSON object in OPENSEARCH_URL, bare URL in
// OPENSEARCH_URL, then OPENSEARCH_HOST/OPENSEARCH_PORT composition.
func Resolve() (Connection, error) {
	// Missing .env is fine; godotenv never overwrites variables already
	// present in the environment, so the process environment always wins.
	_ = godotenv.Load()

	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		return Connection{}, errors.Join(ErrParsingEnv, err)
	}

	if raw.URL != "" {
		if conn, ok, err := fromJSON(raw.URL, raw.insecureTLS()); ok {
			return conn, err
		}
		return fromBareURL(raw.URL, raw.insecureTLS())
	}
	return fromHostPort(raw)
}

// fromJSON handles the structured shape. The second return value reports
// whether OPENSEARCH_URL was recognized as this shape at all; when it is
// false the caller falls through to bare-URL parsing.
func fromJSON(raw string, insecure bool) (Connection, bool, error) {
	var spec urlSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil || spec.Endpoint == "" {
		return Connection{}, false, nil
	}

	u, err := url.Parse(spec.Endpoint)
	if err != nil || u.Hostname() == "" {
		return Connection{}, true, fmt.Errorf("%w: %q", ErrInvalidEndpoint, spec.Endpoint)
	}

	port := u.Port()
	if port == "" {
		port = "443"
	}

	// The structured shape always describes a TLS-protected cluster.
	return Connection{
		Endpoint:        "https://" + net.JoinHostPort(u.Hostname(), port),
		Username:        spec.Username,
		Password:        spec.Password,
		InsecureSkipTLS: insecure,
	}, true, nil
}

func fromBareURL(raw string, insecure bool) (Connection, error) {
	s := raw
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return Connection{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Connection{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}

	port := u.Port()
	if port == "" {
		port = "9200"
	}

	return Connection{
		Endpoint:        u.Scheme + "://" + net.JoinHostPort(u.Hostname(), port),
		InsecureSkipTLS: insecure,
	}, nil
}

func fromHostPort(raw rawEnv) (Connection, error) {
	if raw.Host == "" {
		return Connection{}, ErrNoEndpoint
	}

	port := raw.Port
	if port == "" {
		port = "9200"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return Connection{}, fmt.Errorf("%w: port %q is not a number", ErrInvalidEndpoint, raw.Port)
	}

	// IPv6 literals may arrive with or without brackets; JoinHostPort
	// re-adds them either way.
	host := strings.Trim(raw.Host, "[]")

	return Connection{
		Endpoint:        "http://" + net.JoinHostPort(host, port),
		Username:        raw.Username,
		Password:        raw.Password,
		InsecureSkipTLS: raw.insecureTLS(),
	}, nil
}
