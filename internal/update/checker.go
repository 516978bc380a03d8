// Package update checks for newer faspi releases.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	oerrors "github.com/faspi/cli/internal/errors"
)

// DefaultURL is the releases endpoint queried when none is configured.
const DefaultURL = "https://api.github.com/repos/faspi/cli/releases/latest"

// VersionInfo describes the latest published release.
type VersionInfo struct {
	Version string
	URL     string
	Date    time.Time
}

// Checker fetches the latest release.
type Checker interface {
	CheckLatest(ctx context.Context) (*VersionInfo, error)
}

// releaseResponse is the subset of the GitHub release JSON faspi reads.
type releaseResponse struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

type checker struct {
	apiURL string
	client *http.Client
}

// NewChecker creates a Checker that queries apiURL. A nil client uses a
// client with a 10s timeout.
func NewChecker(apiURL string, client *http.Client) Checker {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &checker{apiURL: apiURL, client: client}
}

// CheckLatest implements Checker.
func (c *checker) CheckLatest(ctx context.Context) (*VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, oerrors.WrapNetwork(err, "checker: create request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "faspi-cli")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, oerrors.WrapNetwork(err, "checker: request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, oerrors.WrapNetwork(fmt.Errorf("unexpected status %d", resp.StatusCode), "checker")
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, oerrors.WrapNetwork(err, "checker: decode response")
	}
	if release.TagName == "" {
		return nil, oerrors.WrapNetwork(errors.New("response has no tag_name"), "checker")
	}

	return &VersionInfo{
		Version: release.TagName,
		URL:     release.HTMLURL,
		Date:    release.PublishedAt,
	}, nil
}

// CompareSemver compares two semantic versions with optional "v" prefixes.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareSemver(a, b string) int {
	aParts := parseSemverParts(strings.TrimPrefix(a, "v"))
	bParts := parseSemverParts(strings.TrimPrefix(b, "v"))

	for i := range 3 {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseSemverParts extracts [major, minor, patch] from a version string.
func parseSemverParts(v string) [3]int {
	var parts [3]int
	for i, seg := range strings.SplitN(v, ".", 3) {
		// Strip any pre-release suffix (e.g., "1-beta").
		if idx := strings.IndexAny(seg, "-+"); idx >= 0 {
			seg = seg[:idx]
		}
		if n, err := strconv.Atoi(seg); err == nil {
			parts[i] = n
		}
	}
	return parts
}
