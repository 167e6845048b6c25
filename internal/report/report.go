// Package report renders a scanned VRT capture into a PDF summary with
// an embedded integrity QR code.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/voyager-tech-inc/vita49-go/internal/scan"
)

// Capture ties a scan summary to the file it came from.
type Capture struct {
	Path        string       `json:"path"`
	SizeBytes   int64        `json:"sizeBytes"`
	Sha256      string       `json:"sha256"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Summary     scan.Summary `json:"summary"`
}

// Build hashes the capture file and pairs it with the scan summary.
func Build(path string, sum scan.Summary) (Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Capture{}, err
	}
	defer f.Close()
	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return Capture{}, err
	}
	return Capture{
		Path:        path,
		SizeBytes:   n,
		Sha256:      hex.EncodeToString(h.Sum(nil)),
		GeneratedAt: time.Now().UTC(),
		Summary:     sum,
	}, nil
}

// SaveJSON writes the capture record next to its PDF rendering.
func SaveJSON(c Capture, out string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0644)
}
