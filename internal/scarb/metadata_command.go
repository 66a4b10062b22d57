package scarb

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cairotools/scarb-eject/pkg/eject"
)

// MetadataCommand builds and runs the `scarb metadata` query.
//
// The zero value is usable: it runs `scarb` from $SCARB or $PATH in the
// current directory, inheriting stderr so Scarb's own diagnostics stay
// visible to the user.
type MetadataCommand struct {
	// ScarbPath overrides the scarb executable. Empty means $SCARB, then
	// plain "scarb" resolved via $PATH.
	ScarbPath string

	// ManifestPath, when set, is passed as --manifest-path.
	ManifestPath string

	// Profile, when set, is passed as --profile.
	Profile string

	// Dir is the working directory for the subprocess. Empty means the
	// current directory.
	Dir string

	// Stderr receives Scarb's stderr. Nil means os.Stderr.
	Stderr io.Writer
}

// Executable returns the scarb executable this command will run.
func (c *MetadataCommand) Executable() string {
	if c.ScarbPath != "" {
		return c.ScarbPath
	}
	if env := os.Getenv("SCARB"); env != "" {
		return env
	}
	return "scarb"
}

// Args returns the full argument list passed to the scarb executable.
//
// `--json` puts Scarb in NDJSON output mode so the metadata document
// arrives as a single machine-readable line among status messages.
func (c *MetadataCommand) Args() []string {
	args := []string{"--json"}
	if c.Profile != "" {
		args = append(args, "--profile", c.Profile)
	}
	args = append(args, "metadata", "--format-version", strconv.Itoa(eject.MetadataFormatVersion))
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}
	return args
}

// Exec runs the metadata query and decodes the snapshot.
//
// All failures wrap eject.ErrMetadataFailed: a missing executable, a
// non-zero exit, output with no metadata document, or a document carrying
// an unsupported format version.
func (c *MetadataCommand) Exec(ctx context.Context) (*Metadata, error) {
	cmd := exec.CommandContext(ctx, c.Executable(), c.Args()...)
	cmd.Dir = c.Dir
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	} else {
		cmd.Stderr = os.Stderr
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: running %s: %v", eject.ErrMetadataFailed, c.Executable(), err)
	}

	meta, err := decodeMetadataOutput(&stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eject.ErrMetadataFailed, err)
	}
	return meta, nil
}

// decodeMetadataOutput scans NDJSON output for the metadata document: the
// first line that is a JSON object carrying a "version" pin. Status lines
// emitted by Scarb around it are skipped.
func decodeMetadataOutput(r io.Reader) (*Metadata, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var probe struct {
			Version *int `json:"version"`
		}
		if err := json.Unmarshal([]byte(line), &probe); err != nil || probe.Version == nil {
			continue
		}
		if *probe.Version != eject.MetadataFormatVersion {
			return nil, fmt.Errorf("unsupported metadata format version %d, expected %d",
				*probe.Version, eject.MetadataFormatVersion)
		}

		var meta Metadata
		if err := json.Unmarshal([]byte(line), &meta); err != nil {
			return nil, fmt.Errorf("decoding metadata document: %v", err)
		}
		return &meta, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scarb output: %v", err)
	}
	return nil, fmt.Errorf("scarb output contained no metadata document")
}
