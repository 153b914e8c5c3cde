// Command cuetone scans an HLS playlist for #EXT-X-SCTE35 tags, decodes each
// embedded SCTE-35 splice_info_section, and prints the decoded cues as a JSON
// array. Reads the playlist from the file given as the first argument, or
// from stdin.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/cuetone/hlstag"
	"github.com/zsiec/cuetone/scte35"
)

var version = "dev"

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var in io.Reader = os.Stdin
	source := "stdin"
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			slog.Error("failed to open playlist", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
		source = os.Args[1]
	}

	slog.Info("cuetone starting", "version", version, "source", source)

	tags, err := collectTags(in)
	if err != nil {
		slog.Error("failed to read playlist", "error", err)
		os.Exit(1)
	}
	slog.Info("playlist scanned", "cue_tags", len(tags))

	// Decode concurrently; results keep playlist order.
	results := make([]map[string]any, len(tags))
	var g errgroup.Group
	for i, line := range tags {
		i, line := i, line
		g.Go(func() error {
			tag, err := hlstag.Parse(line)
			if err != nil {
				return fmt.Errorf("cue tag %d: %w", i+1, err)
			}
			warnOnBadCRC(i+1, line)
			results[i] = tag.Cue().AsMap()
			slog.Debug("decoded cue",
				"tag", i+1,
				"command_type", tag.Cue().Command().Type(),
				"descriptors", len(tag.Cue().Descriptors()),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("decoding failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		slog.Error("failed to serialize cues", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func collectTags(in io.Reader) ([]string, error) {
	var tags []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#EXT-X-SCTE35:") {
			tags = append(tags, line)
		}
	}
	return tags, scanner.Err()
}

// warnOnBadCRC flags sections whose trailing CRC32 does not match. Decoding
// does not gate on the CRC, so this is advisory only.
func warnOnBadCRC(n int, line string) {
	attrs, err := hlstag.Attributes(line)
	if err != nil {
		return
	}
	payload, err := base64.StdEncoding.DecodeString(attrs["CUE"])
	if err != nil {
		return
	}
	if err := scte35.VerifyCRC32(payload); err != nil {
		slog.Warn("cue CRC mismatch", "tag", n, "error", err)
	}
}
