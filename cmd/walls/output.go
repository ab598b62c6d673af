package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shimeoki/wallpapers/internal/collection"
	"github.com/shimeoki/wallpapers/internal/format"
	"github.com/shimeoki/wallpapers/internal/models"
)

var outputFormatter format.Formatter = format.JSONFormatter{}

func writeJSON(payload any) error {
	return outputFormatter.Write(os.Stdout, payload)
}

func writePlain(format string, args ...any) error {
	_, err := fmt.Fprintf(os.Stdout, format, args...)
	return err
}

func writeEntryDetail(entry models.Entry) error {
	lines := []string{
		fmt.Sprintf("hash: %s", entry.Hash),
		fmt.Sprintf("extension: %s", entry.Extension),
		fmt.Sprintf("tags: %s", strings.Join(entry.Tags, ", ")),
	}
	if entry.Source != "" {
		lines = append(lines, fmt.Sprintf("source: %s", entry.Source))
	}
	return writePlain("%s\n", strings.Join(lines, "\n"))
}

func writeHashes(hashes []string) error {
	for _, hash := range hashes {
		if err := writePlain("%s\n", hash); err != nil {
			return err
		}
	}
	return nil
}

func writePaths(paths []string) error {
	for _, path := range paths {
		if err := writePlain("%s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// itemLine renders the line format fed to the fuzzy picker:
// "<path> <tag> <tag> ...".
func itemLine(item collection.Item) string {
	return strings.Join(append([]string{item.Path}, item.Tags...), " ")
}
