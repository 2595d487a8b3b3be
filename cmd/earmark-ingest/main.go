// Command earmark-ingest loads audio files into the earmark article store.
//
// Title comes from the -title flag, else from the file's embedded tags,
// else from the file name. Handles are generated unless -handle is given;
// re-ingesting an existing handle replaces the stored audio.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/google/uuid"

	"github.com/llehouerou/earmark/internal/config"
	"github.com/llehouerou/earmark/internal/device"
	"github.com/llehouerou/earmark/internal/errmsg"
	"github.com/llehouerou/earmark/internal/store"
)

func main() {
	title := flag.String("title", "", "article title (single file only; default: embedded tags, then file name)")
	handle := flag.String("handle", "", "article handle (single file only; default: generated)")
	dataDir := flag.String("data-dir", "", "article database directory (default: config, then XDG data dir)")
	flag.Usage = usage
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(2)
	}
	if len(files) > 1 && (*title != "" || *handle != "") {
		log.Fatalf("-title and -handle apply to a single file, got %d files", len(files))
	}

	st, err := openStore(*dataDir)
	if err != nil {
		log.Fatalf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	defer st.Close()

	failed := 0
	for _, path := range files {
		article, err := buildArticle(path, *title, *handle)
		if err != nil {
			log.Printf("%s", errmsg.FormatWith(errmsg.OpImportFile, path, err))
			failed++
			continue
		}

		if err := st.SaveArticles([]store.Article{article}); err != nil {
			log.Printf("%s", errmsg.FormatWith(errmsg.OpImportFile, path, err))
			failed++
			continue
		}

		log.Printf("%s -> %s (%s, %.0fs)", filepath.Base(path), article.Handle, article.Title, article.DurationSecs)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] file...\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(out, "Loads audio files (mp3, flac, ogg, wav) into the article store.")
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

// openStore resolves the database location the same way the player does,
// so both tools share one store: flag, then config, then the XDG default.
func openStore(flagDir string) (*store.Manager, error) {
	dir := flagDir
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dir = cfg.DataDir
	}
	if dir != "" {
		return store.OpenAt(dir)
	}
	return store.Open()
}

// buildArticle reads one audio file into a store row.
func buildArticle(path, titleOverride, handleOverride string) (store.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Article{}, err
	}

	mimeType, err := mimeTypeForPath(path)
	if err != nil {
		return store.Article{}, err
	}

	// Decoding the whole blob up front also proves the player will be
	// able to decode it later.
	duration, err := device.Probe(data, mimeType)
	if err != nil {
		return store.Article{}, err
	}

	title := titleOverride
	if title == "" {
		title = titleFromTags(path)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	handle := handleOverride
	if handle == "" {
		handle = uuid.New().String()
	}

	return store.Article{
		Handle:       store.Handle(handle),
		Title:        title,
		MIMEType:     mimeType,
		DurationSecs: duration,
		Audio:        data,
	}, nil
}

// titleFromTags returns the embedded title, or "" when the file carries
// no usable tags.
func titleFromTags(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if !errors.Is(err, tag.ErrNoTagsFound) {
			log.Printf("%s", errmsg.FormatWith(errmsg.OpImportTags, path, err))
		}
		return ""
	}
	return m.Title()
}

// mimeTypeForPath maps a file extension to the MIME type stored with the
// article. Only formats the playback device can decode are accepted.
func mimeTypeForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return "audio/mpeg", nil
	case ".flac":
		return "audio/flac", nil
	case ".ogg", ".oga":
		return "audio/ogg", nil
	case ".wav":
		return "audio/wav", nil
	default:
		return "", fmt.Errorf("unsupported format: %s", ext)
	}
}
