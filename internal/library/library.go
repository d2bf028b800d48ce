package library

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/handiism/video-player/internal/model"
)

//go:embed videos.txt
var defaultCatalog []byte

var (
	// ErrDuplicateID is returned when two catalog lines share a video id.
	ErrDuplicateID = errors.New("duplicate video id")

	// ErrMalformedLine is returned when a catalog line is not "title | id | tags".
	ErrMalformedLine = errors.New("malformed catalog line")
)

// Catalog is the read-only view of the video library used by the player.
type Catalog interface {
	// Video returns the video with the exact id, or false if there is none.
	Video(id string) (*model.Video, bool)

	// Videos returns every video in catalog order. The slice belongs to the
	// caller and may be reordered.
	Videos() []*model.Video
}

// Library is an in-memory Catalog populated once at load time.
type Library struct {
	videos []*model.Video
	byID   map[string]*model.Video
}

// record is one catalog line: "Funny Dogs | funny_dogs_video_id | #dog , #animal".
type record struct {
	Title string `csv:"title"`
	ID    string `csv:"id"`
	Tags  string `csv:"tags"`
}

// New builds a Library from already constructed videos.
func New(videos ...*model.Video) (*Library, error) {
	lib := &Library{
		videos: make([]*model.Video, 0, len(videos)),
		byID:   make(map[string]*model.Video, len(videos)),
	}
	for _, v := range videos {
		if _, ok := lib.byID[v.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
		}
		lib.videos = append(lib.videos, v)
		lib.byID[v.ID] = v
	}
	return lib, nil
}

// Default returns a Library holding the built-in catalog.
func Default() (*Library, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog file. An empty path loads the built-in catalog.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	lib, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return lib, nil
}

// Parse reads catalog lines of the form "title | id | tag, tag".
//
// Whitespace around fields and tags is trimmed; the tag field may be empty.
// Blank lines are skipped.
func Parse(r io.Reader) (*Library, error) {
	reader := &lineReader{Reader: csv.NewReader(r)}
	reader.Comma = '|'
	reader.FieldsPerRecord = 3
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records []record
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return New()
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, parseErr.Line, parseErr.Err)
		}
		return nil, err
	}

	videos := make([]*model.Video, 0, len(records))
	for i, rec := range records {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: line %d: empty video id", ErrMalformedLine, reader.lines[i])
		}
		videos = append(videos, model.NewVideo(id, strings.TrimSpace(rec.Title), splitTags(rec.Tags)))
	}

	return New(videos...)
}

// lineReader is the gocsv.CSVReader used for catalogs. It remembers the
// input line of every record, since blank lines are skipped.
type lineReader struct {
	*csv.Reader
	lines []int
}

func (r *lineReader) Read() ([]string, error) {
	fields, err := r.Reader.Read()
	if err == nil {
		line, _ := r.FieldPos(0)
		r.lines = append(r.lines, line)
	}
	return fields, err
}

func (r *lineReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, fields)
	}
}

// Video returns the video with the given id.
func (l *Library) Video(id string) (*model.Video, bool) {
	v, ok := l.byID[id]
	return v, ok
}

// Videos returns all videos in catalog order.
func (l *Library) Videos() []*model.Video {
	return append([]*model.Video(nil), l.videos...)
}

// Len returns the number of videos in the library.
func (l *Library) Len() int {
	return len(l.videos)
}

func splitTags(field string) []string {
	var tags []string
	for _, tag := range strings.Split(field, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
