package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/video-player/internal/model"
)

// ErrUnknownFormat is returned for a format name that is not m3u, pls, wpl or zpl.
var ErrUnknownFormat = errors.New("unknown playlist format")

// Format represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type Format int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines carrying the video title.
	FormatM3U Format = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// Formats lists every supported format.
var Formats = []Format{FormatM3U, FormatPLS, FormatWPL, FormatZPL}

// ParseFormat converts a format name ("m3u", "pls", "wpl", "zpl", any case)
// to a Format.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats {
		if f.String() == normalized {
			return f, nil
		}
	}
	return FormatM3U, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// String returns the lower case format name.
func (f Format) String() string {
	return strings.TrimPrefix(f.Extension(), ".")
}

// entry is one playable line of an exported playlist.
type entry struct {
	title    string
	location string
}

// snapshot is an immutable copy of a playlist taken before rendering.
type snapshot struct {
	name    string
	entries []entry
}

// render generates playlist content in the given format.
func (w *Writer) render(s snapshot, format Format) string {
	switch format {
	case FormatPLS:
		return w.createPLS(s)
	case FormatWPL:
		return w.createWPL(s)
	case FormatZPL:
		return w.createZPL(s)
	default:
		return w.createM3U(s)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Amazing Cats
//	https://videos.example.com/watch?v=amazing_cats_video_id
func (w *Writer) createM3U(s snapshot) string {
	var sb strings.Builder

	if w.cfg.Extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, e := range s.entries {
		if w.cfg.Extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", e.title))
		}
		sb.WriteString(e.location + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist. Video lengths are unknown, so every
// entry has Length -1.
func (w *Writer) createPLS(s snapshot) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, e := range s.entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, e.location))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, e.title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(s.entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

func (w *Writer) createWPL(s snapshot) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(s.name)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, e := range s.entries {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(e.location)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL is WPL with an item count and per-entry titles.
func (w *Writer) createZPL(s snapshot) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(s.name)))
	sb.WriteString("    <meta name=\"Generator\" content=\"VideoPlayer\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(s.entries)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, e := range s.entries {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" trackTitle=\"%s\"/>\n",
			escapeXML(e.location),
			escapeXML(e.title)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// takeSnapshot copies what rendering needs out of a playlist. Flagged videos
// are left out.
func (w *Writer) takeSnapshot(p *model.Playlist) snapshot {
	s := snapshot{name: p.Name}
	for _, v := range p.Videos() {
		if v.Flagged {
			continue
		}
		s.entries = append(s.entries, entry{
			title:    v.Title,
			location: strings.ReplaceAll(w.cfg.URLFormat, "{id}", v.ID),
		})
	}
	return s
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
