// Package export writes playlists to playlist files.
//
// # Formats
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
//
// # Writing Playlists
//
//	w := export.NewWriter(&export.Config{
//	    Dir:       "/home/user/Videos/playlists",
//	    Format:    export.FormatM3U,
//	    Extended:  true,
//	    URLFormat: "https://videos.example.com/watch?v={id}",
//	})
//	path, err := w.Export(playlist, "")   // default format
//	path, err = w.Export(playlist, "pls") // explicit format
//
// ExportAll writes several playlists concurrently:
//
//	paths, err := w.ExportAll(ctx, playlists, "wpl")
//
// File names are derived from the playlist display name with characters
// that are invalid on common file systems replaced by underscores.
package export
