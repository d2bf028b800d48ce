// Package model defines the core data structures used throughout
// the video-player application.
//
// # Video
//
// Video is a catalog entry with a title, tags and a flag state:
//
//	video := model.NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"})
//	fmt.Println(video)           // Funny Dogs (funny_dogs_video_id) [#dog #animal]
//	_ = video.Flag("")           // reason becomes "Not supplied"
//	fmt.Println(video)           // ... - FLAGGED (reason: Not supplied)
//
// # Playlist
//
// Playlist is a named ordered collection of videos without duplicates:
//
//	playlist := model.NewPlaylist("My Playlist")
//	err := playlist.Add(video) // ErrAlreadyAdded on the second call
//	err = playlist.Remove(video.ID)
//
// Playlist names are compared case-insensitively through NameKey.
package model
