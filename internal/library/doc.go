// Package library provides the static video catalog.
//
// A catalog is a text file with one video per line:
//
//	Funny Dogs | funny_dogs_video_id |  #dog , #animal
//	Video about nothing | nothing_video_id |
//
// Fields are separated by "|" and tags by ",". A default catalog is embedded
// in the binary:
//
//	lib, err := library.Load("")            // built-in catalog
//	lib, err = library.Load("/path/videos.txt")
//	video, ok := lib.Video("funny_dogs_video_id")
//
// The catalog never changes after loading; only the flag state of the
// videos it holds is mutated, by the player.
package library
