// Package command turns text lines into player operations.
//
// A line is a command word followed by whitespace-separated arguments.
// Command words are case-insensitive; arguments are passed through as typed.
//
//	d := command.New(ctrl, player.WriterHandler(os.Stdout))
//	if err := d.Execute("PLAY amazing_cats_video_id"); errors.Is(err, command.ErrExit) {
//	    // EXIT or QUIT was entered
//	}
//
// Only the command word is split off; playlist names, search terms and flag
// reasons are taken from the rest of the line as typed, so inner spacing is
// kept ("CREATE_PLAYLIST My  List" and "CREATE_PLAYLIST My List" are two
// playlists). For ADD_TO_PLAYLIST and REMOVE_FROM_PLAYLIST the last word is
// the video id and everything before it is the playlist name.
// EXPORT_PLAYLIST takes an optional trailing format name.
//
// Unknown commands and wrong argument counts are reported as warnings
// through the handler and never reach the player.
package command
