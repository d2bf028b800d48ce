// Package player implements the video player session: playback state,
// playlists, search and flagging.
//
// # Controller
//
// A Controller is created over a catalog and an output Handler:
//
//	lib, _ := library.Default()
//	ctrl := player.New(lib, player.WriterHandler(os.Stdout))
//	ctrl.Play("amazing_cats_video_id") // Playing video: Amazing Cats
//	ctrl.Pause()                       // Pausing video: Amazing Cats
//	ctrl.ShowPlaying()                 // Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED
//
// Every operation reports its outcome as one or more Events. Rejected
// operations are reported at LevelWarning and leave the state unchanged.
//
// # Playback States
//
//	idle --Play--> playing --Pause--> paused --Continue--> playing
//	playing/paused --Stop--> idle
//
// # Injected Collaborators
//
//   - Chooser answers the "play any of the above?" prompt after a search
//     (NewLineChooser reads it from a terminal, NoChoice never selects)
//   - Randomizer picks the video for PlayRandom (*rand.Rand works)
//   - Exporter writes playlist files (*export.Writer)
package player
