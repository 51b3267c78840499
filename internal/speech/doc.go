// Package speech plays spoken phrases aloud.
//
// The PlayHT implementation streams synthesised MP3 audio from the PlayHT
// API into a local decoder and plays it through the system speaker. Playback
// is fire-and-forget: starting a new utterance cancels whatever is still
// playing, and failures are logged rather than returned, so the calculation
// flow never blocks on audio.
package speech
