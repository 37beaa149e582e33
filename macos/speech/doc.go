// Package speech provides macOS text-to-speech helpers.
//
// Say speaks text through the system synthesizer (or renders it to an audio
// file via SaveTo). Voices lists the installed voices by querying the say
// command, so scripts can pick a Voice.Name to pass to Say.
package speech
