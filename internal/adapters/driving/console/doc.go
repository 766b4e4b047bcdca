// Package console implements the line-oriented character creation flow.
//
// A Prompter asks for one field at a time and repeats the question until the
// answer is valid. A Menu drives the view/finalize/exit loop once the
// character exists, and a Session ties the two together over a
// driving.CharacterService.
//
// Everything reads from an io.Reader and writes to an io.Writer, so the
// whole flow can be exercised with scripted input.
package console
