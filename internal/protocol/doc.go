// Package protocol assembles the full codec pipeline.
//
// Ownership boundary:
// - frame layout (length prefix, message bytes, integrity check byte)
// - encode orchestration: text -> nibbles -> Hamming blocks -> grid
// - decode orchestration: grid -> orientation -> blocks -> text
//
// Image acquisition, module classification, and pixel rendering are
// external collaborators; the annotated grid is the only wire format.
package protocol
