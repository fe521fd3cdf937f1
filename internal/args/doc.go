// Package args holds the primitives every command builder is made of.
//
// Builders implement Emitter and compose their children by concatenating
// the children's tokens in declaration order. Nothing here performs I/O;
// tokens are only materialised when a command is about to be executed or
// printed.
package args
