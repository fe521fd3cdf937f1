// Package extract builds mkvextract command lines.
//
// A command names one source file followed by any number of extraction
// modes. Each mode is written as its name, its options, then its targets.
package extract
