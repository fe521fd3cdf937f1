// Package propedit builds mkvpropedit command lines.
//
// A Command accumulates property edits and attachment actions against one
// file. Edits are emitted as `--edit <selector>` followed by their actions;
// an edit with no actions emits nothing at all.
package propedit
