// Package identification models the JSON document printed by
// `mkvmerge --identify -J <file>`.
//
// Numeric UIDs may be encoded as JSON numbers or strings and are held as
// arbitrary-precision integers. Durations are integer nanoseconds and
// dimensions are "WxH" strings. After decoding, every track is linked back to
// its FileIdentification and given its 1-based position in the track list.
package identification
