// Package naming converts identifier names into valid DOM element and
// attribute names.
//
// # Naming Convention
//
// The default convention is lowerCamelCase, matching common usage in XML
// formats such as SVG and Atom:
//
//	Banana      -> <banana>
//	MyPlaylist  -> <myPlaylist>
//	field_name  -> <fieldName>
//
// Word boundaries are detected at separators (underscore, hyphen,
// whitespace), lower-to-upper case transitions, the end of an acronym run,
// and digit/letter transitions. Separators are removed from the output.
//
// # Numeric Identifiers
//
// Tuple-style field indices ("0", "1", ...) are valid identifiers but not
// valid markup names, because element and attribute names cannot begin with
// a digit. These are prefixed with an underscore instead of being
// case-converted:
//
//	0 -> <_0>
//
// Only ASCII digits trigger this rule; digit characters from other scripts
// are left alone, since markup grammars only reject ASCII digits in the
// leading position.
//
// # Rename Overrides
//
// DOMKey resolves the final name for a field. An explicit rename (from a
// struct tag or a rename-all convention applied by the serializer) is used
// verbatim; the default convention is never applied on top of an override.
//
// # Performance
//
// ToElementName returns its input unmodified when the identifier is already
// in lowerCamelCase, so the common case allocates nothing.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use by
// multiple goroutines.
package naming
