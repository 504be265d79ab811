// Package inflect provides English pluralization, locale-aware count
// formatting and ASCII transliteration for user-facing strings.
//
// Pluralize and Singularize apply a small English rule set (irregular words,
// uncountable nouns and suffix rules) and keep the case of the first letter:
//
//	inflect.Pluralize("Category") // "Categories"
//	inflect.Singularize("people") // "person"
//
// Count selects the singular or plural form using CLDR cardinal rules from
// golang.org/x/text/feature/plural, so languages without a "one" category
// always receive the plural form:
//
//	inflect.Count(language.English, 1, "entry", "entries") // "1 entry"
//	inflect.Count(language.English, 3, "entry", "entries") // "3 entries"
//
// ToASCII decomposes a string with Unicode NFD, drops combining marks and maps
// the remaining non-decomposable letters (ß, æ, ø, ł, þ, …) through a
// transliteration table. Characters with no ASCII equivalent are removed.
package inflect
