// Package pathutil guards user-supplied relative paths against directory
// traversal before they are resolved against a storage root.
//
// IsContained is a purely lexical check: it splits the path on "/" and "\",
// tracks the depth reached by every segment and reports false as soon as a
// ".." segment climbs above the starting directory. It never touches the
// filesystem, does not resolve symlinks and does not decode percent-encoded
// separators, so it must run after URL decoding and before real path
// resolution.
//
//	pathutil.IsContained("a/b/../c")  // true
//	pathutil.IsContained("a/../../b") // false
//	pathutil.IsContained("")          // true
//
// SecureJoin combines the lexical check with filepath.Join and a final
// filepath.Rel verification, returning a path that is guaranteed to stay
// under root. SanitizeFilename turns arbitrary user input into a single safe
// path segment.
//
// # Error Handling
//
// Callers must treat a false result, ErrPathNotContained or ErrAbsolutePath as
// "reject the request". Empty input is contained; callers needing to reject
// empty paths must check separately.
package pathutil
