// Package lexpath implements lexical, filesystem-independent path
// processing for both the POSIX and Windows path grammars.
//
// All operations are pure functions over immutable component sequences:
// parsing, normalization, joining, relativization, root-restricted
// joining, and containment checks never touch the filesystem. The target
// grammar is an explicit runtime parameter, so both grammars are testable
// in a single process regardless of the host OS.
package lexpath
