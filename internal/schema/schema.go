// Package schema provides the host implementations behind the shim's
// collaborator interfaces. It wraps the (Unix-based) operating system's stat
// family and projects its results into the narrow and wide record shapes,
// and wraps the few plain syscalls needed to resolve directory handles.
package schema
