// Package rewrite converts path dependencies between monorepo projects into
// version constraints at build time. It applies the configured rewrite rule
// to each sibling's declared version and materializes a temporary manifest,
// restoring the original file content on every exit path.
package rewrite
