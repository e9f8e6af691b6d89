// Package monorepo resolves the shared root of a monorepo from any project
// directory inside it. The resolved Context carries the root manifest and
// lock file locations that redirected commands operate on.
package monorepo
