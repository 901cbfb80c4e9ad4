// Package filesystem provides filesystem implementations for themeup.
//
// This package contains the FS interface used by the theme, template and
// config loaders, its OS and afero-backed implementations, and the typed
// read/write errors that classify I/O failures for user-facing messages.
package filesystem
