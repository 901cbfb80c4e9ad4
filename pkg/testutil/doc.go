// Package testutil provides shared fixtures for testing themeup components.
//
// Key components:
//   - NewTestFS: in-memory filesystem backed by afero
//   - Environment: a config directory layout on top of NewTestFS with
//     helpers to place themes, templates and config files
//   - MonokaiTheme: a complete, valid theme document
//
// Tests that spawn processes (hooks) need real files and use t.TempDir()
// instead of this package.
package testutil
