// Package core runs one themeup invocation.
//
// Run moves through the stages
//
//	LoadConfig -> LoadTheme -> MergeVariables -> RenderTemplates -> RunHooks
//
// A failure in the first three stages is fatal and returned as an error
// before anything is written. Template and hook failures are collected in
// the Result and never stop the run.
package core
