// Package pipeline implements the notebook-to-HTML conversion stages:
//   - Markdown cell rendering (LegacyRenderer by default, GoldmarkRenderer opt-in)
//   - Code cell rendering (ClientHighlighter by default, ChromaHighlighter opt-in)
//   - Cell assembly into ordered body fragments, with output blocks
//   - Relative path rewriting in markdown fragments
//   - Post and index page composition from text/template skeletons
//
// Reading notebooks is handled by internal/notebook; writing files and
// deriving titles from filenames is left to the caller.
package pipeline
