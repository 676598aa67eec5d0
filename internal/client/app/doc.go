// Package app holds the application controller: the transient studio state
// (prompt fields, mode, current and source images, busy flags) and the
// transitions that call the image service and record history.
package app
