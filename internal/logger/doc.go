// Package logger provides structured logging on top of zerolog.
//
// Records go to stderr by default so they never mix with a command's
// redirected output. Setting Config.File switches to a lumberjack-rotated
// file. Every logger created in a process carries the same run_id.
package logger
