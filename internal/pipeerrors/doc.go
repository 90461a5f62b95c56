// Package pipeerrors classifies the failures of a pipefile run and maps them
// to process exit statuses. Every error is terminal; nothing is retried.
package pipeerrors
