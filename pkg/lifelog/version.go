// Package lifelog exposes build-level metadata for the lifelog tool.
package lifelog

// Version is the release version of the lifelog tool.
const Version = "0.1.0"
