// Package analytics derives read-only statistics from a user's event
// set: daily intensity/importance series, emotion frequency tables, a
// volatility score, calendar day-counts, and day-grouped timelines.
// Every function is pure; nothing here mutates or touches storage.
package analytics
