// Package session keeps the history of analyses made during one run: every
// result gets an ID and a timestamp, the newest results come first, and
// input is validated before it reaches the engine.
package session
