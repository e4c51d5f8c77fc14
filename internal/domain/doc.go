// Package domain contains the core entities of the vocabulary trainer:
// collections, words, per-word review schedules, and study-session records.
// Domain objects carry their own validation; they perform no I/O and know
// nothing about persistence or presentation.
package domain
