// Package models defines the records AptiDude keeps on the device: the
// current user, their statistics, per-topic progress and settings.
package models
