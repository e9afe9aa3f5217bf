// Package state provides a lightweight FSM/session manager for Telegram bots.
// Sessions carry the dialog state together with answers collected so far.
package state
