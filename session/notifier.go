package session

import "log"

// Notifier receives user-visible toasts. It must never block.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier prints toasts to the process log; the CLI uses it.
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Printf("✔ %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("✘ %s", message) }
