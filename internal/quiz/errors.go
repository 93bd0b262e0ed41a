package quiz

import "errors"

// Error taxonomy surfaced to callers. NotFound-class errors require caller
// action; stale-class errors carry a refresh hint; ErrSessionBusy is
// transient and retryable.
var (
	// ErrWordListNotFound means the named word list does not exist.
	ErrWordListNotFound = errors.New("word list not found")

	// ErrNoSession means no session exists for this user and word list;
	// sessions are created by StartOrGetSession, never implicitly.
	ErrNoSession = errors.New("no active session for this word list")

	// ErrTranslationNotFound means the submitted translation id is unknown.
	ErrTranslationNotFound = errors.New("translation not found")

	// ErrStaleQuestion means the submitted translation is no longer the
	// active question; the client should refresh.
	ErrStaleQuestion = errors.New("question already answered, refresh to get the current one")

	// ErrOutOfSync means the word the client displayed does not match the
	// session's current direction; the client should refresh.
	ErrOutOfSync = errors.New("displayed word is out of sync with the session, refresh")

	// ErrNoMoreQuestions means no candidate can be selected although the
	// list is not yet complete, e.g. every remaining word is in flight.
	ErrNoMoreQuestions = errors.New("no more questions available")

	// ErrSessionBusy means another request holds the session row lock.
	// Callers may retry with backoff.
	ErrSessionBusy = errors.New("session is busy, try again")
)
