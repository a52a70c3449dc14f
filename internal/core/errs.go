package core

import "errors"

var (
	// ErrCountMismatch reports arrival/burst/priority lists of unequal length.
	ErrCountMismatch = errors.New("process attribute list count mismatch")

	// ErrNonPositiveBurst reports a process whose burst time is zero or negative.
	ErrNonPositiveBurst = errors.New("burst time must be positive")

	// ErrNegativeArrival reports a process that arrives before time zero.
	ErrNegativeArrival = errors.New("arrival time must not be negative")

	// ErrDuplicateProcessId reports two processes sharing the same id.
	ErrDuplicateProcessId = errors.New("duplicate process id")

	// ErrNonPositiveQuantum reports a round-robin quantum of zero or less.
	ErrNonPositiveQuantum = errors.New("time quantum must be positive")

	// ErrUnknownAlgorithm reports an algorithm selector outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)
