// SPDX-License-Identifier: MIT

package editor

import "errors"

var (
	// ErrUnknownCommand is returned for a command word the editor does not know.
	ErrUnknownCommand = errors.New("editor: unknown command")

	// ErrUsage is returned when a command has the wrong number or kind of
	// arguments.
	ErrUsage = errors.New("editor: usage")

	// ErrRejected is returned when the graph refuses an edit or a query has no
	// answer yet.
	ErrRejected = errors.New("editor: rejected")
)
