package service

import (
	"context"
	"errors"
	"strings"
)

const (
	PING    string = "ping"
	MULTI   string = "multi"
	EXEC    string = "exec"
	DISCARD string = "discard"
	COMMAND string = "command"

	noArgs        = 0
	secondArg     = 2
	singleCommand = 1
)

func hasError(err error) bool {
	return err != nil
}

func noError(err error) bool {
	return err == nil
}

func emptyArgs(args Args) bool {
	return len(args) == noArgs
}

func normalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isContextCanceled(err error) bool {
	return hasError(err) && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}

// validArity follows the registry convention: a positive arity is exact, a
// negative one is a minimum.
func validArity(arity, argCount int) bool {
	if arity < 0 {
		return argCount >= -arity
	}

	return argCount == arity
}
