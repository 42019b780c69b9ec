package domain

import "errors"

var (
	ErrEmpty    = errors.New("ERR empty command")
	ErrCanceled = errors.New("ERR operation canceled")

	ErrCommandNotFound     = errors.New("ERR unknown command")
	ErrMalformedArguments  = errors.New("ERR wrong number of arguments")
	ErrUnsupportedShape    = errors.New("invalid command attribute")
	ErrUnsupportedCommand  = errors.New("ERR unsupported command")
	ErrMultipleKeys        = errors.New("ERR invalid args, must have only one key")
	ErrEncoding            = errors.New("ERR encoding error")
	ErrNoMoreElements      = errors.New("no more elements in frame")
	ErrExecWithoutMulti    = errors.New("ERR EXEC without MULTI")
	ErrDiscardWithoutMulti = errors.New("ERR DISCARD without MULTI")
	ErrNestedMulti         = errors.New("ERR MULTI calls can not be nested")
	ErrExecAbort           = errors.New("EXECABORT Transaction discarded because of previous errors.")
	ErrUnknownSubcommand   = errors.New("ERR unknown subcommand")
)
