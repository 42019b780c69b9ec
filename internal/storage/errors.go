package storage

import "errors"

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrEmptyKey     = errors.New("ERR empty key")
	ErrKeyTooLarge  = errors.New("ERR key too large")
	ErrUnknownTable = errors.New("ERR unknown routing table")
	ErrClosed       = errors.New("ERR storage is closed")
	ErrTxnDone      = errors.New("ERR transaction already finished")
	ErrProtocol     = errors.New("ERR protocol error")
	ErrMismatch     = errors.New("ERR request does not match command")
	ErrUnknownVerb  = errors.New("ERR unknown command")
	ErrWrongArgs    = errors.New("ERR wrong number of arguments")
	ErrCorrupted    = errors.New("ERR corrupted value")

	ErrWrongType  = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrNotInteger = errors.New("ERR value is not an integer or out of range")
	ErrOverflow   = errors.New("ERR increment or decrement would overflow")
	ErrSyntax     = errors.New("ERR syntax error")
	ErrNoSuchKey  = errors.New("ERR no such key")
	ErrOutOfRange = errors.New("ERR index out of range")
	ErrExpireTime = errors.New("ERR invalid expire time")
)
