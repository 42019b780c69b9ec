package domain

import "github.com/tidwall/redcon"

var (
	OK     = redcon.AppendOK(nil)
	PONG   = redcon.AppendString(nil, "PONG")
	QUEUED = redcon.AppendString(nil, "QUEUED")
)

func NewResult() *Result {
	result := Result{}
	return result.Clear()
}

func (result *Result) SetCanceled() *Result {
	result.Error = ErrCanceled
	result.Response = nil
	return result
}

func (result *Result) SetEmpty() *Result {
	result.Error = ErrEmpty
	result.Response = nil
	return result
}

func (result *Result) SetError(err error) *Result {
	result.Error = err
	result.Response = nil
	return result
}

func (result *Result) SetNil() *Result {
	return result.Clear()
}

func (result *Result) Clear() *Result {
	result.Error = nil
	result.Response = nil
	return result
}

func (result *Result) SetOK() *Result {
	result.Response = OK
	result.Error = nil
	return result
}

func (result *Result) SetResponse(response []byte) *Result {
	result.Response = response
	result.Error = nil
	return result
}
