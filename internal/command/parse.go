package command

import (
	"strings"

	"github.com/han-ian/tidis/internal/domain"
)

// Parse walks the elements of a frame that is still being consumed.
type Parse struct {
	frame Frame
	pos   int
}

func NewParse(frame Frame) *Parse {
	return &Parse{frame: frame}
}

// NextString returns domain.ErrNoMoreElements once the frame is exhausted.
func (parse *Parse) NextString() (string, error) {
	if parse.pos >= len(parse.frame) {
		return "", domain.ErrNoMoreElements
	}

	element := parse.frame[parse.pos]
	parse.pos++

	return lossy(element), nil
}

func (parse *Parse) Frame() Frame {
	return parse.frame
}

func lossy(element []byte) string {
	return strings.ToValidUTF8(string(element), "�")
}
