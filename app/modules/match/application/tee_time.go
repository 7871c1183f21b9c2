package matchservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var teeTimeParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseTeeTime reads a tee time from RFC3339 or natural language relative to
// base ("tomorrow 7:30am", "saturday morning"). An empty text yields the zero
// time: tee times are optional.
func ParseTeeTime(text string, base time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}

	result, err := teeTimeParser.Parse(text, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnparseableTeeTime, text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTeeTime, text)
	}
	return result.Time, nil
}
