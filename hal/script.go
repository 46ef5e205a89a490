package hal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseScript reads a headless event script. Each non-empty line is one
// event: "show", "repaint", "exit", "down X Y", "up X Y", "drag X Y" or
// "key CODE". Text after '#' is a comment.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ev, err := parseScriptEvent(fields)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseScriptEvent(fields []string) (Event, error) {
	var kind EventKind
	args := 0
	switch strings.ToLower(fields[0]) {
	case "show":
		kind = EventShow
	case "repaint":
		kind = EventRepaint
	case "exit":
		kind = EventExit
	case "down":
		kind, args = EventPointerDown, 2
	case "up":
		kind, args = EventPointerUp, 2
	case "drag":
		kind, args = EventPointerDrag, 2
	case "key":
		kind, args = EventKeyPress, 1
	default:
		return Event{}, fmt.Errorf("unknown event %q", fields[0])
	}
	if len(fields)-1 != args {
		return Event{}, fmt.Errorf("%s: want %d arguments, got %d", fields[0], args, len(fields)-1)
	}

	ev := Event{Kind: kind}
	var params [2]int32
	for i := 0; i < args; i++ {
		v, err := strconv.ParseInt(fields[i+1], 10, 32)
		if err != nil {
			return Event{}, fmt.Errorf("%s: %w", fields[0], err)
		}
		params[i] = int32(v)
	}
	ev.P1, ev.P2 = params[0], params[1]
	return ev, nil
}
