package paginate

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// PageFromRequest reads the current page from r using trigger, which follows
// the WithPageTrigger rules. An empty trigger means DefaultTrigger. A missing
// page yields 1. A malformed or non-positive page yields 1 and
// ErrInvalidPage.
func PageFromRequest(r *http.Request, trigger string) (int, error) {
	trigger = strings.TrimLeft(trigger, "/")
	if trigger == "" {
		trigger = DefaultTrigger
	}

	var raw string
	if strings.HasSuffix(trigger, "/") {
		path := r.URL.Path
		idx := strings.LastIndex(path, "/"+trigger)
		if idx < 0 {
			return 1, nil
		}
		raw = path[idx+len(trigger)+1:]
		if end := strings.IndexByte(raw, '/'); end >= 0 {
			raw = raw[:end]
		}
	} else {
		raw = r.URL.Query().Get(trigger)
	}

	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}
	return n, nil
}
