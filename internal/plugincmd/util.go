package plugincmd

import "strconv"

// intFlag parses a named flag as an int, falling back to def on empty or
// unparseable input rather than failing the command outright.
func intFlag(req Request, name string, def int) int {
	raw := req.Flag(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func arg(req Request, i int) string {
	if i < len(req.Args) {
		return req.Args[i]
	}
	return ""
}
