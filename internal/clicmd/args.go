package clicmd

import "strings"

// parseArgs splits a shell command line's arguments into positional
// values and --flag/--flag=value pairs. Commands across every entity
// family (spec §4.3) share this same shape, so one parser serves all of
// them rather than a per-command pflag.FlagSet (contrast kagent's a2a
// run command, which defines its own FlagSet because it has exactly one
// flag of its own).
func parseArgs(raw []string) (args []string, flags map[string]string) {
	flags = map[string]string{}
	for i := 0; i < len(raw); i++ {
		a := raw[i]
		if !strings.HasPrefix(a, "--") {
			args = append(args, a)
			continue
		}
		name := strings.TrimPrefix(a, "--")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			flags[name[:eq]] = name[eq+1:]
			continue
		}
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "--") {
			flags[name] = raw[i+1]
			i++
			continue
		}
		flags[name] = "true"
	}
	return args, flags
}
