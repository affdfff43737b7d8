package infrastructure

import "strings"

// ShellEscape escapes a string for safe display in a logged command line.
// exec.Command passes arguments verbatim; this exists only so operators can
// copy-paste the logged invocation into a shell.
func ShellEscape(s string) string {
	if s == "" {
		return "''"
	}

	if !strings.ContainsAny(s, " \t'\"$`\\!*?[](){}|;<>&~#%\n\r") {
		return s
	}

	// Single quotes, with embedded single quotes spliced out as '"'"'
	var b strings.Builder
	b.WriteString("'")
	for _, c := range s {
		if c == '\'' {
			b.WriteString(`'"'"'`)
		} else {
			b.WriteRune(c)
		}
	}
	b.WriteString("'")
	return b.String()
}

// ShellEscapeCommand renders a binary and its arguments as one shell-safe line
func ShellEscapeCommand(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, ShellEscape(binary))
	for _, arg := range args {
		parts = append(parts, ShellEscape(arg))
	}
	return strings.Join(parts, " ")
}
