package woot

import (
	"fmt"
	"strings"

	"github.com/dearkafka/woot/descriptor"
)

// describeAll renders the directory of every resource and action. Output is
// deterministic: resources in registration order, actions in declaration order.
func describeAll(resources []descriptor.Resource) string {
	width := 0
	for _, r := range resources {
		width = max(width, len(r.AttrName()))
	}
	width += 2

	var b strings.Builder
	b.WriteString("Available actions:\n")
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')
	for _, r := range resources {
		if len(r.Actions) == 0 {
			b.WriteString(r.AttrName())
			b.WriteString("\n\n")
			continue
		}
		for i, a := range r.Actions {
			if i == 0 {
				fmt.Fprintf(&b, "%-*s", width, r.AttrName())
			} else {
				b.WriteString(strings.Repeat(" ", width))
			}
			fmt.Fprintf(&b, "%s: %s %s\n", a.Name, a.Method, a.URL)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// describeResource renders one resource as a table of actions, followed by
// the query and body schema of each action that has one.
func describeResource(r descriptor.Resource) string {
	var nameW, methodW, urlW int
	for _, a := range r.Actions {
		nameW = max(nameW, len(a.Name))
		methodW = max(methodW, len(a.Method))
		urlW = max(urlW, len(a.URL))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s actions:\n", r.Name)
	b.WriteString(strings.Repeat("-", nameW+methodW+urlW+7))
	b.WriteByte('\n')
	indent := strings.Repeat(" ", nameW+methodW+5)
	for _, a := range r.Actions {
		fmt.Fprintf(&b, "%-*s%-*s%s\n", nameW+3, capitalize(a.Name)+":", methodW+2, a.Method, a.URL)
		if a.Query.Len() > 0 {
			fmt.Fprintf(&b, "%sQuery parameters: %s\n", indent, a.Query)
		}
		if a.Body.Len() > 0 {
			fmt.Fprintf(&b, "%sPayload schema: %s\n", indent, a.Body)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
