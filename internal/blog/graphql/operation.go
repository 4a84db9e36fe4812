package graphql

// operationType reports the type ("query", "mutation" or "subscription") of
// the operation that executing doc with operationName would select. It returns
// "" when no single operation can be picked; the executor reports that case.
func operationType(doc, operationName string) string {
	type op struct{ kind, name string }
	var ops []op

	var (
		depth     int
		expectDef = true
		pending   *op // keyword seen, name not yet decided
	)

	for i := 0; i < len(doc); {
		c := doc[i]
		switch {
		case c == '#':
			for i < len(doc) && doc[i] != '\n' && doc[i] != '\r' {
				i++
			}
			continue
		case c == '"':
			i = skipString(doc, i)
			pending = nil
			continue
		case isNameStart(c):
			j := i + 1
			for j < len(doc) && isNameContinue(doc[j]) {
				j++
			}
			word := doc[i:j]
			i = j
			if depth != 0 {
				continue
			}
			if pending != nil {
				pending.name = word
				pending = nil
				continue
			}
			if expectDef {
				expectDef = false
				ops = append(ops, op{kind: word})
				pending = &ops[len(ops)-1]
			}
			continue
		case c == '{' || c == '(' || c == '[':
			if depth == 0 && expectDef {
				// Anonymous query shorthand.
				expectDef = false
				ops = append(ops, op{kind: "query"})
			}
			depth++
			pending = nil
		case c == '}' || c == ')' || c == ']':
			depth--
			if depth == 0 && c == '}' {
				expectDef = true
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
		default:
			pending = nil
		}
		i++
	}

	var selected *op
	for k := range ops {
		o := &ops[k]
		if o.kind == "fragment" {
			continue
		}
		if operationName != "" {
			if o.name == operationName {
				return o.kind
			}
			continue
		}
		if selected != nil {
			return ""
		}
		selected = o
	}
	if selected == nil {
		return ""
	}
	return selected.kind
}

func skipString(doc string, i int) int {
	if len(doc)-i >= 3 && doc[i:i+3] == `"""` {
		i += 3
		for i < len(doc) {
			if doc[i] == '\\' && len(doc)-i >= 4 && doc[i+1:i+4] == `"""` {
				i += 4
				continue
			}
			if len(doc)-i >= 3 && doc[i:i+3] == `"""` {
				return i + 3
			}
			i++
		}
		return i
	}

	i++
	for i < len(doc) {
		switch doc[i] {
		case '\\':
			i += 2
			continue
		case '"', '\n':
			return i + 1
		}
		i++
	}
	return i
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
