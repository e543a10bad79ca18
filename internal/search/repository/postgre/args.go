package postgre

import "fmt"

// argList collects positional parameters and hands out their $n placeholders.
type argList struct {
	values []any
}

func (a *argList) add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}
