package cli

import (
	"fmt"
	"strconv"
)

// argID parses args[i] as a positive identifier.
func argID(args []string, i int, name string) (int64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%w: missing %s", errUsage, name)
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errUsage, name, args[i])
	}
	return id, nil
}

func yesNo(b bool) string {
	if b {
		return "x"
	}
	return " "
}
