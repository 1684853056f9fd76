package repl

import "fmt"

func formatLine(input string, result int64, err error) string {
	if err != nil {
		return fmt.Sprintf("An error occurred while calculating: %s: %v", input, err)
	}
	return fmt.Sprintf("%s = %d", input, result)
}
