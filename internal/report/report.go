// Package report formats the golden-trace comparison results for
// cmd/goldencheck, colorizing with fatih/color the way the teacher's
// test/all-test harness colors its own pass/fail summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Summary colorizes the final verdict of a golden-trace run: green
// "passed" when every line matched, red "mismatched" otherwise, with the
// line counts that tell a reader how close a failing run actually got.
func Summary(romName string, total int, mismatches int) string {
	if mismatches == 0 {
		return fmt.Sprintf("%v: %v of %v lines %v", romName, total, total, green("passed"))
	}
	return fmt.Sprintf("%v: %v of %v lines %v", romName, mismatches, total, red("mismatched"))
}

// Mismatch colorizes a single trace-line disagreement, highlighting the
// characters in got that diverge from want at the same column, so a skim
// of the output shows what broke -- a wrong flag, a wrong operand, a wrong
// mnemonic -- instead of two unannotated nestest lines side by side.
func Mismatch(line int, want string, got string) string {
	return fmt.Sprintf("line %v:\n  want %v\n  got  %v", line, want, diffHighlight(want, got))
}

func diffHighlight(want string, got string) string {
	var builder strings.Builder
	for i := 0; i < len(got); i++ {
		if i < len(want) && want[i] == got[i] {
			builder.WriteByte(got[i])
			continue
		}
		builder.WriteString(yellow(string(got[i])))
	}
	return builder.String()
}
