package scaffold

import (
	"fmt"
	"strings"
)

// NextSteps formats the completion report printed after a successful run.
func NextSteps(res *Result, packageManager string, installSkipped bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nInside %s you can run:\n\n", res.Destination)
	for _, script := range []struct{ name, desc string }{
		{"start", "Starts the development server."},
		{"build", "Bundles the package for publishing."},
		{"test", "Runs the test suite."},
	} {
		fmt.Fprintf(&b, "  %s\n    %s\n\n", runCommand(packageManager, script.name), script.desc)
	}

	b.WriteString("We suggest that you begin by typing:\n\n")
	fmt.Fprintf(&b, "  cd %s\n", res.Name)
	if installSkipped {
		fmt.Fprintf(&b, "  %s install\n", packageManager)
	}
	fmt.Fprintf(&b, "  %s\n", runCommand(packageManager, "start"))

	if len(res.Warnings) > 0 {
		fmt.Fprintf(&b, "\nFinished with %d warning(s); see above.\n", len(res.Warnings))
	}
	return b.String()
}

// runCommand returns the invocation of a package.json script.
func runCommand(packageManager, script string) string {
	if packageManager == "npm" && script != "start" && script != "test" {
		return "npm run " + script
	}
	return packageManager + " " + script
}
