package scaffold

import (
	"strings"
	"testing"
)

func TestNextStepsYarn(t *testing.T) {
	res := &Result{Name: "widget", Destination: "/tmp/widget"}
	out := NextSteps(res, "yarn", false)

	for _, want := range []string{"cd widget", "yarn start", "yarn build", "yarn test", "/tmp/widget"} {
		if !strings.Contains(out, want) {
			t.Errorf("NextSteps() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "yarn install") {
		t.Error("install hint shown although dependencies were installed")
	}
	if strings.Contains(out, "warning") {
		t.Error("warning summary shown without warnings")
	}
}

func TestNextStepsNpmSkippedInstall(t *testing.T) {
	res := &Result{Name: "widget", Destination: "/tmp/widget", Warnings: []string{"w"}}
	out := NextSteps(res, "npm", true)

	for _, want := range []string{"npm install", "npm run build", "npm test", "npm start", "1 warning(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("NextSteps() missing %q:\n%s", want, out)
		}
	}
}
