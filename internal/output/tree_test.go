package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("Login", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("Login", map[string]string{
		"README.md":              "resource",
		"view/login_view.go":     "source",
		"assets/":                "group",
		"presenter/presenter.go": "source",
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "Login/")
	assert.Contains(t, lines[1], "assets/")
	assert.Contains(t, lines[len(lines)-1], "README.md")
	assert.Contains(t, out, "login_view.go")
	assert.Contains(t, out, "└── ")
}
