package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfgroup/barbarian/internal/testutils/repotest"
	"github.com/bfgroup/barbarian/pkg/cfg"
)

func TestCiCreatesGithubActionsWorkflow(t *testing.T) {
	initTest(t)

	r := repotest.CreateBarbarianRepository(t)
	chdir(t, r.Dir)

	cmd := newCiCmd()
	cmd.run(&cmd.Command, nil)

	workflow, err := os.ReadFile(filepath.Join(r.Dir, ".github", "workflows", "conan.yml"))
	require.NoError(t, err)

	content := string(workflow)
	assert.NotContains(t, content, conanRemotesPlaceholder)
	assert.Contains(t, content, strings.Join(cfg.DefaultConanRemotes, ", "))
	assert.Contains(t, content, "bincrafters-package-tools")
}

func TestCiFailsForUnsupportedService(t *testing.T) {
	initTest(t)

	r := repotest.CreateBarbarianRepository(t)
	chdir(t, r.Dir)

	execCheck(t, exitCodeError, func() {
		cmd := newCiCmd()
		cmd.service = "jenkins"
		cmd.run(&cmd.Command, nil)
	})
}
