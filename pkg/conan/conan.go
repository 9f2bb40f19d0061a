// Package conan runs the conan command line client and reads the recipe data
// that it produces.
package conan

import (
	"context"
	"fmt"
	"os"
	stdexec "os/exec"
	"strings"

	"github.com/bfgroup/barbarian/internal/exec"
)

// envUserHome is the environment variable via that conan is pointed at a
// repository-local cache directory.
const envUserHome = "CONAN_USER_HOME"

// CommandIsInstalled returns true if an executable called "conan" is found in
// the directories listed in the PATH environment variable.
func CommandIsInstalled() bool {
	_, err := stdexec.LookPath("conan")

	return err == nil
}

func env(userHome string) []string {
	return append(os.Environ(), envUserHome+"="+userHome)
}

// Inspect returns the name and version that the conanfile in recipeDir
// declares.
// Attributes that the conanfile does not declare are returned as empty
// strings.
func Inspect(ctx context.Context, recipeDir, userHome string) (name, version string, err error) {
	name, err = inspectAttribute(ctx, recipeDir, userHome, "name")
	if err != nil {
		return "", "", err
	}

	version, err = inspectAttribute(ctx, recipeDir, userHome, "version")
	if err != nil {
		return "", "", err
	}

	return name, version, nil
}

func inspectAttribute(ctx context.Context, recipeDir, userHome, attribute string) (string, error) {
	res, err := exec.Command("conan", "inspect", "--raw", attribute, recipeDir).
		Env(env(userHome)).
		ExpectSuccess().
		RunCombinedOut(ctx)
	if err != nil {
		return "", fmt.Errorf("inspecting recipe attribute %q failed: %w", attribute, err)
	}

	value := strings.TrimSpace(res.StrOutput())
	if value == "None" {
		return "", nil
	}

	return value, nil
}

// Export runs conan export for the recipe at path with the passed reference.
// The recipe is exported to the cache below userHome.
func Export(ctx context.Context, path, reference, userHome string) error {
	_, err := exec.Command("conan", "export", path, reference).
		Env(env(userHome)).
		ExpectSuccess().
		Run(ctx)
	if err != nil {
		return fmt.Errorf("exporting recipe %q failed: %w", reference, err)
	}

	return nil
}

// ClientVersion returns the version string of the installed conan client.
func ClientVersion(ctx context.Context) (string, error) {
	res, err := exec.Command("conan", "--version").ExpectSuccess().RunCombinedOut(ctx)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(res.StrOutput()), nil
}
