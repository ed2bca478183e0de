package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/robotbuilder/internal/builder"
	"github.com/specialistvlad/robotbuilder/internal/dice"
	"github.com/specialistvlad/robotbuilder/internal/prompt"
	"github.com/specialistvlad/robotbuilder/internal/robot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perfectRolls completes a default robot with no wasted rolls.
var perfectRolls = []int{0, 0, 0, 1, 1, 1, 2, 3, 4, 5, 5, 6, 6, 6, 6}

// setupAppTest creates an app writing progress and logs into buffers.
func setupAppTest(t *testing.T, in string, cfg Config, opts ...Option) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	config, err := NewConfig(cfg)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	testApp, err := NewApp(strings.NewReader(in), &out, &logs, config, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ROBOT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, &out, &logs
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = NewConfig(Config{LogFormat: "xml"})
	assert.ErrorContains(t, err, "invalid log format")

	_, err = NewConfig(Config{LogLevel: "trace"})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = NewConfig(Config{Robots: -1})
	assert.ErrorContains(t, err, "robots must not be negative")
}

func TestRun_InteractiveSession(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := dice.NewSequence(perfectRolls...)
	testApp, out, logs := setupAppTest(t, "y\nYes\nn\n", Config{LogLevel: "debug"}, WithSource(src))

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	assert.Equal(t, 3, strings.Count(output, prompt.Question))
	assert.Equal(t, 2, strings.Count(output, "Finally, a completed robot. Only took 15 rolls."))
	assert.Equal(t, 30, strings.Count(output, "Added index "))
	assert.Equal(t, 2*len(perfectRolls), src.Drawn())
	assert.Contains(t, logs.String(), "robots_built=2")
}

func TestRun_NoOnFirstQuestion(t *testing.T) {
	t.Parallel()

	src := dice.NewSequence(0)
	testApp, out, _ := setupAppTest(t, "", Config{}, WithSource(src))

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, prompt.Question, out.String())
	assert.Zero(t, src.Drawn())
}

func TestRun_CountedRobots(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, "", Config{Robots: 3, Seed: 99})

	require.NoError(t, testApp.Run(context.Background()))
	assert.NotContains(t, out.String(), prompt.Question)
	assert.Equal(t, 3, strings.Count(out.String(), "Finally, a completed robot."))
}

func TestRun_SafetyLimitIsFatal(t *testing.T) {
	t.Parallel()

	// Always rolls an antenna, which needs a head first.
	src := dice.NewSequence(int(robot.Antenna))
	testApp, out, _ := setupAppTest(t, "", Config{Robots: 2}, WithSource(src))

	err := testApp.Run(context.Background())

	require.ErrorIs(t, err, builder.ErrSafetyLimit)
	assert.Contains(t, err.Error(), "robot 1")
	assert.Equal(t, builder.DefaultSafetyLimit+1, src.Drawn(), "no second build after the abort")
	assert.Empty(t, out.String())
}

func TestRun_Diagnostics(t *testing.T) {
	t.Parallel()

	src := dice.NewSequence(perfectRolls...)
	testApp, out, _ := setupAppTest(t, "", Config{Robots: 1, Diagnose: true}, WithSource(src))

	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, out.String(), "(COMPLETE?) mismatch on index 1 (Wheel)")
}

func TestRun_Blueprint(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "tiny.hcl")
	blueprintHCL := `
		safety_limit = 50
		quantities = {
			wheel = 1, axle = 1, torso = 1, plunger = 0
			head = 0, antenna = 0, powercell = 0
		}
	`
	require.NoError(t, os.WriteFile(path, []byte(blueprintHCL), 0600))

	src := dice.NewSequence(0, 1, 2)
	testApp, out, logs := setupAppTest(t, "", Config{Robots: 1, BlueprintPath: path}, WithSource(src))

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Finally, a completed robot. Only took 3 rolls.")
	assert.Contains(t, out.String(), "Powercell: 0")
	assert.Contains(t, logs.String(), "Blueprint loaded.")
}

func TestNewApp_BadBlueprint(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{BlueprintPath: filepath.Join(t.TempDir(), "missing.hcl")})
	require.NoError(t, err)

	_, err = NewApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, config)
	assert.ErrorContains(t, err, "failed to read blueprint")
}

func TestNewApp_JSONLogs(t *testing.T) {
	t.Parallel()

	testApp, _, logs := setupAppTest(t, "", Config{LogFormat: "json", LogLevel: "debug"},
		WithContinuer(prompt.NewCounted(0)))

	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, logs.String(), `"robots_built":0`)
}
