package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keydiff/internal/adapters/config"
	"go.trai.ch/keydiff/internal/adapters/console"
	"go.trai.ch/keydiff/internal/adapters/fs"
	"go.trai.ch/keydiff/internal/adapters/telemetry"
	"go.trai.ch/keydiff/internal/app"
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/keydiff/internal/core/ports/mocks"
	"go.trai.ch/keydiff/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"keydiff": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func memComponents(t *testing.T, log ports.Logger, files map[string]string) ComponentProvider {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o600))
	}
	fsys := fs.NewWithFs(mem)

	application := app.New(
		config.NewLoader(fsys),
		fsys,
		resolver.New(fsys),
		console.NewRendererWithProfile(termenv.Ascii),
		log,
		telemetry.NewOTelTracer("test"),
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, memComponents(t, mockLogger, nil))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "keydiff version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_DriftIsNotLogged verifies that drift exits with 1 and only the report is printed.
func TestRun_DriftIsNotLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: logging the drift would fail the test.
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := memComponents(t, mockLogger, map[string]string{
		"/a.json": `{"common": 1, "x": 2}`,
		"/b.json": `{"common": 1, "y": 2}`,
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"files", "/a.json", "/b.json"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t,
		"✗ Differences found in the following files:\n/a.json\n  - y\n/b.json\n  - x\n",
		stdout.String())
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the comparison fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err }).Times(1)

	provider := memComponents(t, mockLogger, map[string]string{
		"/a.json": `{}`,
	})

	exitCode := run(context.Background(), []string{"files", "/a.json"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	require.Error(t, logged)
	assert.ErrorIs(t, logged, domain.ErrNotEnoughFiles)
}

// TestRun_NoDrift verifies that identical key sets exit with 0.
func TestRun_NoDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := memComponents(t, mockLogger, map[string]string{
		"/cfg/en.json": `{"title": "x"}`,
		"/cfg/fr.json": `{"title": "y"}`,
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"folder", "/cfg"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "✓ No differences found in files\n", stdout.String())
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := memComponents(t, mockLogger, map[string]string{
		"/a.json": `{}`,
		"/b.json": `{}`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"files", "/a.json", "/b.json"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_FilesWithoutArguments verifies that an empty file list is a failure, not a clean run.
func TestRun_FilesWithoutArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err }).Times(1)

	exitCode := run(context.Background(), []string{"files"}, new(bytes.Buffer), new(bytes.Buffer),
		memComponents(t, mockLogger, nil))

	assert.Equal(t, 1, exitCode)
	assert.ErrorIs(t, logged, domain.ErrNotEnoughFiles)
}

// TestRun_VerboseShorthand verifies that -v selects phase timings instead of the version.
func TestRun_VerboseShorthand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(4)

	provider := memComponents(t, mockLogger, map[string]string{
		"/a.json": `{"x": 1}`,
		"/b.json": `{"x": 2}`,
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"files", "-v", "/a.json", "/b.json"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "✓ No differences found in files\n", stdout.String())
}
