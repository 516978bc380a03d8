package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/testutil"
)

func TestAppendUnique_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app", "models", "__init__.py")

	added, err := AppendUnique(path, "from .user import UserModel")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, "from .user import UserModel\n", testutil.ReadFile(t, dir, "app/models/__init__.py"))
}

func TestAppendUnique_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "__init__.py")
	line := "from .user import UserModel"

	_, err := AppendUnique(path, line)
	require.NoError(t, err)
	once := testutil.ReadFile(t, dir, "__init__.py")

	added, err := AppendUnique(path, line)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, once, testutil.ReadFile(t, dir, "__init__.py"))
}

func TestAppendUnique_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "__init__.py")

	_, err := AppendUnique(path, "from .alpha import Alpha")
	require.NoError(t, err)
	_, err = AppendUnique(path, "from .beta import Beta")
	require.NoError(t, err)
	_, err = AppendUnique(path, "from .alpha import Alpha")
	require.NoError(t, err)

	assert.Equal(t, "from .alpha import Alpha\nfrom .beta import Beta\n", testutil.ReadFile(t, dir, "__init__.py"))
}

func TestAppendUnique_TerminatesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "__init__.py", "from .alpha import Alpha")

	_, err := AppendUnique(path, "from .beta import Beta")
	require.NoError(t, err)

	assert.Equal(t, "from .alpha import Alpha\nfrom .beta import Beta\n", testutil.ReadFile(t, dir, "__init__.py"))
}

func TestAppendUnique_ReadErrorIsIO(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the registry file cannot be read.
	path := filepath.Join(dir, "__init__.py")
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := AppendUnique(path, "from .x import X")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)
}

type lineData struct {
	Lower    string
	TypeName string
}

func TestRegistry_Register(t *testing.T) {
	dir := t.TempDir()
	out := testutil.CaptureOutput(t)

	reg := Registry{
		Path: "app/core/entities/__init__.py",
		Line: "from .{{.Lower}} import {{.TypeName}}",
	}
	data := lineData{Lower: "widget", TypeName: "Widget"}

	added, err := reg.Register(dir, "widget", data)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = reg.Register(dir, "widget", data)
	require.NoError(t, err)
	assert.False(t, added)

	content := testutil.ReadFile(t, dir, reg.Path)
	assert.Equal(t, 1, testutil.CountLines(content, "from .widget import Widget"))
	assert.Contains(t, out.String(), "already registered")
}

func TestRegistry_RenderMissingField(t *testing.T) {
	reg := Registry{Path: "x/__init__.py", Line: "from .{{.Missing}} import X"}
	_, err := reg.Render(map[string]string{"Lower": "x"})
	assert.Error(t, err)
}

func TestEnsureMarker_KeepsExistingContent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, MarkerFile, "from .user import User\n")

	require.NoError(t, EnsureMarker(dir))
	assert.Equal(t, "from .user import User\n", testutil.ReadFile(t, dir, MarkerFile))
}

func TestEnsurePackage_MarksEveryLevel(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, EnsurePackage(root, "tests/interfaces/api/v1/endpoints"))

	for _, dir := range []string{
		"tests",
		"tests/interfaces",
		"tests/interfaces/api",
		"tests/interfaces/api/v1",
		"tests/interfaces/api/v1/endpoints",
	} {
		assert.True(t, testutil.Exists(root, dir+"/"+MarkerFile), dir)
	}
	assert.False(t, testutil.Exists(root, MarkerFile))
}

func TestRegistry_Conflicting(t *testing.T) {
	dir := t.TempDir()
	reg := Registry{
		Path: "app/core/modules/__init__.py",
		Line: "from .{{.Lower}} import {{.TypeName}}",
	}
	testutil.WriteFile(t, dir, reg.Path, "from .user import User\nfrom .users import Users\n")

	tests := []struct {
		name   string
		module string
		data   lineData
		want   string
	}{
		{"same line", "user", lineData{Lower: "user", TypeName: "User"}, ""},
		{"other casing", "user", lineData{Lower: "user", TypeName: "USer"}, "from .user import User"},
		{"prefix of another module", "use", lineData{Lower: "use", TypeName: "Use"}, ""},
		{"new module", "order", lineData{Lower: "order", TypeName: "Order"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Conflicting(dir, tt.module, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ConflictingMissingFile(t *testing.T) {
	reg := Registry{Path: "app/__init__.py", Line: "from .{{.Lower}} import {{.TypeName}}"}
	got, err := reg.Conflicting(t.TempDir(), "user", lineData{Lower: "user", TypeName: "User"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
