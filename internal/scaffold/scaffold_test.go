package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/features"
	"github.com/faspi/cli/internal/project"
	"github.com/faspi/cli/internal/registry"
	"github.com/faspi/cli/internal/testutil"
)

func create(t *testing.T, opts Options) (*Result, string) {
	t.Helper()
	testutil.CaptureOutput(t)
	if opts.Dir == "" {
		opts.Dir = t.TempDir()
	}
	if opts.Name == "" {
		opts.Name = "myapp"
	}
	res, err := New(opts).Create()
	require.NoError(t, err)
	return res, res.Root
}

func TestCreate_NoFeatures(t *testing.T) {
	res, root := create(t, Options{Version: "v1.0.0"})

	assert.Equal(t, "myapp", filepath.Base(root))
	assert.Equal(t, strings.Join(BaseRequirements, "\n")+"\n", testutil.ReadFile(t, root, "requirements.txt"))
	assert.Equal(t, features.EnvHeader, testutil.ReadFile(t, root, ".env.example"))
	assert.Empty(t, res.Plan.Contributions)

	for _, f := range []string{
		"README.md", ".gitignore", "app/main.py", "app/config/settings.py",
		"app/core/exceptions.py", "app/core/types.py", "app/infrastructure/database/base.py",
		"app/core/entities/example.py", "app/core/interfaces/example_repository.py",
		"app/infrastructure/repositories/example_repository.py",
		"app/application/use_cases/get_example.py",
		"app/interfaces/api/v1/schemas/example.py",
		"app/interfaces/api/v1/dependencies/repositories.py",
		"app/interfaces/api/v1/endpoints/example.py",
	} {
		assert.True(t, testutil.Exists(root, f), f)
	}

	assert.NotContains(t, testutil.ReadFile(t, root, "app/main.py"), "startup_event")
	assert.Contains(t, testutil.ReadFile(t, root, "README.md"), "# Myapp")
}

func TestCreate_EveryDirectoryHasMarker(t *testing.T) {
	_, root := create(t, Options{Features: features.NewConfig(features.Auth, features.Tasks)})

	for _, tree := range MarkedTrees {
		err := WalkDirs(filepath.Join(root, tree), func(dir string) error {
			_, err := os.Stat(filepath.Join(dir, registry.MarkerFile))
			assert.NoError(t, err, dir)
			return nil
		})
		require.NoError(t, err)
	}
}

func TestCreate_EndpointRegistryKeepsRouters(t *testing.T) {
	_, root := create(t, Options{Features: features.NewConfig(features.Auth, features.Tasks)})

	routers := testutil.ReadFile(t, root, "app/interfaces/api/v1/endpoints/__init__.py")
	assert.Equal(t,
		"from .example import router as example_router\n"+
			"from .auth import router as auth_router\n"+
			"from .tasks import router as tasks_router\n",
		routers)
}

func TestCreate_FeatureAdditivity(t *testing.T) {
	_, plain := create(t, Options{})
	_, withSQL := create(t, Options{Features: features.NewConfig(features.SQL)})

	base := testutil.ReadFile(t, plain, "requirements.txt")
	sql := testutil.ReadFile(t, withSQL, "requirements.txt")

	require.True(t, strings.HasPrefix(sql, base))
	assert.Equal(t, "sqlalchemy==2.0.0\nalembic==1.13.0\npsycopg2-binary==2.9.9\n", strings.TrimPrefix(sql, base))
}

func TestCreate_AllFeaturesMerged(t *testing.T) {
	all := features.NewConfig(features.All...)
	_, root := create(t, Options{Features: all, ExtraDependencies: "httpx==0.28.1"})

	env := testutil.ReadFile(t, root, ".env.example")
	for _, key := range []string{"DATABASE_URL=", "SECRET_KEY=", "CORS_ORIGINS=", "REDIS_URL=", "CELERY_BROKER_URL=", "SUPABASE_URL="} {
		assert.Contains(t, env, key)
	}
	assert.Equal(t, 1, strings.Count(env, "REDIS_URL="))

	main := testutil.ReadFile(t, root, "app/main.py")
	assert.Contains(t, main, "setup_cors(app)")
	assert.Contains(t, main, "await setup_cache()")

	reqs := testutil.ReadFile(t, root, "requirements.txt")
	assert.True(t, strings.HasSuffix(reqs, "httpx==0.28.1\n"))
	assert.Less(t, strings.Index(reqs, "sqlalchemy"), strings.Index(reqs, "python-jose"))
	assert.Less(t, strings.Index(reqs, "celery"), strings.Index(reqs, "supabase"))

	m, err := project.Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"sql", "auth", "cors", "cache", "tasks", "supabase"}, m.Features)
	assert.Equal(t, project.StyleLayered, m.Style)
}

func TestCreate_RefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	testutil.CaptureOutput(t)
	testutil.WriteFile(t, dir, "myapp/keep.txt", "mine")

	_, err := New(Options{Name: "myapp", Dir: dir}).Create()
	require.Error(t, err)
	assert.True(t, oerrors.IsConfiguration(err))
	assert.False(t, testutil.Exists(dir, "myapp/app"))

	res, err := New(Options{Name: "myapp", Dir: dir, Force: true}).Create()
	require.NoError(t, err)
	assert.Equal(t, "mine", testutil.ReadFile(t, res.Root, "keep.txt"))
}

func TestCreate_InvalidName(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Options{Name: "../bad", Dir: dir}).Create()
	require.Error(t, err)
	assert.True(t, oerrors.IsConfiguration(err))
}

func TestValidate_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "taken/keep.txt", "mine")

	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"valid empty target", Options{Name: "fresh", Dir: dir}, true},
		{"invalid name", Options{Name: "1app", Dir: dir}, false},
		{"non-empty target", Options{Name: "taken", Dir: dir}, false},
		{"non-empty target forced", Options{Name: "taken", Dir: dir, Force: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.opts).Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, oerrors.IsConfiguration(err))
			}
		})
	}

	assert.Equal(t, []string{"taken/keep.txt"}, testutil.ListFiles(t, dir))
}

func TestCreate_Deterministic(t *testing.T) {
	cfg := features.NewConfig(features.Cache, features.CORS)
	_, a := create(t, Options{Features: cfg})
	_, b := create(t, Options{Features: cfg})

	filesA := testutil.ListFiles(t, a)
	require.Equal(t, filesA, testutil.ListFiles(t, b))
	for _, f := range filesA {
		assert.Equal(t, testutil.ReadFile(t, a, f), testutil.ReadFile(t, b, f), f)
	}
}

func TestWalkDirs_LexicalOrder(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"b/y", "a", "b/x", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	testutil.WriteFile(t, root, "a/file.txt", "")

	var visited []string
	err := WalkDirs(root, func(dir string) error {
		rel, err := filepath.Rel(root, dir)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "a", "b", "b/x", "b/y", "c"}, visited)
}

func TestManifest_String(t *testing.T) {
	m := Manifest{Features: []string{"redis==5.0.1"}, Extra: "httpx"}
	assert.Equal(t,
		"fastapi==0.115.12\nuvicorn==0.34.2\npydantic==2.11.4\npython-dotenv==1.1.0\nredis==5.0.1\nhttpx\n",
		m.String())

	m = Manifest{Extra: "a\nb\n"}
	assert.True(t, strings.HasSuffix(m.String(), "a\nb\n"))
}
