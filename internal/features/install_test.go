package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faspi/cli/internal/testutil"
)

func TestInstall_NoFeatures(t *testing.T) {
	root := t.TempDir()

	plan, err := Install(root, NewConfig())
	require.NoError(t, err)

	assert.Empty(t, plan.Files)
	assert.Empty(t, plan.Requirements())
	assert.Equal(t, EnvHeader, plan.EnvTemplate())
	assert.Empty(t, testutil.ListFiles(t, root))
}

func TestInstall_WritesFeatureFiles(t *testing.T) {
	tests := []struct {
		flag  Flag
		files []string
	}{
		{SQL, []string{"app/infrastructure/database/session.py", "alembic.ini"}},
		{Auth, []string{"app/core/auth/jwt.py", "app/core/auth/deps.py", "app/interfaces/api/v1/endpoints/auth.py"}},
		{CORS, []string{"app/core/cors.py"}},
		{Cache, []string{"app/core/cache.py"}},
		{Tasks, []string{"app/core/tasks/celery.py", "app/core/tasks/tasks.py", "app/interfaces/api/v1/endpoints/tasks.py", "flower.py"}},
		{Supabase, []string{"app/infrastructure/external_apis/supabase.py"}},
	}

	for _, tt := range tests {
		t.Run(tt.flag.String(), func(t *testing.T) {
			root := t.TempDir()
			testutil.CaptureOutput(t)

			plan, err := Install(root, NewConfig(tt.flag))
			require.NoError(t, err)
			assert.Equal(t, tt.files, plan.Files)

			for _, f := range tt.files {
				assert.True(t, testutil.Exists(root, f), f)
			}
			assert.False(t, testutil.Exists(root, ".env.example"))
			assert.False(t, testutil.Exists(root, "app/main.py"))
		})
	}
}

func TestInstall_RegistersFeatureRouters(t *testing.T) {
	root := t.TempDir()
	testutil.CaptureOutput(t)

	_, err := Install(root, NewConfig(Auth, Tasks))
	require.NoError(t, err)

	registry := testutil.ReadFile(t, root, "app/interfaces/api/v1/endpoints/__init__.py")
	assert.Equal(t,
		"from .auth import router as auth_router\nfrom .tasks import router as tasks_router\n",
		registry)
}

func TestPlan_EnvTemplateKeepsEverySection(t *testing.T) {
	root := t.TempDir()
	testutil.CaptureOutput(t)

	plan, err := Install(root, NewConfig(Cache, Tasks, Supabase))
	require.NoError(t, err)

	env := plan.EnvTemplate()
	assert.True(t, strings.HasPrefix(env, EnvHeader))
	assert.Equal(t, 1, strings.Count(env, "REDIS_URL="))
	assert.Contains(t, env, "CELERY_BROKER_URL=")
	assert.Contains(t, env, "SUPABASE_URL=")

	cache := strings.Index(env, "# Redis Cache Configuration")
	tasks := strings.Index(env, "# Celery Configuration")
	supabase := strings.Index(env, "# Supabase Configuration")
	assert.True(t, cache < tasks && tasks < supabase)
}

func TestPlan_EnvTemplateTasksAlone(t *testing.T) {
	plan := &Plan{Contributions: []Contribution{contributions[Tasks]}}
	assert.Contains(t, plan.EnvTemplate(), "REDIS_URL=redis://localhost:6379\n")
}

func TestPlan_Requirements(t *testing.T) {
	plan := &Plan{Contributions: []Contribution{contributions[SQL], contributions[Cache]}}
	assert.Equal(t, []string{
		"sqlalchemy==2.0.0",
		"alembic==1.13.0",
		"psycopg2-binary==2.9.9",
		"redis==5.0.1",
		"fastapi-cache2==0.2.1",
	}, plan.Requirements())
}

func TestPlan_EntryPoint(t *testing.T) {
	plan := &Plan{Contributions: []Contribution{contributions[CORS], contributions[Cache]}}
	ep := plan.EntryPoint()

	assert.Equal(t, []string{"from app.core.cors import setup_cors", "from app.core.cache import setup_cache"}, ep.Imports)
	assert.Equal(t, []string{"setup_cors(app)"}, ep.Setup)
	assert.Equal(t, []string{"await setup_cache()"}, ep.Startup)
}

func TestInstall_Idempotent(t *testing.T) {
	root := t.TempDir()
	testutil.CaptureOutput(t)
	cfg := NewConfig(Auth)

	_, err := Install(root, cfg)
	require.NoError(t, err)
	first := testutil.ReadFile(t, root, "app/core/auth/jwt.py")

	_, err = Install(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadFile(t, root, "app/core/auth/jwt.py"))

	registry := testutil.ReadFile(t, root, "app/interfaces/api/v1/endpoints/__init__.py")
	assert.Equal(t, 1, testutil.CountLines(registry, "from .auth import router as auth_router"))
}
