package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestAddController(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	path, err := s.AddController("user")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "controllers", "UserController.ts"), path)

	content := readFile(t, path)
	assert.Contains(t, content, "export const getUser: RequestHandler = async (request, response, next) => {")
	assert.NotContains(t, content, controllerPlaceholder)

	index := readFile(t, filepath.Join(root, ControllersDir, ControllerIdx))
	assert.Equal(t, "export * from \"./UserController\";\n", index)
}

func TestAddController_AppendsToExistingIndex(t *testing.T) {
	root := t.TempDir()
	indexPath := filepath.Join(root, ControllersDir, ControllerIdx)
	require.NoError(t, os.MkdirAll(filepath.Dir(indexPath), 0755))
	require.NoError(t, os.WriteFile(indexPath, []byte("export * from \"./AuthController\";\n"), 0644))

	s := New(root)
	_, err := s.AddController("order")
	require.NoError(t, err)
	_, err = s.AddController("order")
	require.NoError(t, err)

	assert.Equal(t,
		"export * from \"./AuthController\";\n"+
			"export * from \"./OrderController\";\n"+
			"export * from \"./OrderController\";\n",
		readFile(t, indexPath))
}

func TestAddController_Deterministic(t *testing.T) {
	first := readFileAfter(t, func(s *Scaffolder) (string, error) { return s.AddController("invoice") })
	second := readFileAfter(t, func(s *Scaffolder) (string, error) { return s.AddController("invoice") })
	assert.Equal(t, first, second)
}

func readFileAfter(t *testing.T, fn func(s *Scaffolder) (string, error)) string {
	t.Helper()
	path, err := fn(New(t.TempDir()))
	require.NoError(t, err)
	return readFile(t, path)
}

func TestInsertController(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	path, err := s.AddController("user")
	require.NoError(t, err)
	before := readFile(t, path)

	insertedPath, err := s.InsertController("user", "createUser")
	require.NoError(t, err)
	assert.Equal(t, path, insertedPath)

	after := readFile(t, path)
	require.True(t, strings.HasPrefix(after, before))
	added := strings.TrimPrefix(after, before)
	assert.True(t, strings.HasPrefix(added, "export const createUser: RequestHandler"))
	assert.True(t, strings.HasSuffix(added, "};\n\n"))
}

func TestInsertController_MissingFile(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.InsertController("ghost", "getGhost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAddRoute(t *testing.T) {
	root := t.TempDir()

	path, err := New(root).AddRoute("user")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "routes", "userRouter.ts"), path)

	content := readFile(t, path)
	assert.Contains(t, content, "const userRouter = Router();")
	assert.Contains(t, content, "export default userRouter;")
	assert.NotContains(t, content, routerPlaceholder)
}

func TestCreateSeeder(t *testing.T) {
	root := t.TempDir()

	path, err := New(root).CreateSeeder("users")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "model", "seed", "users.ts"), path)
	assert.Equal(t, seederTemplate, readFile(t, path))
}

func TestGenerators_MissingArgument(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	calls := map[string]func() (string, error){
		"controller":      func() (string, error) { return s.AddController("") },
		"route":           func() (string, error) { return s.AddRoute("  ") },
		"seeder":          func() (string, error) { return s.CreateSeeder("") },
		"insert/name":     func() (string, error) { return s.InsertController("", "getUser") },
		"insert/function": func() (string, error) { return s.InsertController("user", "") },
	}

	for name, call := range calls {
		_, err := call()
		assert.ErrorIs(t, err, ErrMissingArgument, name)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file may be written when an argument is missing")
}

func TestGenerators_InvalidName(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.AddRoute("../escape")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = s.CreateSeeder("..")
	assert.ErrorIs(t, err, ErrInvalidName)
}
