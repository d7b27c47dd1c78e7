package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	ControllersDir = "src/controllers"
	RoutesDir      = "src/routes"
	SeedsDir       = "src/model/seed"
	ControllerIdx  = "index.ts"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidName     = errors.New("invalid name")
)

// Scaffolder writes boilerplate files below a project root.
type Scaffolder struct {
	root string
	log  *logger.Entry
}

// New returns a Scaffolder rooted at root. An empty root is the working
// directory.
func New(root string) *Scaffolder {
	if root == "" {
		root = "."
	}
	return &Scaffolder{
		root: root,
		log:  logger.WithField("component", "scaffold"),
	}
}

// AddController writes src/controllers/<Name>Controller.ts and appends its
// export to src/controllers/index.ts. It returns the controller path.
func (s *Scaffolder) AddController(name string) (string, error) {
	if err := requireName("controllerName", name); err != nil {
		return "", err
	}

	file := ControllerFile(name)
	controllerPath := s.joinPath(ControllersDir, file)

	content := Render(controllerTemplate, controllerPlaceholder, ControllerFunction(name))
	if err := writeFile(controllerPath, content); err != nil {
		return "", err
	}

	indexPath := s.joinPath(ControllersDir, ControllerIdx)
	if err := appendFile(indexPath, exportLine(file), true); err != nil {
		return "", err
	}

	s.log.WithField("path", controllerPath).Info("Successfully created controller")
	return controllerPath, nil
}

// InsertController appends an exported handler named function to the
// existing controller for name.
func (s *Scaffolder) InsertController(name, function string) (string, error) {
	if err := requireName("controllerName", name); err != nil {
		return "", err
	}
	if err := requireName("functionName", function); err != nil {
		return "", err
	}

	controllerPath := s.joinPath(ControllersDir, ControllerFile(name))
	content := Render(handlerTemplate, handlerPlaceholder, function) + "\n"
	if err := appendFile(controllerPath, content, false); err != nil {
		return "", err
	}

	s.log.WithFields(logger.Fields{
		"path":     controllerPath,
		"function": function,
	}).Info("Successfully inserted controller function")
	return controllerPath, nil
}

// AddRoute writes src/routes/<name>Router.ts.
func (s *Scaffolder) AddRoute(name string) (string, error) {
	if err := requireName("routerName", name); err != nil {
		return "", err
	}

	router := RouterName(name)
	routerPath := s.joinPath(RoutesDir, router+".ts")
	if err := writeFile(routerPath, Render(routerTemplate, routerPlaceholder, router)); err != nil {
		return "", err
	}

	s.log.WithField("path", routerPath).Info("Successfully created router file")
	return routerPath, nil
}

// CreateSeeder writes src/model/seed/<name>.ts.
func (s *Scaffolder) CreateSeeder(name string) (string, error) {
	if err := requireName("seederName", name); err != nil {
		return "", err
	}

	seederPath := s.joinPath(SeedsDir, name+".ts")
	if err := writeFile(seederPath, seederTemplate); err != nil {
		return "", err
	}

	s.log.WithField("path", seederPath).Info("Successfully created seeder")
	return seederPath, nil
}

func (s *Scaffolder) joinPath(elem ...string) string {
	return filepath.Join(append([]string{s.root}, elem...)...)
}

// requireName rejects empty names and names that would escape the target
// directory.
func requireName(arg, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w `%s`", ErrMissingArgument, arg)
	}
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return fmt.Errorf("%w `%s`: %q", ErrInvalidName, arg, value)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// appendFile rewrites path with content added at the end. A missing file is
// an error unless create is set.
func appendFile(path, content string, create bool) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !create || !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		existing = nil
	}
	return writeFile(path, string(existing)+content)
}
