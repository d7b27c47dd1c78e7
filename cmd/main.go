package main

import (
	"fmt"
	"os"

	"apitemplate/src/scaffold"
	"apitemplate/src/utils"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version string

func main() {
	utils.SetupLogger()

	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "scaffold"
	app.Usage = "Generate controller, router and seeder boilerplate"
	app.Version = Version

	app.Commands = []cli.Command{
		controllerCMD,
		insertCMD,
		routeCMD,
		seederCMD,
	}

	return app
}

var (
	controllerCMD = cli.Command{
		Name:        "controller",
		Usage:       "create a controller",
		Action:      controllerAction,
		ArgsUsage:   "<name>",
		Description: `Create src/controllers/<Name>Controller.ts exporting get<Name> and register it in src/controllers/index.ts`,
	}
	insertCMD = cli.Command{
		Name:        "insert",
		Usage:       "insert a handler into an existing controller",
		Action:      insertAction,
		ArgsUsage:   "<controller> <function>",
		Description: `Append an exported handler named <function> to src/controllers/<Controller>Controller.ts`,
	}
	routeCMD = cli.Command{
		Name:        "route",
		Usage:       "create a router",
		Action:      routeAction,
		ArgsUsage:   "<name>",
		Description: `Create src/routes/<name>Router.ts`,
	}
	seederCMD = cli.Command{
		Name:        "seeder",
		Usage:       "create a database seeder",
		Action:      seederAction,
		ArgsUsage:   "<name>",
		Description: `Create src/model/seed/<name>.ts`,
	}
)

func newScaffolder() *scaffold.Scaffolder {
	return scaffold.New(scaffold.GetConfig().Root)
}

func controllerAction(c *cli.Context) error {
	log := logrus.WithField("cmd", "controller")

	if _, err := newScaffolder().AddController(c.Args().Get(0)); err != nil {
		log.WithError(err).Error("Failed to create controller")
		return err
	}
	return nil
}

func insertAction(c *cli.Context) error {
	log := logrus.WithField("cmd", "insert")

	if _, err := newScaffolder().InsertController(c.Args().Get(0), c.Args().Get(1)); err != nil {
		log.WithError(err).Error("Failed to insert controller function")
		return err
	}
	return nil
}

func routeAction(c *cli.Context) error {
	log := logrus.WithField("cmd", "route")

	if _, err := newScaffolder().AddRoute(c.Args().Get(0)); err != nil {
		log.WithError(err).Error("Failed to create router")
		return err
	}
	return nil
}

func seederAction(c *cli.Context) error {
	log := logrus.WithField("cmd", "seeder")

	if _, err := newScaffolder().CreateSeeder(c.Args().Get(0)); err != nil {
		log.WithError(err).Error("Failed to create seeder")
		return err
	}
	return nil
}
