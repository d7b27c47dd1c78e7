package scaffold

import "strings"

const (
	controllerPlaceholder = "{{CONTROLLER_FUNCTION}}"
	handlerPlaceholder    = "{{CONTROLLER_NAME}}"
	routerPlaceholder     = "{{ROUTER_NAME}}"
)

const controllerTemplate = `import { RequestHandler } from "express";

export const {{CONTROLLER_FUNCTION}}: RequestHandler = async (request, response, next) => {
  try {
    // Your logic here
  } catch (error) {
    next(error);
  }
};

`

// handlerTemplate is appended to an existing controller file.
const handlerTemplate = `export const {{CONTROLLER_NAME}}: RequestHandler = async (request, response, next) => {
  try {
    // Your logic here
  } catch (error) {
    next(error);
  }
};
`

const routerTemplate = `import { Router } from "express";

const {{ROUTER_NAME}} = Router();

/**
 * Insert your controllers here
 * @example exampleRouter.get("/", getExample)
 */

export default {{ROUTER_NAME}};
`

const seederTemplate = `export async function seed() {
  /**
   * Your seeding logic here
   */
}

seed();
`

// Render replaces every occurrence of placeholder in tmpl with value.
func Render(tmpl, placeholder, value string) string {
	return strings.ReplaceAll(tmpl, placeholder, value)
}
