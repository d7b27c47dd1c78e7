package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first character of name and keeps the rest.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// ControllerName turns "user" into "User".
func ControllerName(raw string) string {
	return Capitalize(raw)
}

// ControllerFunction turns "user" into "getUser".
func ControllerFunction(raw string) string {
	return "get" + ControllerName(raw)
}

// ControllerFile turns "user" into "UserController.ts".
func ControllerFile(raw string) string {
	return ControllerName(raw) + "Controller.ts"
}

// RouterName turns "user" into "userRouter". The raw name is not capitalised.
func RouterName(raw string) string {
	return raw + "Router"
}

// exportLine is the line appended to the controllers index for file.
func exportLine(file string) string {
	return `export * from "./` + strings.TrimSuffix(file, ".ts") + "\";\n"
}
