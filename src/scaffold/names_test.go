package scaffold

import (
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	tests := []struct {
		raw      string
		function string
		file     string
		router   string
	}{
		{"user", "getUser", "UserController.ts", "userRouter"},
		{"User", "getUser", "UserController.ts", "UserRouter"},
		{"orderItem", "getOrderItem", "OrderItemController.ts", "orderItemRouter"},
		{"élan", "getÉlan", "ÉlanController.ts", "élanRouter"},
	}

	for _, tt := range tests {
		if got := ControllerFunction(tt.raw); got != tt.function {
			t.Fatalf("ControllerFunction(%q) = %q, expected %q", tt.raw, got, tt.function)
		}
		if got := ControllerFile(tt.raw); got != tt.file {
			t.Fatalf("ControllerFile(%q) = %q, expected %q", tt.raw, got, tt.file)
		}
		if got := RouterName(tt.raw); got != tt.router {
			t.Fatalf("RouterName(%q) = %q, expected %q", tt.raw, got, tt.router)
		}
	}
}

func TestExportLine(t *testing.T) {
	if got := exportLine("UserController.ts"); got != "export * from \"./UserController\";\n" {
		t.Fatalf("unexpected export line %q", got)
	}
}

func TestRenderReplacesEveryPlaceholder(t *testing.T) {
	out := Render(routerTemplate, routerPlaceholder, "userRouter")
	if out != Render(routerTemplate, routerPlaceholder, "userRouter") {
		t.Fatalf("render is not deterministic")
	}
	const expected = "const userRouter = Router();"
	if !strings.Contains(out, expected) || !strings.Contains(out, "export default userRouter;") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}
