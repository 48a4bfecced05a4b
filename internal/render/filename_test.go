package render

import (
	"testing"

	"github.com/atomicstack/screen-generator/internal/model"
)

func TestFileName(t *testing.T) {
	base := model.ScreenElement{
		Name:             "Login",
		FileType:         model.FileTypeKotlin,
		SourceSet:        "main",
		Subdirectory:     "ui",
		AndroidComponent: model.AndroidComponentFragment,
	}
	cases := []struct {
		template string
		want     string
	}{
		{"${Name}Screen", "LoginScreen"},
		{"${Name}.kt", "Login.kt"},
		{"", ""},
		{"plain", "plain"},
		{"${Name}${Component}", "LoginFragment"},
		{"${Unknown}${Name}", "${Unknown}Login"},
		{"${Name", "${Name"},
		{"a${Name}b${Name}c", "aLoginbLoginc"},
		{"${SourceSet}/${Subdirectory}/${Name}.${Extension}", "main/ui/Login.kt"},
		{"fragment_${name}", "fragment_login"},
		{"$Name", "$Name"},
		{"${ ${Name}.kt", "${ Login.kt"},
		{"cost${${Name}}", "cost${Login}"},
		{"${Unknown${Name}", "${UnknownLogin"},
		{"${a${b${Name}", "${a${bLogin"},
	}
	for _, tc := range cases {
		e := base
		e.FileNameTemplate = tc.template
		if got := FileName(e); got != tc.want {
			t.Fatalf("template %q: expected %q, got %q", tc.template, tc.want, got)
		}
	}
}

func TestFileNameIsPure(t *testing.T) {
	e := model.ScreenElement{Name: "Login", FileNameTemplate: "${Name}Screen"}
	first := FileName(e)
	if second := FileName(e); first != second {
		t.Fatalf("expected identical output, got %q and %q", first, second)
	}
	e.Name = "Profile"
	if got := FileName(e); got != "ProfileScreen" {
		t.Fatalf("expected new name substituted, got %q", got)
	}
}

func TestComponentNoneRendersEmpty(t *testing.T) {
	e := model.ScreenElement{Name: "Home", FileNameTemplate: "${Name}${Component}", AndroidComponent: model.AndroidComponentNone}
	if got := FileName(e); got != "Home" {
		t.Fatalf("expected empty component, got %q", got)
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"LoginScreen":  "login_screen",
		"login":        "login",
		"HTTPClient":   "http_client",
		"User Profile": "user_profile",
		"my-screen":    "my_screen",
		"Screen2Go":    "screen2_go",
		"":             "",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestTokensArePlaceholders(t *testing.T) {
	for _, token := range Tokens() {
		e := model.ScreenElement{FileNameTemplate: token.Placeholder()}
		if got := FileName(e); got == token.Placeholder() {
			t.Fatalf("expected %s to be recognised", token.Placeholder())
		}
	}
}

func TestTokenResolveMatchesFileName(t *testing.T) {
	e := model.ScreenElement{Name: "User Profile", FileType: model.FileTypeJava, SourceSet: "debug"}
	for _, tok := range Tokens() {
		e.FileNameTemplate = tok.Placeholder()
		if got, want := tok.Resolve(e), FileName(e); got != want {
			t.Fatalf("%s: Resolve %q, FileName %q", tok.Placeholder(), got, want)
		}
	}
}
