package command

import (
	"strings"
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/session"
)

func newSession(lang langver.Lang) *session.Session {
	return session.New(session.Options{Lang: lang, CV: session.CVWest})
}

func TestDeclarePointerToIntPrintsGibberish(t *testing.T) {
	c := New(newSession(langver.C17), "")
	res, err := c.Declare("declare x as pointer to int")
	if err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	const want = "int *x;"
	if res.Gibberish != want {
		t.Errorf("Gibberish = %q, want %q", res.Gibberish, want)
	}
}

func TestExplainArrayOfIntPrintsEnglish(t *testing.T) {
	c := New(newSession(langver.C17), "")
	res, err := c.Explain("int a[3];")
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if !strings.Contains(res.English, "array") {
		t.Errorf("English = %q, want it to mention \"array\"", res.English)
	}
}

func TestDeclareBareVoidIsRejected(t *testing.T) {
	c := New(newSession(langver.C17), "")
	if _, err := c.Declare("declare x as void"); err == nil {
		t.Error("expected a bare void variable to be rejected")
	}
}

func TestTypedefRegistersAndIsReusable(t *testing.T) {
	sess := newSession(langver.C17)

	c1 := New(sess, "")
	res, err := c1.Explain("typedef int Count;")
	if err != nil {
		t.Fatalf("typedef declaration failed: %v", err)
	}
	if res.Typedef != "Count" {
		t.Errorf("Typedef = %q, want %q", res.Typedef, "Count")
	}
	if sess.Typedefs.FindName("Count") == nil {
		t.Fatal("Count should be registered in the typedef registry")
	}

	c2 := New(sess, "")
	res2, err := c2.Explain("Count n;")
	if err != nil {
		t.Fatalf("using the typedef failed: %v", err)
	}
	if !strings.Contains(res2.English, "Count") {
		t.Errorf("English = %q, want it to mention the typedef name", res2.English)
	}
}

func TestExplainListAppliesListCheck(t *testing.T) {
	c := New(newSession(langver.C17), "")
	results, err := c.ExplainList("int i, *j;")
	if err != nil {
		t.Fatalf("ExplainList failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestSyntaxErrorIsReported(t *testing.T) {
	c := New(newSession(langver.C17), "")
	if _, err := c.Explain("int a[3"); err == nil {
		t.Error("expected a syntax error for an unterminated array declarator")
	}
}
