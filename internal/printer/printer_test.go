package printer

import (
	"strings"
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/session"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// ----------------------------------------------------------------------------
// Test helpers
// ----------------------------------------------------------------------------

func mustSName(t *testing.T, id string) *sname.SName {
	t.Helper()
	sn := sname.New()
	if err := sn.Append(id, sname.KindUnknown); err != nil {
		t.Fatalf("sname.Append(%q): %v", id, err)
	}
	return sn
}

func expectGibberish(t *testing.T, build func(a *ast.Arena) ast.ID, flags DeclFlags, want string) {
	t.Helper()
	a := ast.NewArena()
	id := build(a)
	p := New(Options{Lang: langver.C17, CV: session.CVWest})
	got := p.Gibberish(a, id, flags)
	if got != want {
		t.Errorf("Gibberish() = %q, want %q", got, want)
	}
}

func expectEnglishContains(t *testing.T, build func(a *ast.Arena) ast.ID, flags EnglishFlags, want string) {
	t.Helper()
	a := ast.NewArena()
	id := build(a)
	p := New(Options{Lang: langver.C17, CV: session.CVWest})
	got := p.English(a, id, flags)
	if !strings.Contains(got, want) {
		t.Errorf("English() = %q, want it to contain %q", got, want)
	}
}

// ----------------------------------------------------------------------------
// Gibberish printing
// ----------------------------------------------------------------------------

func TestGibberishPlainInt(t *testing.T) {
	expectGibberish(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		h := a.Header(v)
		h.Type.Base = typeid.BaseInt
		h.SName = mustSName(t, "x")
		return v
	}, FlagDeclaration|FlagTrailingSemicolon, "int x;")
}

func TestGibberishPointerToInt(t *testing.T) {
	expectGibberish(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		a.Header(v).Type.Base = typeid.BaseInt
		ptr := a.NewPointer(0)
		a.SetChildSlot(ptr, v)
		a.Header(ptr).SName = mustSName(t, "x")
		return ptr
	}, FlagDeclaration|FlagTrailingSemicolon, "int *x;")
}

func TestGibberishArrayOfInt(t *testing.T) {
	expectGibberish(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		a.Header(v).Type.Base = typeid.BaseInt
		arr := a.NewArray(0)
		n := a.Node(arr).(*ast.Array)
		n.SizeKind = ast.SizeInt
		n.SizeInt = 3
		a.SetChildSlot(arr, v)
		a.Header(arr).SName = mustSName(t, "a")
		return arr
	}, FlagDeclaration|FlagTrailingSemicolon, "int a[3];")
}

func TestGibberishConstPointerWest(t *testing.T) {
	expectGibberish(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		h := a.Header(v)
		h.Type.Base = typeid.BaseInt
		h.Type.Storage = h.Type.Storage.Union(typeid.StorageConst)
		ptr := a.NewPointer(0)
		a.SetChildSlot(ptr, v)
		a.Header(ptr).SName = mustSName(t, "x")
		return ptr
	}, FlagDeclaration|FlagTrailingSemicolon, "const int *x;")
}

// ----------------------------------------------------------------------------
// English printing
// ----------------------------------------------------------------------------

func TestEnglishPointerToIntMentionsPointer(t *testing.T) {
	expectEnglishContains(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		a.Header(v).Type.Base = typeid.BaseInt
		ptr := a.NewPointer(0)
		a.SetChildSlot(ptr, v)
		a.Header(ptr).SName = mustSName(t, "x")
		return ptr
	}, 0, "pointer")
}

func TestEnglishArrayMentionsArray(t *testing.T) {
	expectEnglishContains(t, func(a *ast.Arena) ast.ID {
		v := a.NewBuiltin(0)
		a.Header(v).Type.Base = typeid.BaseInt
		arr := a.NewArray(0)
		n := a.Node(arr).(*ast.Array)
		n.SizeKind = ast.SizeInt
		n.SizeInt = 3
		a.SetChildSlot(arr, v)
		a.Header(arr).SName = mustSName(t, "a")
		return arr
	}, 0, "array")
}

// ----------------------------------------------------------------------------
// Typedef printing
// ----------------------------------------------------------------------------

func TestTypedefGibberishUsesTypedefKeyword(t *testing.T) {
	a := ast.NewArena()
	v := a.NewBuiltin(0)
	a.Header(v).Type.Base = typeid.BaseInt
	rec := typedefreg.Record{SName: mustSName(t, "Count"), Arena: a, Root: v}

	p := New(Options{Lang: langver.C17, CV: session.CVWest})
	got := p.TypedefGibberish(rec, FlagTypedef|FlagTrailingSemicolon)
	if !strings.HasPrefix(got, "typedef ") {
		t.Errorf("TypedefGibberish() = %q, want it to start with \"typedef \"", got)
	}
	if !strings.Contains(got, "Count") {
		t.Errorf("TypedefGibberish() = %q, want it to mention the typedef name", got)
	}
}

func TestTypedefGibberishUsingForm(t *testing.T) {
	a := ast.NewArena()
	v := a.NewBuiltin(0)
	a.Header(v).Type.Base = typeid.BaseInt
	rec := typedefreg.Record{SName: mustSName(t, "Count"), Arena: a, Root: v}

	p := New(Options{Lang: langver.CPP11, CV: session.CVWest})
	got := p.TypedefGibberish(rec, FlagUsing|FlagTrailingSemicolon)
	if !strings.HasPrefix(got, "using Count") {
		t.Errorf("TypedefGibberish() (using form) = %q, want it to start with \"using Count\"", got)
	}
}

func TestTypedefEnglishMentionsName(t *testing.T) {
	a := ast.NewArena()
	v := a.NewBuiltin(0)
	a.Header(v).Type.Base = typeid.BaseInt
	rec := typedefreg.Record{SName: mustSName(t, "Count"), Arena: a, Root: v}

	p := New(Options{Lang: langver.C17, CV: session.CVWest})
	got := p.TypedefEnglish(rec)
	if !strings.Contains(got, "Count") {
		t.Errorf("TypedefEnglish() = %q, want it to mention the typedef name", got)
	}
}
