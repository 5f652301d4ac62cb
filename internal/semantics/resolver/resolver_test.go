package resolver

import (
	"testing"

	"toyc/internal/frontend/ast"
	"toyc/internal/types"
)

func decl(name string, typ types.TYPE_NAME) ast.Declaration {
	return ast.Declaration{Name: name, Type: typ}
}

func TestVariableResolve(t *testing.T) {
	r := NewVariableResolver()
	r.Add(decl("x", types.TYPE_I32))

	got, ok := r.Resolve("x")
	if !ok {
		t.Fatal("Resolve did not find declared variable")
	}
	if got.Type != types.TYPE_I32 {
		t.Errorf("expected i32, got %s", got.Type)
	}

	if _, ok := r.Resolve("y"); ok {
		t.Error("Resolve found an undeclared variable")
	}
}

func TestVariableShadowingPrefersMostRecent(t *testing.T) {
	r := NewVariableResolver()
	r.Add(decl("x", types.TYPE_I32))
	r.Add(decl("y", types.TYPE_BOOL))
	r.Add(decl("x", types.TYPE_STR))

	got, _ := r.Resolve("x")
	if got.Type != types.TYPE_STR {
		t.Errorf("expected the later declaration to win, got %s", got.Type)
	}
}

func TestEnterScopeIsolation(t *testing.T) {
	parent := NewVariableResolver()
	parent.Add(decl("x", types.TYPE_I32))

	child := parent.EnterScope()
	child.Add(decl("x", types.TYPE_STR))
	child.Add(decl("z", types.TYPE_U8))

	if got, _ := child.Resolve("x"); got.Type != types.TYPE_STR {
		t.Errorf("child should see its own x, got %s", got.Type)
	}
	if got, _ := parent.Resolve("x"); got.Type != types.TYPE_I32 {
		t.Errorf("parent x must be unchanged, got %s", got.Type)
	}
	if _, ok := parent.Resolve("z"); ok {
		t.Error("child additions leaked into the parent")
	}

	// later parent additions are not visible to an existing child either
	parent.Add(decl("w", types.TYPE_BOOL))
	if _, ok := child.Resolve("w"); ok {
		t.Error("snapshot must not observe later parent additions")
	}
	if parent.Len() != 2 || child.Len() != 3 {
		t.Errorf("unexpected sizes parent=%d child=%d", parent.Len(), child.Len())
	}
}

func TestResolvedDeclarationIsACopy(t *testing.T) {
	r := NewVariableResolver()
	r.Add(decl("x", types.TYPE_UNDEFINED))

	got, _ := r.Resolve("x")
	got.Type = types.TYPE_BOOL

	if again, _ := r.Resolve("x"); again.Type != types.TYPE_UNDEFINED {
		t.Error("mutating a resolved declaration changed the resolver")
	}
}

func TestFunctionResolver(t *testing.T) {
	r := NewFunctionResolver()
	r.Add(ast.FunctionSignature{Name: "f", Params: []ast.Declaration{decl("a", types.TYPE_U8)}, Return: types.TYPE_U8})

	sig, ok := r.Resolve("f")
	if !ok || sig.Return != types.TYPE_U8 || len(sig.Params) != 1 {
		t.Fatalf("unexpected signature %+v", sig)
	}

	sig.Params[0].Type = types.TYPE_STR
	if again, _ := r.Resolve("f"); again.Params[0].Type != types.TYPE_U8 {
		t.Error("resolved signatures must not share parameter storage")
	}

	if _, ok := r.Resolve("g"); ok {
		t.Error("found an unregistered function")
	}
}

func TestFunctionEnterScope(t *testing.T) {
	parent := NewFunctionResolver()
	parent.Add(ast.FunctionSignature{Name: "f", Return: types.TYPE_VOID})

	child := parent.EnterScope()
	child.Add(ast.FunctionSignature{Name: "f", Return: types.TYPE_BOOL})

	if got, _ := child.Resolve("f"); got.Return != types.TYPE_BOOL {
		t.Errorf("child should see the inner f, got %s", got.Return)
	}
	if got, _ := parent.Resolve("f"); got.Return != types.TYPE_VOID {
		t.Errorf("parent f must be unchanged, got %s", got.Return)
	}
}

func TestAddFromBody(t *testing.T) {
	inner := &ast.FuncDef{Signature: &ast.FunctionSignature{Name: "inner"}, Body: &ast.Body{}}
	body := &ast.Body{Stmts: []ast.Statement{
		&ast.FuncDef{Signature: &ast.FunctionSignature{Name: "a"}, Body: &ast.Body{Stmts: []ast.Statement{inner}}},
		&ast.Declaration{Name: "x"},
		&ast.FuncDef{Signature: &ast.FunctionSignature{Name: "b"}, Body: &ast.Body{}},
	}}

	r := NewFunctionResolver()
	r.AddFromBody(body)

	for _, name := range []string{"a", "b"} {
		if _, ok := r.Resolve(name); !ok {
			t.Errorf("expected %s to be registered", name)
		}
	}
	if _, ok := r.Resolve("inner"); ok {
		t.Error("nested functions must not be registered by the outer body")
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 signatures, got %d", r.Len())
	}
}
