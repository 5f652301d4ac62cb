package typechecker

import (
	"toyc/internal/frontend/ast"
	"toyc/internal/semantics/resolver"
	"toyc/internal/tokens"
	"toyc/internal/types"
)

// Checker checks one body against the scopes it was created with.
// Nested bodies get their own Checker over snapshots of these scopes.
type Checker struct {
	vars       *resolver.VariableResolver
	funcs      *resolver.FunctionResolver
	body       *ast.Body
	returnType types.TYPE_NAME
}

func New(vars *resolver.VariableResolver, funcs *resolver.FunctionResolver, body *ast.Body, returnType types.TYPE_NAME) *Checker {
	return &Checker{vars: vars, funcs: funcs, body: body, returnType: returnType}
}

// Check type checks a whole program, stopping at the first error.
// On success every expression in body carries its type and every
// inferred declaration has been given one.
func Check(body *ast.Body) error {
	return New(resolver.NewVariableResolver(), resolver.NewFunctionResolver(), body, types.TYPE_VOID).Check()
}

// Check registers the body's functions and then walks its statements in order.
func (c *Checker) Check() error {
	c.RegisterFunctions()
	for _, stmt := range c.body.Stmts {
		if err := c.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFunctions makes every function defined directly in the body callable
// from anywhere in it, regardless of definition order.
func (c *Checker) RegisterFunctions() {
	c.funcs.AddFromBody(c.body)
}

// CheckFunction checks fn's body in child scopes with its parameters visible.
// c's own scopes are only read, so sibling functions may be checked concurrently
// once RegisterFunctions has run.
func (c *Checker) CheckFunction(fn *ast.FuncDef) error {
	vars := c.vars.EnterScope()
	for _, param := range fn.Signature.Params {
		vars.Add(param)
	}
	return New(vars, c.funcs.EnterScope(), fn.Body, fn.Signature.Return).Check()
}

func (c *Checker) checkStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		// only a declaration with an initializer can infer its type
		if s.Type == types.TYPE_UNDEFINED {
			return &Error{Kind: UnresolvedInferenceTarget, Name: s.Name, Location: &s.Location}
		}
		c.vars.Add(*s)
		return nil
	case *ast.DeclareAssign:
		return c.checkDeclareAssign(s)
	case *ast.AssignStmt:
		return c.checkAssign(s)
	case *ast.CallExpr:
		if _, err := c.checkCall(s); err != nil {
			return err
		}
		s.Type = types.TYPE_VOID
		return nil
	case *ast.FuncDef:
		return c.CheckFunction(s)
	case *ast.IfStmt:
		return c.checkIf(s)
	case *ast.ReturnStmt:
		typ, err := c.checkExpr(s.Value, c.returnType)
		if err != nil {
			return err
		}
		if typ != c.returnType {
			return &Error{Kind: InvalidReturnType, Expected: c.returnType, Found: typ, Location: s.Value.Loc()}
		}
		return nil
	}
	return nil
}

func (c *Checker) checkDeclareAssign(s *ast.DeclareAssign) error {
	decl := s.Decl
	typ, err := c.checkExpr(s.Value, decl.Type)
	if err != nil {
		return err
	}

	switch {
	case decl.Type == types.TYPE_UNDEFINED:
		if typ == types.TYPE_VOID {
			return &Error{Kind: UnresolvedInferenceTarget, Name: decl.Name, Found: typ, Location: s.Value.Loc()}
		}
		decl.Type = typ
	case typ != decl.Type:
		return &Error{Kind: ArgTypeMismatch, Name: decl.Name, Expected: decl.Type, Found: typ, Location: s.Value.Loc()}
	}

	c.vars.Add(*decl)
	return nil
}

func (c *Checker) checkAssign(s *ast.AssignStmt) error {
	decl, err := c.lookupVariable(s.Target)
	if err != nil {
		return err
	}
	typ, err := c.checkExpr(s.Value, decl.Type)
	if err != nil {
		return err
	}
	if typ != decl.Type {
		return &Error{Kind: ArgTypeMismatch, Name: decl.Name, Expected: decl.Type, Found: typ, Location: s.Value.Loc()}
	}
	return nil
}

func (c *Checker) checkIf(s *ast.IfStmt) error {
	typ, err := c.checkExpr(s.Cond, types.TYPE_BOOL)
	if err != nil {
		return err
	}
	if typ != types.TYPE_BOOL {
		return &Error{Kind: ArgTypeMismatch, Expected: types.TYPE_BOOL, Found: typ, Location: s.Cond.Loc()}
	}
	return New(c.vars.EnterScope(), c.funcs.EnterScope(), s.Body, types.TYPE_VOID).Check()
}

// lookupVariable resolves v and records its type on the node
func (c *Checker) lookupVariable(v *ast.VariableExpr) (ast.Declaration, error) {
	decl, ok := c.vars.Resolve(v.Name)
	if !ok {
		return decl, &Error{Kind: UndeclaredVariable, Name: v.Name, Location: &v.Location}
	}
	if decl.Type == types.TYPE_UNDEFINED {
		return decl, &Error{Kind: UnresolvedInferenceTarget, Name: v.Name, Location: &v.Location}
	}
	v.Type = decl.Type
	return decl, nil
}

// checkExpr returns the type of expr and stores it on the node. expected is
// the type the context wants, or TYPE_UNDEFINED; it only steers literals.
func (c *Checker) checkExpr(expr ast.Expression, expected types.TYPE_NAME) (types.TYPE_NAME, error) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		decl, err := c.lookupVariable(e)
		return decl.Type, err
	case *ast.CallExpr:
		return c.checkCall(e)
	case *ast.BinaryExpr:
		return c.checkBinary(e, expected)
	case *ast.NumberLit:
		e.Type = literalType(e.Value, expected)
		return e.Type, nil
	case *ast.StringLit:
		e.Type = types.TYPE_STR
		return e.Type, nil
	case *ast.BoolLit:
		e.Type = types.TYPE_BOOL
		return e.Type, nil
	}
	return types.TYPE_UNDEFINED, nil
}

// literalType is i32 unless the context asks for an integer type the value fits in
func literalType(value int32, expected types.TYPE_NAME) types.TYPE_NAME {
	if types.IsInteger(expected) && types.Fits(int64(value), expected) {
		return expected
	}
	return types.DEFAULT_INT_TYPE
}

func (c *Checker) checkCall(call *ast.CallExpr) (types.TYPE_NAME, error) {
	sig, ok := c.funcs.Resolve(call.Callee)
	if !ok {
		return types.TYPE_UNDEFINED, &Error{Kind: UndefinedFunction, Name: call.Callee, Location: &call.Location}
	}
	if len(call.Args) != len(sig.Params) {
		return types.TYPE_UNDEFINED, &Error{
			Kind:     ArityMismatch,
			Name:     call.Callee,
			Want:     len(sig.Params),
			Got:      len(call.Args),
			Location: &call.Location,
			Declared: &sig.Location,
		}
	}

	for i, arg := range call.Args {
		param := sig.Params[i]
		typ, err := c.checkExpr(arg, param.Type)
		if err != nil {
			return types.TYPE_UNDEFINED, err
		}
		if typ != param.Type {
			return types.TYPE_UNDEFINED, &Error{
				Kind:     ArgTypeMismatch,
				Name:     call.Callee,
				Arg:      i + 1,
				Expected: param.Type,
				Found:    typ,
				Location: arg.Loc(),
				Declared: &sig.Location,
			}
		}
	}

	call.Type = sig.Return
	if call.ResultIgnored {
		call.Type = types.TYPE_VOID
	}
	return call.Type, nil
}

// isLiteral reports whether expr is built from literals alone, so that its
// type can still follow the context
func isLiteral(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit:
		return true
	case *ast.BinaryExpr:
		return isLiteral(e.X) && isLiteral(e.Y)
	}
	return false
}

// operandHint is the type a binary operator asks of its operands
func operandHint(op tokens.TOKEN, expected types.TYPE_NAME) types.TYPE_NAME {
	switch op {
	case tokens.PLUS_TOKEN, tokens.MINUS_TOKEN, tokens.MUL_TOKEN, tokens.DIV_TOKEN,
		tokens.BIT_AND_TOKEN, tokens.BIT_OR_TOKEN, tokens.BIT_XOR_TOKEN,
		tokens.SHIFT_LEFT_TOKEN, tokens.SHIFT_RIGHT_TOKEN:
		return expected
	}
	return types.TYPE_UNDEFINED
}

func (c *Checker) checkBinary(e *ast.BinaryExpr, expected types.TYPE_NAME) (types.TYPE_NAME, error) {
	op := e.Op.Kind
	hint := operandHint(op, expected)

	// the non-literal side is checked first so a literal can take its type
	first, second := e.X, e.Y
	if isLiteral(e.X) && !isLiteral(e.Y) {
		first, second = e.Y, e.X
	}
	firstType, err := c.checkExpr(first, hint)
	if err != nil {
		return types.TYPE_UNDEFINED, err
	}
	if _, err := c.checkExpr(second, firstType); err != nil {
		return types.TYPE_UNDEFINED, err
	}

	left, right := ast.TypeOf(e.X), ast.TypeOf(e.Y)
	if left != right {
		return types.TYPE_UNDEFINED, &Error{Kind: IncompatibleOperands, Name: string(op), Expected: left, Found: right, Location: &e.Location}
	}

	result, ok := binaryResult(op, left)
	if !ok {
		kind := IncompatibleOperandType
		if result == types.TYPE_UNDEFINED {
			kind = UnsupportedOperator
		}
		return types.TYPE_UNDEFINED, &Error{Kind: kind, Name: string(op), Found: left, Location: &e.Location}
	}
	e.Type = result
	return result, nil
}

// binaryResult gives the type op yields over operands of type common.
// ok is false when the operand type is wrong for op; result is then
// TYPE_UNDEFINED for operators that never appear in expressions.
func binaryResult(op tokens.TOKEN, common types.TYPE_NAME) (result types.TYPE_NAME, ok bool) {
	switch op {
	case tokens.PLUS_TOKEN:
		if common == types.TYPE_STR {
			return types.TYPE_STR, true
		}
		return common, types.IsInteger(common)
	case tokens.MINUS_TOKEN, tokens.MUL_TOKEN, tokens.DIV_TOKEN,
		tokens.BIT_AND_TOKEN, tokens.BIT_OR_TOKEN, tokens.BIT_XOR_TOKEN,
		tokens.SHIFT_LEFT_TOKEN, tokens.SHIFT_RIGHT_TOKEN:
		return common, types.IsInteger(common)
	case tokens.AND_TOKEN, tokens.OR_TOKEN, tokens.XOR_TOKEN, tokens.NOT_TOKEN:
		return types.TYPE_BOOL, common == types.TYPE_BOOL
	case tokens.DOUBLE_EQUAL_TOKEN, tokens.NOT_EQUAL_TOKEN:
		return types.TYPE_BOOL, true
	case tokens.LESS_TOKEN, tokens.GREATER_TOKEN:
		return types.TYPE_BOOL, types.IsInteger(common)
	}
	return types.TYPE_UNDEFINED, false
}
