package ast

import (
	"fmt"
	"strings"

	"toyc/internal/tokens"
	"toyc/internal/types"
)

// Format prints body back to source. Parentheses are emitted only where the
// precedence table would otherwise regroup an operand.
func Format(body *Body) string {
	var sb strings.Builder
	p := printer{out: &sb}
	for i, stmt := range body.Stmts {
		if i > 0 {
			if _, ok := stmt.(*FuncDef); ok {
				sb.WriteByte('\n')
			}
		}
		p.stmt(stmt)
	}
	return sb.String()
}

// FormatExpr prints a single expression
func FormatExpr(expr Expression) string {
	var sb strings.Builder
	p := printer{out: &sb}
	p.expr(expr)
	return sb.String()
}

type printer struct {
	out    *strings.Builder
	indent int
}

func (p *printer) line(format string, args ...any) {
	p.out.WriteString(strings.Repeat("    ", p.indent))
	fmt.Fprintf(p.out, format, args...)
	p.out.WriteByte('\n')
}

func (p *printer) block(body *Body) {
	p.indent++
	for _, stmt := range body.Stmts {
		p.stmt(stmt)
	}
	p.indent--
	p.line("}")
}

func declString(d *Declaration) string {
	s := d.Name
	if d.Mutable {
		s = "mut " + s
	}
	if d.Type != types.TYPE_UNDEFINED && d.Type != "" {
		s += ": " + string(d.Type)
	}
	return s
}

func (p *printer) stmt(stmt Statement) {
	switch s := stmt.(type) {
	case *Declaration:
		p.line("let %s;", declString(s))
	case *DeclareAssign:
		p.line("let %s = %s;", declString(s.Decl), FormatExpr(s.Value))
	case *AssignStmt:
		p.line("%s = %s;", s.Target.Name, FormatExpr(s.Value))
	case *CallExpr:
		p.line("%s;", FormatExpr(s))
	case *ReturnStmt:
		p.line("return %s;", FormatExpr(s.Value))
	case *IfStmt:
		p.line("if %s {", FormatExpr(s.Cond))
		p.block(s.Body)
	case *FuncDef:
		sig := s.Signature
		params := make([]string, len(sig.Params))
		for i := range sig.Params {
			params[i] = declString(&sig.Params[i])
		}
		ret := ""
		if sig.Return != types.TYPE_VOID {
			ret = " -> " + string(sig.Return)
		}
		p.line("fn %s(%s)%s {", sig.Name, strings.Join(params, ", "), ret)
		p.block(s.Body)
	}
}

// binding is the precedence an expression binds at when used as an operand
func binding(expr Expression) int {
	if b, ok := expr.(*BinaryExpr); ok {
		return tokens.Precedence(b.Op.Kind)
	}
	return 1 << 8
}

func (p *printer) operand(expr Expression, parens bool) {
	if parens {
		p.out.WriteByte('(')
		p.expr(expr)
		p.out.WriteByte(')')
		return
	}
	p.expr(expr)
}

func (p *printer) expr(expr Expression) {
	switch e := expr.(type) {
	case *BinaryExpr:
		prec := tokens.Precedence(e.Op.Kind)
		// operators group to the left, so an equal-precedence right operand needs parens
		p.operand(e.X, binding(e.X) < prec)
		fmt.Fprintf(p.out, " %s ", e.Op.Kind)
		p.operand(e.Y, binding(e.Y) <= prec)
	case *VariableExpr:
		p.out.WriteString(e.Name)
	case *CallExpr:
		p.out.WriteString(e.Callee)
		p.out.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.expr(arg)
		}
		p.out.WriteByte(')')
	case *NumberLit:
		fmt.Fprintf(p.out, "%d", e.Value)
	case *StringLit:
		p.out.WriteString(`"` + e.Value + `"`)
	case *BoolLit:
		fmt.Fprintf(p.out, "%t", e.Value)
	}
}
