package treepeg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes the plain indented rendering of a parse tree: one line
// per value, leaves quoting what they matched.
func Dump(w io.Writer, v Value) {
	dump(w, v, 0)
}

func dump(w io.Writer, v Value, level int) {
	pad := strings.Repeat(" ", level)
	switch n := v.(type) {
	case *Node:
		fmt.Fprintf(w, "%s%s:\n", pad, n.Name())
		for _, child := range n.Children() {
			dump(w, child, level+4)
		}
	default:
		fmt.Fprintf(w, "%s%s: %q\n", pad, v.Name(), v.Text())
	}
}

// Pretty returns the box-drawing rendering of a parse tree, with each
// value's span next to it.
func Pretty(v Value) string {
	p := newValuePrinter()
	p.visit(v)
	return p.output.String()
}

type valuePrinter struct {
	padStr []string
	output strings.Builder
}

func newValuePrinter() *valuePrinter {
	return &valuePrinter{}
}

func (p *valuePrinter) visit(v Value) {
	switch n := v.(type) {
	case *Node:
		p.writel(fmt.Sprintf("%s (%s)", n.Name(), n.Span()))
		children := n.Children()
		for i, child := range children {
			switch {
			case i == len(children)-1:
				p.pwrite("└── ")
				p.indent("    ")
				p.visit(child)
				p.unindent()
			default:
				p.pwrite("├── ")
				p.indent("│   ")
				p.visit(child)
				p.unindent()
				p.write("\n")
			}
		}
	default:
		p.write(strconv.Quote(v.Text()))
		p.write(fmt.Sprintf(" (%s)", v.Span()))
	}
}

func (p *valuePrinter) indent(s string) {
	p.padStr = append(p.padStr, s)
}

func (p *valuePrinter) unindent() {
	p.padStr = p.padStr[:len(p.padStr)-1]
}

func (p *valuePrinter) padding() {
	for _, item := range p.padStr {
		p.write(item)
	}
}

func (p *valuePrinter) writel(s string) {
	p.write(s)
	p.output.WriteRune('\n')
}

func (p *valuePrinter) write(s string) {
	p.output.WriteString(s)
}

func (p *valuePrinter) pwrite(s string) {
	p.padding()
	p.write(s)
}
