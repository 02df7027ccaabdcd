package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/daystram/magicgen/magic"
	"github.com/daystram/magicgen/position"
)

func TestEmit(t *testing.T) {
	t.Parallel()
	entries, err := magic.Generate(position.BishopDirections, magic.WithSeed(9))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var buf bytes.Buffer
	if err := emit(&buf, "magics", "Bishop", "run-1", 9, position.BishopDirections, entries); err != nil {
		t.Fatal("unexpected error:", err)
	}
	src := buf.String()

	f, err := parser.ParseFile(token.NewFileSet(), "bishop.go", src, 0)
	if err != nil {
		t.Fatalf("emitted source does not parse: %v", err)
	}
	if f.Name.Name != "magics" {
		t.Errorf("unexpected package: got=%s want=%s", f.Name.Name, "magics")
	}

	var names []string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				names = append(names, s.Name.Name)
			case *ast.ValueSpec:
				names = append(names, s.Names[0].Name)
			}
		}
	}
	if got := strings.Join(names, ","); got != "BishopMagic,BishopMagics,BishopAttacks" {
		t.Errorf("unexpected declarations: got=%s", got)
	}

	if !strings.Contains(src, "[5248]uint64") {
		t.Error("attack array size missing")
	}
	if !strings.HasPrefix(src, "// Code generated by magicgen. DO NOT EDIT.") {
		t.Error("generated header missing")
	}
	for _, e := range entries {
		if want := fmt.Sprintf("Number: 0x%016x", e.Number); !strings.Contains(src, want) {
			t.Errorf("magic for %s missing: %s", e.Pos, want)
		}
	}
}

func TestPieceName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{in: "rook", want: "Rook"},
		{in: " Bishop ", want: "Bishop"},
		{in: "queen", want: "Queen"},
		{in: "N,E", want: "Slider"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := pieceName(tt.in); got != tt.want {
				t.Errorf("unexpected result: got=%s want=%s", got, tt.want)
			}
		})
	}
}
