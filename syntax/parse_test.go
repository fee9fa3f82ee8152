package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 検証しやすいようにブロックを印字済みテキストへ落とす
type printedBlock struct {
	ViewItems []string
	Stmts     []string
	Kinds     []StmtKind
}

func printBlock(blk *Block) printedBlock {
	p := printedBlock{}
	for _, v := range blk.ViewItems {
		p.ViewItems = append(p.ViewItems, PrintViewItem(v))
	}
	for _, s := range blk.Stmts {
		p.Stmts = append(p.Stmts, PrintStmt(s))
		p.Kinds = append(p.Kinds, s.Kind())
	}
	return p
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected printedBlock
	}{
		{
			name: "view items and let declaration",
			src:  "use core::io;\nextern mod std;\nlet a = 1;",
			expected: printedBlock{
				ViewItems: []string{"use core::io;", "extern mod std;"},
				Stmts:     []string{"let a = 1;"},
				Kinds:     []StmtKind{StmtDecl},
			},
		},
		{
			name: "function declaration ends at closing brace",
			src:  "fn double(x: int) -> int { x * 2 }\ndouble(2)",
			expected: printedBlock{
				Stmts: []string{"fn double(x: int) -> int { x * 2 }", "double(2);"},
				Kinds: []StmtKind{StmtDecl, StmtExpr},
			},
		},
		{
			name: "struct literal braces do not end a let statement",
			src:  "let p = Point { x: 1, y: 2 };",
			expected: printedBlock{
				Stmts: []string{"let p = Point { x: 1, y: 2 };"},
				Kinds: []StmtKind{StmtDecl},
			},
		},
		{
			name: "macro definition is a declaration-like statement",
			src:  "macro_rules! twice { ($e:expr) => ($e + $e) }",
			expected: printedBlock{
				Stmts: []string{"macro_rules! twice { ($e:expr) => ($e + $e) }"},
				Kinds: []StmtKind{StmtMacroDecl},
			},
		},
		{
			name: "assignment expression statement",
			src:  "a = 2;",
			expected: printedBlock{
				Stmts: []string{"a = 2;"},
				Kinds: []StmtKind{StmtAssign},
			},
		},
		{
			name: "compound assignments",
			src:  "a += 1;\nb <<= 2;",
			expected: printedBlock{
				Stmts: []string{"a += 1;", "b <<= 2;"},
				Kinds: []StmtKind{StmtAssign, StmtAssign},
			},
		},
		{
			name: "comparison is not an assignment",
			src:  "a == 2",
			expected: printedBlock{
				Stmts: []string{"a == 2;"},
				Kinds: []StmtKind{StmtExpr},
			},
		},
		{
			name: "assignment inside a call is not top level",
			src:  "io::println(fmt!(\"%?\", a == 1))",
			expected: printedBlock{
				Stmts: []string{"io::println(fmt!(\"%?\", a == 1));"},
				Kinds: []StmtKind{StmtExpr},
			},
		},
		{
			name: "trailing expression without semicolon",
			src:  "let a = 1;\na",
			expected: printedBlock{
				Stmts: []string{"let a = 1;", "a;"},
				Kinds: []StmtKind{StmtDecl, StmtExpr},
			},
		},
		{
			name: "if expression with else ends at the final brace",
			src:  "if a > 0 { 1 } else { 2 }\nlet b = 3;",
			expected: printedBlock{
				Stmts: []string{"if a > 0 { 1 } else { 2 }", "let b = 3;"},
				Kinds: []StmtKind{StmtExpr, StmtDecl},
			},
		},
		{
			name: "string literal containing delimiters",
			src:  "let s = \"a;b}c\";\nio::println(s)",
			expected: printedBlock{
				Stmts: []string{"let s = \"a;b}c\";", "io::println(s);"},
				Kinds: []StmtKind{StmtDecl, StmtExpr},
			},
		},
		{
			name: "line comment is skipped",
			src:  "let a = 1; // a; comment\nlet b = 2;",
			expected: printedBlock{
				Stmts: []string{"let a = 1;", "let b = 2;"},
				Kinds: []StmtKind{StmtDecl, StmtDecl},
			},
		},
		{
			name: "lifetime does not open a char literal",
			src:  "fn id<T>(x: &'a T) -> &'a T { x }",
			expected: printedBlock{
				Stmts: []string{"fn id<T>(x: &'a T) -> &'a T { x }"},
				Kinds: []StmtKind{StmtDecl},
			},
		},
		{
			name: "bare unsafe block is a plain expression",
			src:  "unsafe { launch(); }",
			expected: printedBlock{
				Stmts: []string{"unsafe { launch(); }"},
				Kinds: []StmtKind{StmtExpr},
			},
		},
		{
			name: "unsafe-prefixed declaration forms",
			src:  "unsafe fn danger() { 1 }\npub unsafe fn expose() { 2 }",
			expected: printedBlock{
				Stmts: []string{"unsafe fn danger() { 1 }", "pub unsafe fn expose() { 2 }"},
				Kinds: []StmtKind{StmtDecl, StmtDecl},
			},
		},
		{
			name:     "empty block",
			src:      "   \n\t",
			expected: printedBlock{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := printBlock(ParseBlock(tt.src))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("parsed block mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarkerBlock(t *testing.T) {
	program := "extern mod std;\n" +
		"fn __rusti_print<T>(result: T) { io::println(fmt!(\"%?\", result)); }\n" +
		"fn main() {\n" +
		"    let a = 1;\n" +
		"    __rusti_print({\n" +
		"        let b = 2;\n" +
		"        a + b\n" +
		"    });\n" +
		"}\n"

	blk, err := MarkerBlock(program, "__rusti_print")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := printBlock(blk)
	expected := printedBlock{
		Stmts: []string{"let b = 2;", "a + b;"},
		Kinds: []StmtKind{StmtDecl, StmtExpr},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("marker block mismatch (-want +got):\n%s", diff)
	}
}

// マーカー名が文字列リテラルやコメントに現れても呼び出し部の特定を誤らない
func TestMarkerBlock_MarkerNameInNonCode(t *testing.T) {
	program := "extern mod std;\n" +
		"fn __rusti_print<T>(result: T) { io::println(fmt!(\"%?\", result)); }\n" +
		"fn main() {\n" +
		"    // note: __rusti_print( is the display glue\n" +
		"    __rusti_print({\n" +
		"        let a = \"see __rusti_print(x)\";\n" +
		"        a\n" +
		"    });\n" +
		"}\n"

	blk, err := MarkerBlock(program, "__rusti_print")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := printBlock(blk)
	expected := printedBlock{
		Stmts: []string{"let a = \"see __rusti_print(x)\";", "a;"},
		Kinds: []StmtKind{StmtDecl, StmtExpr},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("marker block mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkerBlock_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		program string
	}{
		{
			name:    "marker call missing",
			program: "fn main() { let a = 1; }",
		},
		{
			name:    "argument is not a block",
			program: "fn main() { __rusti_print(1); }",
		},
		{
			name:    "more than one argument",
			program: "fn main() { __rusti_print({ 1 }, 2); }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MarkerBlock(tt.program, "__rusti_print"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
