package executor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/homocury/rusti/errs"
	"github.com/homocury/rusti/session"
	gomock "go.uber.org/mock/gomock"
)

// MEMO: Sessionが期待通りに更新(または保全)されるかまでがExecutorの責務なので、
// 実際のコンパイルや成果物はここでは検証しない。
func TestExecutor_Eval(t *testing.T) {
	tests := []struct {
		name       string
		setup      func() session.Session
		input      string
		setupMocks func(*Mockfiler, *Mockbackend)
		expected   func(before session.Session) session.Session
		expectedOk bool
	}{
		{
			name:  "declaration is absorbed into history",
			setup: func() session.Session { return session.New("rusti> ", "bin") },
			input: "let a = 1;",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(1)
			},
			expected: func(before session.Session) session.Session {
				return before.WithHistory("", "let a = 1;")
			},
			expectedOk: true,
		},
		{
			name: "plain expression leaves history untouched",
			setup: func() session.Session {
				return session.New("rusti> ", "bin").WithHistory("", "let a = 1;")
			},
			input: "a",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte("1\n"), nil).Times(1)
			},
			expected:   func(before session.Session) session.Session { return before },
			expectedOk: true,
		},
		{
			name: "assignment is filtered from replay",
			setup: func() session.Session {
				return session.New("rusti> ", "bin").WithHistory("", "let mut a = 1;")
			},
			input: "a += 1;",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(1)
			},
			expected:   func(before session.Session) session.Session { return before },
			expectedOk: true,
		},
		{
			name:  "view item is absorbed into view items",
			setup: func() session.Session { return session.New("rusti> ", "bin") },
			input: "use core::io;",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(1)
			},
			expected: func(before session.Session) session.Session {
				return before.WithHistory("use core::io;", "")
			},
			expectedOk: true,
		},
		{
			name:  "display glue name inside a string literal does not break absorption",
			setup: func() session.Session { return session.New("rusti> ", "bin") },
			input: "let a = \"see __rusti_print(x)\";",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(1)
			},
			expected: func(before session.Session) session.Session {
				return before.WithHistory("", "let a = \"see __rusti_print(x)\";")
			},
			expectedOk: true,
		},
		{
			name: "compile error rolls the session back",
			setup: func() session.Session {
				return session.New("rusti> ", "bin").WithHistory("use core::io;", "let a = 1;")
			},
			input: "let b = undefined_name;",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).
					Return(nil, errs.NewCompileError("unresolved name: undefined_name")).Times(1)
			},
			expected:   func(before session.Session) session.Session { return before },
			expectedOk: false,
		},
		{
			name: "backend panic is contained and rolls the session back",
			setup: func() session.Session {
				return session.New("rusti> ", "bin").WithHistory("", "let a = 1;")
			},
			input: "fail!()",
			setupMocks: func(mockFiler *Mockfiler, mockBackend *Mockbackend) {
				setupFiler(mockFiler)
				mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).
					DoAndReturn(func(string, CompileOpts) ([]byte, error) {
						panic("internal compiler assertion")
					}).Times(1)
			},
			expected:   func(before session.Session) session.Session { return before },
			expectedOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockFiler := NewMockfiler(ctrl)
			mockBackend := NewMockbackend(ctrl)
			tt.setupMocks(mockFiler, mockBackend)

			e := &Executor{
				backend: mockBackend,
				jit:     true,
				filer:   mockFiler,
			}

			before := tt.setup()
			got, ok := e.Eval(before, tt.input)
			if ok != tt.expectedOk {
				t.Fatalf("expected ok=%v, got %v", tt.expectedOk, ok)
			}
			if diff := cmp.Diff(tt.expected(before), got); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// 履歴が前方一致で単調に伸びることを連続評価で確認する
func TestExecutor_Eval_HistoryMonotonicity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFiler := NewMockfiler(ctrl)
	mockBackend := NewMockbackend(ctrl)
	setupFilerTimes(mockFiler, 3)
	mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(3)

	e := &Executor{backend: mockBackend, jit: true, filer: mockFiler}

	s := session.New("rusti> ", "bin")
	for _, input := range []string{"let a = 1;", "use core::io;", "let b = a + 1;"} {
		next, ok := e.Eval(s, input)
		if !ok {
			t.Fatalf("evaluation of %q failed", input)
		}
		if len(next.Statements) < len(s.Statements) || next.Statements[:len(s.Statements)] != s.Statements {
			t.Fatalf("statements are not a prefix extension: %q -> %q", s.Statements, next.Statements)
		}
		if len(next.ViewItems) < len(s.ViewItems) || next.ViewItems[:len(s.ViewItems)] != s.ViewItems {
			t.Fatalf("view items are not a prefix extension: %q -> %q", s.ViewItems, next.ViewItems)
		}
		s = next
	}
	if s.Statements != "let a = 1;\nlet b = a + 1;" {
		t.Errorf("unexpected accumulated statements: %q", s.Statements)
	}
	if s.ViewItems != "use core::io;" {
		t.Errorf("unexpected accumulated view items: %q", s.ViewItems)
	}
}

// 合成プログラムには検索パスとJITオプションがそのまま渡る
func TestExecutor_Eval_PassesSessionOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFiler := NewMockfiler(ctrl)
	mockBackend := NewMockbackend(ctrl)
	setupFiler(mockFiler)

	var gotOpts CompileOpts
	mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).
		DoAndReturn(func(_ string, opts CompileOpts) ([]byte, error) {
			gotOpts = opts
			return []byte{}, nil
		}).Times(1)

	e := &Executor{backend: mockBackend, jit: true, filer: mockFiler}

	s := session.New("rusti> ", "bin").WithCrate("mylib", "/tmp/lib")
	if _, ok := e.Eval(s, "let a = 1;"); !ok {
		t.Fatal("evaluation failed")
	}
	expected := CompileOpts{JIT: true, SearchPaths: []string{"/tmp/lib"}}
	if diff := cmp.Diff(expected, gotOpts); diff != "" {
		t.Errorf("compile opts mismatch (-want +got):\n%s", diff)
	}
}

// 一時ファイルは削除される前にクローズされている
func TestExecutor_Eval_ClosesTmpFileBeforeRemoval(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFiler := NewMockfiler(ctrl)
	mockBackend := NewMockbackend(ctrl)

	f, err := os.Create(filepath.Join(t.TempDir(), "test.rs"))
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	closedBeforeRemoval := false
	mockFiler.EXPECT().createTmpFile().Return(f, "test.rs", func() {
		// クローズ済みなら2度目のCloseはErrClosedを返す
		closedBeforeRemoval = errors.Is(f.Close(), os.ErrClosed)
	}, nil).Times(1)
	mockFiler.EXPECT().flush(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockBackend.EXPECT().CompileAndRun("test.rs", gomock.Any()).Return([]byte{}, nil).Times(1)

	e := &Executor{backend: mockBackend, jit: true, filer: mockFiler}
	if _, ok := e.Eval(session.New("rusti> ", "bin"), "let a = 1;"); !ok {
		t.Fatal("evaluation failed")
	}
	if !closedBeforeRemoval {
		t.Error("temporary file must be closed before it is removed")
	}
}

func setupFiler(mockFiler *Mockfiler) {
	setupFilerTimes(mockFiler, 1)
}

func setupFilerTimes(mockFiler *Mockfiler, times int) {
	mockFiler.EXPECT().createTmpFile().DoAndReturn(func() (*os.File, string, func(), error) {
		r, w, _ := os.Pipe()
		return w, "test.rs", func() { r.Close() }, nil
	}).Times(times)
	// 内容の検証はsynthesizer側のテストに任せるため、ここでは呼ばれることだけを見る
	mockFiler.EXPECT().flush(gomock.Any(), gomock.Any()).Return(nil).Times(times)
}
