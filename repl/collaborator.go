package repl

import (
	"github.com/homocury/rusti/loader"
	"github.com/homocury/rusti/session"
	"github.com/homocury/rusti/types"
)

// REPLループが評価とクレートロードに要求する境界
//
//go:generate mockgen -package=repl -source=./collaborator.go -destination=./collaborator_mock.go
type evaluator interface {
	Eval(s session.Session, input string) (session.Session, bool)
}

type crateLoader interface {
	Load(arg string, searchPaths []string) (loader.Outcome, types.CrateName, string)
}
