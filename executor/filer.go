package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/homocury/rusti/errs"
)

//go:generate mockgen -package=executor -source=./filer.go -destination=./filer_mock.go
type filer interface {
	createTmpFile() (tmpFile *os.File, tmpFileName string, cleanup func(), err error)
	flush(program string, targetFile *os.File) error
}

type defaultFiler struct{}

func newDefaultFiler() *defaultFiler {
	return &defaultFiler{}
}

func (df *defaultFiler) createTmpFile() (tmpFile *os.File, tmpFileName string, cleanup func(), err error) {
	tmpFileName = filepath.Join(os.TempDir(), fmt.Sprintf("%s_rusti_tmp.rs", uuid.NewString()))

	file, err := os.Create(tmpFileName)
	if err != nil {
		return nil, "", nil, errs.NewInternalError("failed to create temporary file").Wrap(err)
	}

	cleanup = func() {
		if err := os.Remove(tmpFileName); err != nil {
			errs.HandleError(err)
		}
	}

	return file, tmpFileName, cleanup, nil
}

func (df *defaultFiler) flush(program string, targetFile *os.File) error {
	if _, err := targetFile.Seek(0, 0); err != nil {
		return errs.NewInternalError("failed to seek file").Wrap(err)
	}
	if err := targetFile.Truncate(0); err != nil {
		return errs.NewInternalError("failed to truncate file").Wrap(err)
	}
	if _, err := targetFile.WriteString(program); err != nil {
		return errs.NewInternalError("failed to write program").Wrap(err)
	}
	return nil
}
