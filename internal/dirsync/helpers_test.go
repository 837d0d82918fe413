package dirsync

import (
	"os"
	"path/filepath"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"dmirror/generated/mocks"
	"dmirror/pkg/helpers/iout"
)

func getMockLogger(mockCtrl *gomock.Controller) *mocks.MockLogger {
	any := gomock.Any()
	loggerMock := mocks.NewMockLogger(mockCtrl)
	loggerMock.EXPECT().Debug(any).AnyTimes()
	loggerMock.EXPECT().Debug(any, any).AnyTimes()
	loggerMock.EXPECT().Debug(any, any, any).AnyTimes()
	loggerMock.EXPECT().Debug(any, any, any, any).AnyTimes()
	loggerMock.EXPECT().Info(any).AnyTimes()
	loggerMock.EXPECT().Info(any, any).AnyTimes()
	loggerMock.EXPECT().Info(any, any, any).AnyTimes()
	loggerMock.EXPECT().Info(any, any, any, any).AnyTimes()
	loggerMock.EXPECT().Warn(any).AnyTimes()
	loggerMock.EXPECT().Warn(any, any).AnyTimes()
	loggerMock.EXPECT().Warn(any, any, any).AnyTimes()
	loggerMock.EXPECT().Error(any).AnyTimes()
	loggerMock.EXPECT().Error(any, any).AnyTimes()
	loggerMock.EXPECT().Error(any, any, any).AnyTimes()
	return loggerMock
}

func writeFile(req *require.Assertions, baseDir, relPath, content string) {
	path := filepath.Join(baseDir, relPath)
	req.NoError(os.MkdirAll(filepath.Dir(path), os.ModePerm))
	req.NoError(os.WriteFile(path, []byte(content), 0o644))
}

func writeFileWithModTime(req *require.Assertions, baseDir, relPath, content string, modTime time.Time) {
	writeFile(req, baseDir, relPath, content)
	path := filepath.Join(baseDir, relPath)
	req.NoError(os.Chtimes(path, modTime, modTime))
}

//copyFileIntoDir mirrors one source file into the other base dir at the same relative
//path, preserving the source modification time, so that the pair compares as unchanged.
func copyFileIntoDir(req *require.Assertions, srcBaseDir, fileRelPath, destBaseDir string) {
	srcPath := filepath.Join(srcBaseDir, fileRelPath)
	info, err := os.Stat(srcPath)
	req.NoError(err)
	req.NoError(iout.CopyFile(srcPath, filepath.Join(destBaseDir, fileRelPath), info.ModTime()))
}

func readFile(req *require.Assertions, path string) string {
	content, err := os.ReadFile(path)
	req.NoError(err)
	return string(content)
}
