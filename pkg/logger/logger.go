package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// LogBuild accumulates sink options before the logger is built
type LogBuild struct {
	writer  io.Writer
	path    string
	console bool
}

type LogData struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

// FromPath adds a file sink
func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// Console switches to human-readable stderr output
func (build *LogBuild) Console() *LogBuild {
	build.console = true
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	logData.writer = build.writer
	if build.console {
		logData.writer = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.writer = zerolog.SyncWriter(logData.LogFile)
	}
	if logData.writer == nil {
		logData.writer = os.Stderr
	}
	logData.Logger = zerolog.New(logData.writer).With().Timestamp().Logger()
	return
}

func (data *LogData) Close() error {
	if data.LogFile != nil {
		return data.LogFile.Close()
	}
	return nil
}
