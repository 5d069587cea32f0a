package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
)

const (
	LogLevelEnv = "CONVI_LOG_LEVEL"
)

type Log interface {
	Debug(a ...interface{})
	Info(a ...interface{})
	Warn(a ...interface{})
	Error(a ...interface{})
	Output(a ...interface{})
	GetLogLevel() LevelType
}

var (
	// The logger instance
	_logger *Logger
	// Used to ensure _logger is initialized only once
	once sync.Once
)

func GetLogger() *Logger {
	once.Do(func() {
		_logger = NewLogger(getLogLevel())
	})
	return _logger
}

type LevelType int

const (
	ERROR LevelType = iota
	WARN
	INFO
	DEBUG
)

func ParseLevel(level string) (LevelType, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "ERROR":
		return ERROR, true
	case "WARN":
		return WARN, true
	case "INFO":
		return INFO, true
	case "DEBUG":
		return DEBUG, true
	default:
		return INFO, false
	}
}

func getLogLevel() LevelType {
	level, _ := ParseLevel(os.Getenv(LogLevelEnv))
	return level
}

type Logger struct {
	LogLevel  LevelType
	OutputLog *log.Logger
	DebugLog  *log.Logger
	InfoLog   *log.Logger
	WarnLog   *log.Logger
	ErrorLog  *log.Logger
	// Mutex to protect access to the logger
	mu sync.Mutex
}

func NewLogger(logLevel LevelType) *Logger {
	logger := new(Logger)
	logger.SetLogLevel(logLevel)
	logger.SetOutputWriter(os.Stdout)
	logger.SetLogsWriter(os.Stderr, color.SupportColor())
	return logger
}

func (logger *Logger) SetLogLevel(levelEnum LevelType) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.LogLevel = levelEnum
}

func (logger *Logger) SetOutputWriter(writer io.Writer) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.OutputLog = log.New(writer, "", 0)
}

// SetLogsWriter directs all leveled logs to writer. Prefixes are coloured
// only when colored is set.
func (logger *Logger) SetLogsWriter(writer io.Writer, colored bool) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.DebugLog = log.New(writer, getLogPrefix(DEBUG, colored), 0)
	logger.InfoLog = log.New(writer, getLogPrefix(INFO, colored), 0)
	logger.WarnLog = log.New(writer, getLogPrefix(WARN, colored), 0)
	logger.ErrorLog = log.New(writer, getLogPrefix(ERROR, colored), 0)
}

var prefixStyles = map[LevelType]struct {
	logLevel string
	color    color.Color
}{
	DEBUG: {logLevel: "Debug", color: color.Cyan},
	INFO:  {logLevel: "Info", color: color.Blue},
	WARN:  {logLevel: "Warn", color: color.Yellow},
	ERROR: {logLevel: "Error", color: color.Red},
}

func getLogPrefix(logType LevelType, colored bool) string {
	logPrefixStyle, ok := prefixStyles[logType]
	if !ok {
		return ""
	}
	level := logPrefixStyle.logLevel
	if colored {
		level = logPrefixStyle.color.Render(level)
	}
	return fmt.Sprintf("[%s] ", level)
}

func Debugf(format string, a ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, a...))
}

func Infof(format string, a ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, a...))
}

func Warn(a ...interface{}) {
	GetLogger().Warn(a...)
}

func Error(a ...interface{}) {
	GetLogger().Error(a...)
}

func Output(a ...interface{}) {
	GetLogger().Output(a...)
}

func (logger *Logger) GetLogLevel() LevelType {
	return logger.LogLevel
}

func (logger *Logger) Debug(a ...interface{}) {
	logger.printAt(DEBUG, a...)
}

func (logger *Logger) Info(a ...interface{}) {
	logger.printAt(INFO, a...)
}

func (logger *Logger) Warn(a ...interface{}) {
	logger.printAt(WARN, a...)
}

func (logger *Logger) Error(a ...interface{}) {
	logger.printAt(ERROR, a...)
}

func (logger *Logger) Output(a ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.OutputLog.Println(a...)
}

func (logger *Logger) printAt(level LevelType, a ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if logger.LogLevel < level {
		return
	}
	switch level {
	case DEBUG:
		logger.DebugLog.Println(a...)
	case INFO:
		logger.InfoLog.Println(a...)
	case WARN:
		logger.WarnLog.Println(a...)
	default:
		logger.ErrorLog.Println(a...)
	}
}
