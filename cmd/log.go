package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func configLogrus(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if debug, _ := flags.GetBool("debug"); debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
		// Shorten function and file names reported by the logger.
		_, file, _, _ := runtime.Caller(0)
		prefix := filepath.Dir(filepath.Dir(file)) + "/"
		log.SetFormatter(&log.TextFormatter{
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				function := strings.TrimPrefix(f.Function, "cg2/") + "()"
				fileLine := strings.TrimPrefix(f.File, prefix) + ":" + strconv.Itoa(f.Line)
				return function, fileLine
			},
		})
	}

	switch f, _ := flags.GetString("log-format"); f {
	case "", "text":
		// do nothing
	case "json":
		log.SetFormatter(new(log.JSONFormatter))
	case "journal":
		if !journal.Enabled() {
			return errors.New("log-format journal: the systemd journal is not available")
		}
		log.SetOutput(io.Discard)
		log.AddHook(journalHook{})
		return nil
	default:
		return errors.New("invalid log-format: " + f)
	}

	if file, _ := flags.GetString("log"); file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
	}
	return nil
}

// journalHook sends every entry to the systemd journal, with the entry's
// fields as upper-cased journal fields.
type journalHook struct{}

func (journalHook) Levels() []log.Level {
	return log.AllLevels
}

func (journalHook) Fire(e *log.Entry) error {
	vars := make(map[string]string, len(e.Data))
	for k, v := range e.Data {
		vars[strings.ToUpper(k)] = fmt.Sprint(v)
	}
	return journal.Send(e.Message, journalPriority(e.Level), vars)
}

func journalPriority(l log.Level) journal.Priority {
	switch l {
	case log.PanicLevel:
		return journal.PriEmerg
	case log.FatalLevel:
		return journal.PriCrit
	case log.ErrorLevel:
		return journal.PriErr
	case log.WarnLevel:
		return journal.PriWarning
	case log.InfoLevel:
		return journal.PriInfo
	}
	return journal.PriDebug
}
