package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// locationFormatter renders entries as JSON with the timestamp in a fixed location.
type locationFormatter struct {
	json *logrus.JSONFormatter
	loc  *time.Location
}

func (f *locationFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.json.Format(e)
}

// New returns a JSON logger writing one object per line to w.
// Timestamps are written under "ts" in loc; a nil loc means UTC.
func New(w io.Writer, loc *time.Location, level string) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&locationFormatter{
		loc: loc,
		json: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
			},
		},
	})
	return l
}

// Default is a stdout logger in UTC at info level.
func Default() *logrus.Logger {
	return New(os.Stdout, time.UTC, "info")
}
