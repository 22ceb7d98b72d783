// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "02 Jan 2006 15:04:05.000"

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel sets the log level for internal logging. Needs to be called very
// early during startup to configure logs emitted during initialization
func SetLogLevel(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q, valid levels are %v: %w", logLevel, logrus.AllLevels, err)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&InternalFormatter{})
	return nil
}

// InternalFormatter renders entries as
//
//	TIMESTAMP [LEVEL] message key=value ...
//
// with fields sorted by key.
type InternalFormatter struct{}

// Format implements logrus.Formatter.
func (f *InternalFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "%s [%s] %s", entry.Time.UTC().Format(timestampFormat), levelName(entry.Level), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, formatValue(entry.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARN"
	default:
		return strings.ToUpper(level.String())
	}
}

func formatValue(v interface{}) string {
	switch value := v.(type) {
	case error:
		return fmt.Sprintf("%q", value.Error())
	case time.Duration:
		return value.String()
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
