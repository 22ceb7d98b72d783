// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPrint(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	log.Print("hello log")
	assert.Contains(t, buf.String(), "hello log")
}

func TestLogrusPrint(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	logrus.Print("hello logrus")
	assert.Contains(t, buf.String(), "hello logrus")
}

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	err := SetLogLevel("loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestInternalFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2020, 1, 2, 3, 4, 5, 6000000, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "phase changed",
		Data: logrus.Fields{
			"phase":   "green",
			"cycleMs": 4500,
			"error":   errors.New("boom"),
		},
	}

	out, err := (&InternalFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "02 Jan 2020 03:04:05.006 [WARN] phase changed cycleMs=4500 error=\"boom\" phase=green\n", string(out))
}

func TestInternalFormatterLevels(t *testing.T) {
	f := &InternalFormatter{}
	for level, name := range map[logrus.Level]string{
		logrus.DebugLevel: "[DEBUG]",
		logrus.InfoLevel:  "[INFO]",
		logrus.ErrorLevel: "[ERROR]",
	} {
		out, err := f.Format(&logrus.Entry{Level: level, Message: "m"})
		require.NoError(t, err)
		assert.Contains(t, string(out), name)
	}
}

func BenchmarkLogrusPrint(b *testing.B) {
	SetOutput(io.Discard)
	for n := 0; n < b.N; n++ {
		logrus.Print(1, "two", true)
	}
}

func BenchmarkLogrusDebugWithFieldLogLevelEnabled(b *testing.B) {
	SetOutput(io.Discard)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&InternalFormatter{})
	defer logrus.SetLevel(logrus.InfoLevel)
	for n := 0; n < b.N; n++ {
		logrus.WithField("field", "value").Debug(1, "two", true)
	}
}
