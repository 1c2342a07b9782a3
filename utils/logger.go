package utils

import (
	"github.com/sirupsen/logrus"
)

var (
	isVerbose bool
)

func SetVerbose(verbose bool) {
	isVerbose = verbose
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func IsVerbose() bool {
	return isVerbose
}

func Verbose(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
