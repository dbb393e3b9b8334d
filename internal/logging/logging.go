package logging

import (
	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// GetLogger retorna o logger compartilhado do processo (JSON, nível info).
func GetLogger() *logrus.Logger {
	if logg != nil {
		return logg
	}
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	return logg
}

// LogError registra uma falha com módulo e operação para rastreio.
func LogError(module string, op string, err error) {
	GetLogger().WithFields(logrus.Fields{
		"module": module,
		"op":     op,
	}).Error(err)
}
