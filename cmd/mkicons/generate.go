package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/config"
	"github.com/Mavwarf/mkicons/internal/history"
	"github.com/Mavwarf/mkicons/internal/mqtt"
	"github.com/Mavwarf/mkicons/internal/webhook"
)

// generate writes the icon set into dir and prints the success message.
// History, MQTT and webhook are best-effort: their failures are logged, never
// returned.
func generate(dir string, cfg config.Config, dbPath string, out io.Writer) error {
	if cfg.Source != "" {
		logrus.WithField("config", cfg.Source).Debug("config loaded")
	}
	results, err := assets.Generate(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, assets.SuccessMessage)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}
	if cfg.Options.Log {
		recordRun(dbPath, absDir, results)
	}
	if cfg.Options.MQTT.Enabled() {
		if err := mqtt.Announce(cfg.Options.MQTT, absDir, results); err != nil {
			logrus.WithError(err).Warn("mqtt announce failed")
		}
	}
	if cfg.Options.Webhook.Enabled() {
		if err := webhook.Announce(cfg.Options.Webhook, absDir, results); err != nil {
			logrus.WithError(err).Warn("webhook announce failed")
		}
	}
	return nil
}

func recordRun(dbPath, dir string, results []assets.Result) {
	s, err := history.Open(dbPath)
	if err != nil {
		logrus.WithError(err).Warn("history: open failed")
		return
	}
	defer s.Close()
	id, err := s.Record(dir, results)
	if err != nil {
		logrus.WithError(err).Warn("history: record failed")
		return
	}
	logrus.WithFields(logrus.Fields{"run": id, "db": s.Path()}).Debug("history: run recorded")
}
