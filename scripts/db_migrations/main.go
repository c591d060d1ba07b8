package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/storage"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

func main() {
	configFile := flag.String("config", "", "optional config file")
	flag.Parse()

	env, err := server_config.Load(*configFile)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	status, err := storage.Migrate(sqlconfig.Dialect(env.Driver), env.DSN())
	if err != nil {
		logrus.WithError(err).WithField("driver", env.Driver).Fatal("storage.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"driver":               env.Driver,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
