package cmd

import (
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
)

type SQLFlag struct {
	DB     DBFlag        `group:"DB" namespace:"db"`
	Tuning SQLTuningFlag `group:"Tuning" namespace:"tuning"`
}

type DBFlag struct {
	Driver   sqlx.DBDriver `long:"driver" description:"Database driver to use for SQL backend (e.g. mysql)" default:"mysql"`
	Host     string        `long:"host" description:"Host for SQL backend" required:"true"`
	Port     int           `long:"port" description:"Port for SQL backend" required:"true"`
	Schema   string        `long:"schema" description:"Database name to use for connecting to SQL backend" required:"true"`
	Username string        `long:"username" description:"Username to use for connecting to SQL backend" required:"true"`
	Password string        `long:"password" description:"Password to use for connecting to SQL backend" required:"true"`
}

type SQLTuningFlag struct {
	ConnMaxLifetime int `long:"connection-max-lifetime" description:"Limit the lifetime in milliseconds of a SQL connection"`
}

func (o *SQLFlag) Connect(logger lager.Logger) (*sqlx.DB, error) {
	logger = logger.WithData(lager.Data{
		"db_driver":   o.DB.Driver,
		"db_host":     o.DB.Host,
		"db_port":     o.DB.Port,
		"db_schema":   o.DB.Schema,
		"db_username": o.DB.Username,
	})

	conn, err := sqlx.Connect(o.DB.Driver,
		sqlx.DBUsername(o.DB.Username),
		sqlx.DBPassword(o.DB.Password),
		sqlx.DBDatabaseName(o.DB.Schema),
		sqlx.DBHost(o.DB.Host),
		sqlx.DBPort(o.DB.Port),
		sqlx.DBConnectionMaxLifetime(time.Duration(o.Tuning.ConnMaxLifetime)*time.Millisecond),
	)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return nil, err
	}

	return conn, nil
}
