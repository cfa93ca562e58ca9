package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/utakatalp/football-statistics/internal/config"
	"github.com/utakatalp/football-statistics/internal/log"
	"github.com/utakatalp/football-statistics/internal/processor"
	"github.com/utakatalp/football-statistics/internal/store"
)

// app holds what every command shares: config, logger, store and processor.
type app struct {
	conf    config.Config
	table   *store.Table
	proc    *processor.Processor
	closers []func()
}

func newApp(ctx context.Context, out io.Writer) (*app, error) {
	conf, errConf := config.Read(cfgFile)
	if errConf != nil {
		return nil, errConf
	}

	a := &app{conf: conf, table: store.NewTable()}
	a.closers = append(a.closers, log.MustCreateLogger(conf.Log))

	var opts []processor.Option
	if conf.DB.Enabled {
		pg, errPg := openMirror(ctx, conf.DB.DSN)
		if errPg != nil {
			a.Close()

			return nil, errPg
		}
		a.closers = append(a.closers, func() { log.Closer(pg) })
		opts = append(opts, processor.WithMirror(pg))
	}

	a.proc = processor.New(a.table, out, opts...)

	return a, nil
}

// openMirror connects to Postgres and clears rows left by an earlier run.
func openMirror(ctx context.Context, dsn string) (*store.Postgres, error) {
	pg, errPg := store.NewPostgres(ctx, dsn)
	if errPg != nil {
		return nil, errPg
	}

	if err := pg.Migrate(ctx); err != nil {
		log.Closer(pg)

		return nil, err
	}

	if err := pg.DeleteAllTeams(ctx); err != nil {
		log.Closer(pg)

		return nil, err
	}

	slog.Info("Mirroring team statistics to postgres")

	return pg, nil
}

// Close runs cleanups in reverse order, the logger last.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
