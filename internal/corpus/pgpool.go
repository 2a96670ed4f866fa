//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
)

// OpenPool - build a pgxpool from a postgres:// url; errors are translated into something a user can act on
func OpenPool(ctx context.Context, dsn string, workers int) (*pgxpool.Pool, error) {
	const (
		FAIL1   = "configuration error: could not parse '%s': %w"
		FAIL2   = "could not connect to PostgreSQL: %w"
		ERRRUN  = `dial error`
		FAILRUN = `the PostgreSQL server cannot be found; check that it is running and serving on the port in '%s'`
		ERRSRV  = `server error`
		FAILSRV = `there is a configuration problem; PostgreSQL says:%s`
	)

	config, e := pgxpool.ParseConfig(dsn)
	if e != nil {
		return nil, fmt.Errorf(FAIL1, redact(dsn), e)
	}
	if workers > 0 {
		config.MaxConns = int32(workers)
	}

	thepool, e := pgxpool.NewWithConfig(ctx, config)
	if e == nil {
		e = thepool.Ping(ctx)
	}
	if e == nil {
		return thepool, nil
	}

	if thepool != nil {
		thepool.Close()
	}
	switch {
	case strings.Contains(e.Error(), ERRRUN):
		e = fmt.Errorf("%s: %w", fmt.Sprintf(FAILRUN, redact(dsn)), e)
	case strings.Contains(e.Error(), ERRSRV):
		parts := strings.SplitN(e.Error(), ERRSRV, 2)
		e = fmt.Errorf(FAILSRV, parts[1])
	}
	return nil, fmt.Errorf(FAIL2, e)
}

// FromPostgres - query must return (label, text) rows
func FromPostgres(ctx context.Context, pool *pgxpool.Pool, query string, m *mm.MessageMaker) ([]str.Document, error) {
	const (
		FAIL1 = "corpus query failed: %w"
		FAIL2 = "%w: the query returned no rows"
		MSG1  = "FromPostgres() read %d documents"
	)

	dbc, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	defer dbc.Release()

	rows, err := dbc.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (str.Document, error) {
		var d str.Document
		e := row.Scan(&d.Label, &d.Text)
		return d, e
	})
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf(FAIL2, ErrEmptyCorpus)
	}
	m.PEEK(fmt.Sprintf(MSG1, len(docs)))
	return docs, nil
}

// redact - hide the password of a postgres url
func redact(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	sch := strings.Index(dsn, "://")
	if at < 0 || sch < 0 || at < sch {
		return dsn
	}
	cred := dsn[sch+3 : at]
	if c := strings.Index(cred, ":"); c >= 0 {
		return dsn[:sch+3] + cred[:c] + ":xxxxx" + dsn[at:]
	}
	return dsn
}
