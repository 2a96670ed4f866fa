//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	_ "modernc.org/sqlite"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var ErrEmptyCorpus = errors.New("empty corpus")

// FromDir - every file in dir ending in ext becomes a document labeled by its name minus the extension
func FromDir(dir string, ext string, m *mm.MessageMaker) ([]str.Document, error) {
	const (
		FAIL1 = "cannot read corpus folder '%s': %w"
		FAIL2 = "%w: no '%s' files in '%s'"
		MSG1  = "FromDir() skipping unreadable file '%s'"
		MSG2  = "FromDir() read %d documents from '%s'"
	)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, dir, err)
	}

	var docs []str.Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		b, ee := os.ReadFile(filepath.Join(dir, e.Name()))
		if ee != nil {
			m.WARN(fmt.Sprintf(MSG1, e.Name()))
			continue
		}
		docs = append(docs, str.Document{
			Label: strings.TrimSuffix(e.Name(), ext),
			Text:  string(b),
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf(FAIL2, ErrEmptyCorpus, ext, dir)
	}

	slices.SortFunc(docs, func(a, b str.Document) int { return strings.Compare(a.Label, b.Label) })
	m.PEEK(fmt.Sprintf(MSG2, len(docs), dir))
	return docs, nil
}

// OpenDB - a local sqlite file; PostgreSQL goes through OpenPool()
func OpenDB(driver string, dsn string) (*sql.DB, error) {
	const (
		FAIL1 = "unknown database driver '%s': use 'sqlite' or 'pgx'"
		FAIL2 = "cannot reach the %s database: %w"
	)

	if driver != "sqlite" {
		return nil, fmt.Errorf(FAIL1, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(FAIL2, driver, err)
	}
	return db, nil
}

// FromSQL - query must return (label, text) rows
func FromSQL(ctx context.Context, db *sql.DB, query string, m *mm.MessageMaker) ([]str.Document, error) {
	const (
		FAIL1 = "corpus query failed: %w"
		FAIL2 = "corpus row %d: %w"
		FAIL3 = "%w: the query returned no rows"
		MSG1  = "FromSQL() read %d documents"
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	defer rows.Close()

	var docs []str.Document
	for rows.Next() {
		var d str.Document
		if err = rows.Scan(&d.Label, &d.Text); err != nil {
			return nil, fmt.Errorf(FAIL2, len(docs), err)
		}
		docs = append(docs, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf(FAIL3, ErrEmptyCorpus)
	}
	m.PEEK(fmt.Sprintf(MSG1, len(docs)))
	return docs, nil
}

// Split - labels and texts as parallel slices
func Split(docs []str.Document) ([]string, []string) {
	labels := make([]string, len(docs))
	texts := make([]string, len(docs))
	for i := range docs {
		labels[i] = docs[i].Label
		texts[i] = docs[i].Text
	}
	return labels, texts
}
