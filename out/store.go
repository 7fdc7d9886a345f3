// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"math"
	"time"

	"github.com/FerdiDoem/gocrack/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	nodemap    TEXT NOT NULL,
	tip_x      REAL NOT NULL,
	tip_y      REAL NOT NULL,
	tip_angle  REAL NOT NULL,
	created_at INTEGER NOT NULL -- Unix time [ns]
);

CREATE TABLE IF NOT EXISTS results (
	run_id   TEXT NOT NULL,
	position INTEGER NOT NULL,
	grp      TEXT NOT NULL,
	tag      TEXT NOT NULL,
	unit     TEXT NOT NULL,
	label    TEXT NOT NULL,
	value    REAL,
	PRIMARY KEY (run_id, position),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Run holds the stored results of one analysis
type Run struct {
	Id        string       // run identifier
	Nodemap   string       // name of nodemap
	Tip       inp.CrackTip // crack tip
	CreatedAt time.Time    // time of storage
	Rows      []Row        // results
}

// Store saves results of analyses in a SQLite database
type Store struct {
	db  *sql.DB
	now func() time.Time // clock
}

// NewStore opens (or creates) a SQLite database
func NewStore(dbPath string) (o *Store, err error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, chk.Err("cannot open database %q:\n%v", dbPath, err)
	}
	for _, cmd := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
		if _, err = db.Exec(cmd); err != nil {
			db.Close()
			return nil, chk.Err("cannot initialise database %q:\n%v", dbPath, err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database
func (o *Store) Close() error {
	return o.db.Close()
}

// Save saves the results of one analysis and returns the new run identifier
//  Note: NaN values are stored as NULL
func (o *Store) Save(nodemap string, tip inp.CrackTip, rows []Row) (id string, err error) {
	id = uuid.New().String()
	now := o.now()

	tx, err := o.db.Begin()
	if err != nil {
		return "", chk.Err("cannot begin transaction:\n%v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, nodemap, tip_x, tip_y, tip_angle, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, nodemap, tip.X, tip.Y, tip.Angle, now.UnixNano(),
	)
	if err != nil {
		return "", chk.Err("cannot insert run:\n%v", err)
	}
	for i, r := range rows {
		val := sql.NullFloat64{Float64: r.Value, Valid: !math.IsNaN(r.Value)}
		_, err = tx.Exec(
			`INSERT INTO results (run_id, position, grp, tag, unit, label, value) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, r.Group, r.Tag.Tag, r.Unit, r.Label, val,
		)
		if err != nil {
			return "", chk.Err("cannot insert result %q:\n%v", r.Tag.Tag, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return "", chk.Err("cannot commit run:\n%v", err)
	}
	return
}

// Load loads the results of one analysis
func (o *Store) Load(id string) (run *Run, err error) {
	run = &Run{Id: id}
	var created int64
	err = o.db.QueryRow(
		`SELECT nodemap, tip_x, tip_y, tip_angle, created_at FROM runs WHERE run_id = ?`, id,
	).Scan(&run.Nodemap, &run.Tip.X, &run.Tip.Y, &run.Tip.Angle, &created)
	if err == sql.ErrNoRows {
		return nil, chk.Err("run %q not found", id)
	}
	if err != nil {
		return nil, chk.Err("cannot load run %q:\n%v", id, err)
	}
	run.CreatedAt = time.Unix(0, created).UTC()

	res, err := o.db.Query(
		`SELECT grp, tag, unit, label, value FROM results WHERE run_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return nil, chk.Err("cannot load results of run %q:\n%v", id, err)
	}
	defer res.Close()
	for res.Next() {
		var r Row
		var val sql.NullFloat64
		if err = res.Scan(&r.Group, &r.Tag.Tag, &r.Unit, &r.Label, &val); err != nil {
			return nil, chk.Err("cannot scan result of run %q:\n%v", id, err)
		}
		r.Value = math.NaN()
		if val.Valid {
			r.Value = val.Float64
		}
		run.Rows = append(run.Rows, r)
	}
	if err = res.Err(); err != nil {
		return nil, chk.Err("cannot load results of run %q:\n%v", id, err)
	}
	return
}

// Runs returns the identifiers of all stored runs, most recent first
func (o *Store) Runs() (ids []string, err error) {
	res, err := o.db.Query(`SELECT run_id FROM runs ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, chk.Err("cannot list runs:\n%v", err)
	}
	defer res.Close()
	for res.Next() {
		var id string
		if err = res.Scan(&id); err != nil {
			return nil, chk.Err("cannot scan run:\n%v", err)
		}
		ids = append(ids, id)
	}
	return ids, res.Err()
}
