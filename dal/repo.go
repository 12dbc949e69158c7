package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"list_starling/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks list_starling/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64
	GetUserId(handle string) (string, error)
	PutUserId(handle, userId string) error
	GetUserIdCount() (int, error)
	AddReport(rpt *Report) error
	GetReports(limit int) ([]*Report, error)
	GetReportCount() (int, error)
	LatestReport() (*Report, error)
	DeleteReport(fileName string) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://www.reddit.com/r/golang/comments/16xswxd/concurrency_when_writing_data_into_sqlite/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetUserId(handle string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT user_id FROM user_cache WHERE handle=?`, handle)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) PutUserId(handle, userId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO user_cache (handle, user_id, resolved_at)
		VALUES(?, ?, ?)`, handle, userId, time.Now())
	if err == nil {
		return nil
	}

	// Duplicate key: handle resolved before; refresh the mapping
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			_, err = repo.db.Exec(`UPDATE user_cache SET user_id=?, resolved_at=? WHERE handle=?`,
				userId, time.Now(), handle)
			return err
		}
	}
	return err
}

func (repo *Repo) GetUserIdCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM user_cache`)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) AddReport(rpt *Report) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO reports
		(run_id, created_at, file_name, triggered_by, post_count, cluster_count, conv_count, model, duration_ms)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rpt.RunId, rpt.CreatedAt, rpt.FileName, rpt.Trigger, rpt.PostCount,
		rpt.ClusterCount, rpt.ConvCount, rpt.Model, rpt.DurationMs)
	return err
}

func (repo *Repo) GetReports(limit int) ([]*Report, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, run_id, created_at, file_name, triggered_by, post_count,
			cluster_count, conv_count, model, duration_ms
		FROM reports ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Report, 0, limit)
	for rows.Next() {
		rpt := Report{}
		err = rows.Scan(&rpt.Id, &rpt.RunId, &rpt.CreatedAt, &rpt.FileName, &rpt.Trigger,
			&rpt.PostCount, &rpt.ClusterCount, &rpt.ConvCount, &rpt.Model, &rpt.DurationMs)
		if err != nil {
			return nil, err
		}
		res = append(res, &rpt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetReportCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM reports`)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) LatestReport() (*Report, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, run_id, created_at, file_name, triggered_by, post_count,
			cluster_count, conv_count, model, duration_ms
		FROM reports ORDER BY id DESC LIMIT 1`)
	var err error
	var rpt Report
	err = row.Scan(&rpt.Id, &rpt.RunId, &rpt.CreatedAt, &rpt.FileName, &rpt.Trigger,
		&rpt.PostCount, &rpt.ClusterCount, &rpt.ConvCount, &rpt.Model, &rpt.DurationMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &rpt, nil
}

func (repo *Repo) DeleteReport(fileName string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM reports WHERE file_name=?`, fileName)
	return err
}
