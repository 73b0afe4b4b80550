package testfixtures

import (
	"sync/atomic"
	"testing"

	"gorm.io/gorm"
)

// AfterQuery runs fn once, right after the nth query against table on db.
// fn gets a session on the same connection, so it sees and joins the open
// transaction. Used to slip a competing row in between a service's
// pre-check and its insert.
func AfterQuery(tb testing.TB, db *gorm.DB, table string, nth int32, fn func(tx *gorm.DB) error) {
	tb.Helper()
	var seen int32
	name := "testfixtures:after_query:" + tb.Name()
	err := db.Callback().Query().After("gorm:query").Register(name, func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Table != table {
			return
		}
		if atomic.AddInt32(&seen, 1) != nth {
			return
		}
		if err := fn(tx.Session(&gorm.Session{NewDB: true})); err != nil {
			tb.Errorf("after query on %s: %v", table, err)
		}
	})
	if err != nil {
		tb.Fatalf("register query callback: %v", err)
	}
}
