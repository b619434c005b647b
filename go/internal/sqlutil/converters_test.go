package sqlutil

import (
	"database/sql"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	if got := ToSqlString(nil); got.Valid {
		t.Fatalf("expected invalid NullString, got %+v", got)
	}
	logo := "logo.png"
	ns := ToSqlString(&logo)
	if !ns.Valid || ns.String != logo {
		t.Fatalf("unexpected NullString %+v", ns)
	}
	back := FromSqlStringPtr(ns)
	if back == nil || *back != logo {
		t.Fatalf("expected %q back, got %v", logo, back)
	}
	if FromSqlStringPtr(sql.NullString{}) != nil {
		t.Fatal("expected nil for invalid NullString")
	}
}

func TestInt32RoundTrip(t *testing.T) {
	if got := ToSqlInt32(nil); got.Valid {
		t.Fatalf("expected invalid NullInt32, got %+v", got)
	}
	pens := 4
	ni := ToSqlInt32(&pens)
	if !ni.Valid || ni.Int32 != 4 {
		t.Fatalf("unexpected NullInt32 %+v", ni)
	}
	back := FromSqlInt32(ni)
	if back == nil || *back != 4 {
		t.Fatalf("expected 4 back, got %v", back)
	}
	if FromSqlInt32(sql.NullInt32{}) != nil {
		t.Fatal("expected nil for invalid NullInt32")
	}
}
