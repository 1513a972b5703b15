package repo

import (
	"database/sql"
	"errors"
	"testing"
)

func TestWrapKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		op   string
	}{
		{KindQuery, "list photos"},
		{KindInsert, "create photo"},
		{KindUpdate, "update photo"},
		{KindDelete, "delete photo"},
	}
	for i, test := range tests {
		err := wrap(test.kind, test.op, errors.New("backend fault"))
		if got := KindOf(err); got != test.kind {
			t.Errorf("%d expect kind %q, got %q", i, test.kind, got)
		}
	}
}

func TestWrapNil(t *testing.T) {
	if err := wrap(KindInsert, "create photo", nil); err != nil {
		t.Errorf("expect nil, got %v", err)
	}
}

func TestIsNotFound(t *testing.T) {
	err := wrap(KindQuery, "event by id", sql.ErrNoRows)
	if !IsNotFound(err) {
		t.Error("sql.ErrNoRows should be not-found")
	}
	if KindOf(err) != KindQuery {
		t.Errorf("expect query kind, got %q", KindOf(err))
	}

	err = wrap(KindDelete, "delete photo", ErrNotFound)
	if !IsNotFound(err) {
		t.Error("ErrNotFound should be not-found")
	}

	if IsNotFound(wrap(KindQuery, "list events", errors.New("connection refused"))) {
		t.Error("backend fault should not be not-found")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("expect empty kind, got %q", got)
	}
}
