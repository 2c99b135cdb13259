package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

var errConn = errors.New("connection reset by peer")

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectGet("test:translations:en").SetVal(`{"translations":{"welcome":"Welcome"}}`)

	val, ok := store.Get("translations:en")
	if !ok {
		t.Fatal("Expected hit")
	}
	if val != `{"translations":{"welcome":"Welcome"}}` {
		t.Errorf("Get = %q", val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectGet("test:translations:en").RedisNil()

	if _, ok := store.Get("translations:en"); ok {
		t.Error("Expected miss for redis.Nil")
	}
}

func TestRedisStore_GetTransportErrorIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectGet("test:translations:en").SetErr(errConn)

	if _, ok := store.Get("translations:en"); ok {
		t.Error("Expected transport error to read as a miss")
	}
}

func TestRedisStore_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectSet("test:translations:en", "value", time.Hour).SetVal("OK")

	if err := store.Set("translations:en", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_SetNoTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "test:")

	mock.ExpectSet("test:k", "v", 0).SetVal("OK")

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectDel("test:translations:en").SetVal(1)

	if err := store.Delete("translations:en"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_DeleteAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectDel("test:translations:en", "test:translations:ru").SetVal(2)

	if err := store.DeleteAll([]string{"translations:en", "translations:ru"}); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_DeleteAllEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	// No keys means no round trip at all
	if err := store.DeleteAll(nil); err != nil {
		t.Fatalf("DeleteAll(nil) failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unexpected Redis command: %v", err)
	}
}

func TestRedisStore_Keys(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectScan(0, "test:*", 0).SetVal([]string{"test:translations:en", "test:translations:hy"}, 0)

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "translations:en" || keys[1] != "translations:hy" {
		t.Errorf("Keys = %v", keys)
	}
}

func TestRedisStore_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "test:")

	mock.ExpectPing().SetVal("PONG")

	if err := store.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "")

	mock.ExpectGet("jobportal:k").RedisNil()

	store.Get("k")
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	if _, err := NewRedisStore(RedisConfig{URL: "not-a-url"}); err == nil {
		t.Error("Expected error for invalid URL")
	}
}
